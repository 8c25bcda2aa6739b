package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-matcher/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// withURLParams attaches chi route parameters given as name/value pairs.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authAs returns a tokener that authenticates every request as userID.
func authAs(ctrl *gomock.Controller, userID int64) *MockTokener {
	tok := NewMockTokener(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()
	tok.EXPECT().GetClaims(gomock.Any(), "token").Return(&jwt.Claims{UserID: userID}, nil).AnyTimes()
	return tok
}

// unauthenticated returns a tokener that rejects every request.
func unauthenticated(ctrl *gomock.Controller) *MockTokener {
	tok := NewMockTokener(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing token")).AnyTimes()
	return tok
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestCallerID(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)

	id, err := callerID(r, authAs(ctrl, 42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = callerID(r, unauthenticated(ctrl))
	assert.Error(t, err)

	expired := NewMockTokener(ctrl)
	expired.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("old", nil)
	expired.EXPECT().GetClaims(gomock.Any(), "old").Return(nil, errors.New("token expired"))
	_, err = callerID(r, expired)
	assert.EqualError(t, err, "token expired")
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"valid", "17", 17, false},
		{"missing", "", 0, true},
		{"not a number", "abc", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)
			got, err := pathID(r, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	err := validate.Struct(LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Equal(t, "Validation failed: email: email", validationMessage(err))

	err = validate.Struct(UpdateProfileRequest{Name: "A", NoiseLevel: ptr(9)})
	assert.Equal(t, "Validation failed: noiseLevel: max=5", validationMessage(err))

	assert.Equal(t, "Invalid request body", validationMessage(errors.New("other")))
}
