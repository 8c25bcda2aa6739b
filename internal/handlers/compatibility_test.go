package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-matcher/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCompatibilityHandler(t *testing.T) {
	tests := []struct {
		name         string
		other        string
		mockSetup    func(m *MockCompatibilityScorer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:  "success",
			other: "2",
			mockSetup: func(m *MockCompatibilityScorer) {
				m.EXPECT().Compatibility(gomock.Any(), int64(1), int64(2)).Return(64, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"userId": float64(1), "otherUserId": float64(2), "score": float64(64)},
		},
		{
			name:  "self",
			other: "1",
			mockSetup: func(m *MockCompatibilityScorer) {
				m.EXPECT().Compatibility(gomock.Any(), int64(1), int64(1)).Return(0, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
		{
			name:  "unknown user",
			other: "9",
			mockSetup: func(m *MockCompatibilityScorer) {
				m.EXPECT().Compatibility(gomock.Any(), int64(1), int64(9)).Return(0, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "User not found"},
		},
		{
			name:  "storage failure",
			other: "2",
			mockSetup: func(m *MockCompatibilityScorer) {
				m.EXPECT().Compatibility(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "bad id",
			other:        "x",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid user id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockCompatibilityScorer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/compatibility/"+tt.other, nil), "userId", tt.other)
			rr := httptest.NewRecorder()

			NewCompatibilityHandler(svc, authAs(ctrl, 1)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
