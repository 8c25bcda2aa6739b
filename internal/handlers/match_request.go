package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/services"
)

//go:generate mockgen -source=match_request.go -destination=match_request_mock.go -package=handlers

// MatchRequester creates match requests.
type MatchRequester interface {
	RequestMatch(ctx context.Context, fromID, toID int64, message string) (int64, error)
}

// MatchRequest represents the JSON body for sending a match request
// swagger:model MatchRequest
type MatchRequest struct {
	// Sender, must be the caller
	// required: true
	// default: 1
	FromUserID int64 `json:"fromUserId" validate:"required,gt=0"`

	// Recipient
	// required: true
	// default: 2
	ToUserID int64 `json:"toUserId" validate:"required,gt=0,nefield=FromUserID"`

	// Optional note to the recipient
	Message string `json:"message" validate:"max=500"`
}

// MatchRequestResponse represents a successful match request
// swagger:model MatchRequestResponse
type MatchRequestResponse struct {
	// default: Match request sent successfully
	Message string `json:"message"`

	MatchID int64 `json:"matchId"`
}

// NewMatchRequestHandler returns an HTTP handler for sending a match request.
// @Summary Send match request
// @Description Creates a pending match from the caller to another user. Only one match may exist per pair of users, in either direction.
// @Tags matches
// @Accept json
// @Produce json
// @Param request body handlers.MatchRequest true "Match request"
// @Success 200 {object} handlers.MatchRequestResponse "Match request sent successfully"
// @Failure 400 {object} handlers.ErrorResponse "Match request already exists / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "fromUserId is not the caller"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to send match request"
// @Router /match-request [post]
// @Security BearerAuth
func NewMatchRequestHandler(svc MatchRequester, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, err := callerID(r, tokener)
		if err != nil {
			unauthorized(ctx, w, err)
			return
		}

		var req MatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		if req.FromUserID != caller {
			logger.FromContext(ctx).Warnw("match request on behalf of another user", "from_user_id", req.FromUserID, "caller", caller)
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		matchID, err := svc.RequestMatch(ctx, req.FromUserID, req.ToUserID, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateRequest):
				writeError(w, http.StatusBadRequest, "Match request already exists")
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Cannot send match request to yourself")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.FromContext(ctx).Errorw("failed to send match request", "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to send match request")
			}
			return
		}

		writeJSON(w, http.StatusOK, MatchRequestResponse{
			Message: "Match request sent successfully",
			MatchID: matchID,
		})
	}
}
