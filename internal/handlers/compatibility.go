package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/services"
)

//go:generate mockgen -source=compatibility.go -destination=compatibility_mock.go -package=handlers

// CompatibilityScorer scores two users against each other.
type CompatibilityScorer interface {
	Compatibility(ctx context.Context, userID, otherID int64) (int, error)
}

// CompatibilityResponse carries the score between the caller and another user
// swagger:model CompatibilityResponse
type CompatibilityResponse struct {
	UserID      int64 `json:"userId"`
	OtherUserID int64 `json:"otherUserId"`

	// 0..100, 50 when either side has no preferences
	// default: 64
	Score int `json:"score"`
}

// NewCompatibilityHandler returns an HTTP handler for the caller's compatibility with another user.
// @Summary Compatibility score
// @Description Scores the caller's lifestyle preferences against another user's.
// @Tags users
// @Produce json
// @Param userId path int true "Other user ID"
// @Success 200 {object} handlers.CompatibilityResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /compatibility/{userId} [get]
// @Security BearerAuth
func NewCompatibilityHandler(svc CompatibilityScorer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, err := callerID(r, tokener)
		if err != nil {
			unauthorized(ctx, w, err)
			return
		}

		otherID, err := pathID(r, "userId")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		score, err := svc.Compatibility(ctx, caller, otherID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid user id")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.FromContext(ctx).Errorw("failed to compute compatibility", "caller", caller, "other", otherID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, CompatibilityResponse{
			UserID:      caller,
			OtherUserID: otherID,
			Score:       score,
		})
	}
}
