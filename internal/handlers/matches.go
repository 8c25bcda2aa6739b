package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

//go:generate mockgen -source=matches.go -destination=matches_mock.go -package=handlers

// MatchLister lists a user's matches by category.
type MatchLister interface {
	ListMatches(ctx context.Context, userID int64) (*models.MatchLists, error)
}

// NewListMatchesHandler returns an HTTP handler listing the caller's matches.
// @Summary List matches
// @Description Returns pending requests received (incoming) and sent (outgoing), and accepted matches in either direction (confirmed), each joined with the other user's profile.
// @Tags matches
// @Produce json
// @Param id path int true "User ID, must be the caller"
// @Success 200 {object} models.MatchLists
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch matches"
// @Router /matches/{id} [get]
// @Security BearerAuth
func NewListMatchesHandler(svc MatchLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, err := callerID(r, tokener)
		if err != nil {
			unauthorized(ctx, w, err)
			return
		}

		userID, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		if userID != caller {
			logger.FromContext(ctx).Warnw("match list of another user", "user_id", userID, "caller", caller)
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		lists, err := svc.ListMatches(ctx, userID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to fetch matches", "user_id", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
			return
		}

		writeJSON(w, http.StatusOK, lists)
	}
}
