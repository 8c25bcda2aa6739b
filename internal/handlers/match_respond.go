package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/services"
)

//go:generate mockgen -source=match_respond.go -destination=match_respond_mock.go -package=handlers

// MatchAccepter accepts a match.
type MatchAccepter interface {
	AcceptMatch(ctx context.Context, matchID int64) error
}

// MatchRejecter rejects a match.
type MatchRejecter interface {
	RejectMatch(ctx context.Context, matchID int64) error
}

// MatchCanceller removes a match.
type MatchCanceller interface {
	CancelMatch(ctx context.Context, matchID int64) error
}

// matchAction adapts a single-id workflow transition to an HTTP handler.
func matchAction(action func(ctx context.Context, matchID int64) error, verb, done string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		matchID, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid match id")
			return
		}

		if err := action(ctx, matchID); err != nil {
			switch {
			case errors.Is(err, services.ErrMatchNotFound):
				writeError(w, http.StatusNotFound, "Match not found")
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Invalid match id")
			default:
				logger.FromContext(ctx).Errorw("failed to "+verb+" match", "match_id", matchID, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to "+verb+" match")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Match " + done + " successfully"})
	}
}

// NewAcceptMatchHandler returns an HTTP handler accepting a match.
// @Summary Accept match
// @Description Marks a match accepted. Accepting an already resolved match overwrites its status.
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} handlers.MessageResponse "Match accepted successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid match id"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to accept match"
// @Router /matches/{id}/accept [post]
// @Security BearerAuth
func NewAcceptMatchHandler(svc MatchAccepter) http.HandlerFunc {
	return matchAction(svc.AcceptMatch, "accept", "accepted")
}

// NewRejectMatchHandler returns an HTTP handler rejecting a match.
// @Summary Reject match
// @Description Marks a match rejected. The pair cannot request each other again while the record exists.
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} handlers.MessageResponse "Match rejected successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid match id"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to reject match"
// @Router /matches/{id}/reject [post]
// @Security BearerAuth
func NewRejectMatchHandler(svc MatchRejecter) http.HandlerFunc {
	return matchAction(svc.RejectMatch, "reject", "rejected")
}

// NewCancelMatchHandler returns an HTTP handler deleting a match.
// @Summary Cancel match
// @Description Deletes a match regardless of its status; the pair may then request again.
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} handlers.MessageResponse "Match cancelled successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid match id"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to cancel match"
// @Router /matches/{id} [delete]
// @Security BearerAuth
func NewCancelMatchHandler(svc MatchCanceller) http.HandlerFunc {
	return matchAction(svc.CancelMatch, "cancel", "cancelled")
}
