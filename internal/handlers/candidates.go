package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

//go:generate mockgen -source=candidates.go -destination=candidates_mock.go -package=handlers

// CandidateLister searches potential roommates for a user.
type CandidateLister interface {
	ListCandidates(ctx context.Context, userID int64, filter models.CandidateFilter) ([]models.Candidate, error)
}

// candidateQuery mirrors the supported query parameters for validation.
type candidateQuery struct {
	MinBudget *int   `json:"minBudget" validate:"omitempty,min=0"`
	MaxBudget *int   `json:"maxBudget" validate:"omitempty,min=0"`
	Location  string `json:"location" validate:"max=200"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female non-binary prefer-not-to-say"`
	MinAge    *int   `json:"minAge" validate:"omitempty,min=18,max=100"`
	MaxAge    *int   `json:"maxAge" validate:"omitempty,min=18,max=100"`
	Smoking   *bool  `json:"smoking"`
	Pets      *bool  `json:"pets"`
	NightOwl  *bool  `json:"nightOwl"`
}

func parseCandidateQuery(q url.Values) (candidateQuery, error) {
	var (
		cq  candidateQuery
		err error
	)
	cq.Location = q.Get("location")
	cq.Gender = q.Get("gender")

	for name, dst := range map[string]**int{
		"minBudget": &cq.MinBudget,
		"maxBudget": &cq.MaxBudget,
		"minAge":    &cq.MinAge,
		"maxAge":    &cq.MaxAge,
	} {
		if *dst, err = queryInt(q, name); err != nil {
			return cq, err
		}
	}
	for name, dst := range map[string]**bool{
		"smoking":  &cq.Smoking,
		"pets":     &cq.Pets,
		"nightOwl": &cq.NightOwl,
	} {
		if *dst, err = queryBool(q, name); err != nil {
			return cq, err
		}
	}
	return cq, nil
}

func queryInt(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func queryBool(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// NewListCandidatesHandler returns an HTTP handler for the roommate search.
// @Summary Search roommates
// @Description Lists every other user matching the filters, each with its compatibility score against the caller, best matches first.
// @Tags users
// @Produce json
// @Param minBudget query int false "Minimum budget"
// @Param maxBudget query int false "Maximum budget"
// @Param location query string false "Location substring (case-insensitive)"
// @Param gender query string false "Gender" Enums(male, female, non-binary, prefer-not-to-say)
// @Param minAge query int false "Minimum age"
// @Param maxAge query int false "Maximum age"
// @Param smoking query bool false "Smoker"
// @Param pets query bool false "Has pets"
// @Param nightOwl query bool false "Night owl"
// @Success 200 {array} models.Candidate
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
// @Security BearerAuth
func NewListCandidatesHandler(svc CandidateLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, err := callerID(r, tokener)
		if err != nil {
			unauthorized(ctx, w, err)
			return
		}

		cq, err := parseCandidateQuery(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(cq); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}

		candidates, err := svc.ListCandidates(ctx, caller, models.CandidateFilter{
			MinBudget: cq.MinBudget,
			MaxBudget: cq.MaxBudget,
			Location:  cq.Location,
			Gender:    cq.Gender,
			MinAge:    cq.MinAge,
			MaxAge:    cq.MaxAge,
			Smoking:   cq.Smoking,
			Pets:      cq.Pets,
			NightOwl:  cq.NightOwl,
		})
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to fetch users", "caller", caller, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}

		writeJSON(w, http.StatusOK, candidates)
	}
}
