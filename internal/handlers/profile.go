package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/sbilibin2017/roommate-matcher/internal/services"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter loads a user's public profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// ProfileUpdater updates the caller's profile and preferences.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, fields models.ProfileFields, prefs models.PreferencesUpdate) error
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Profile attributes are overwritten; omitted preferences keep their value.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// required: true
	Name string `json:"name" validate:"required,min=1,max=100"`

	Age            *int    `json:"age" validate:"omitempty,min=18,max=100"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female non-binary prefer-not-to-say"`
	Occupation     *string `json:"occupation" validate:"omitempty,max=100"`
	Bio            *string `json:"bio" validate:"omitempty,max=1000"`
	BudgetMin      *int    `json:"budgetMin" validate:"omitempty,min=0,max=50000"`
	BudgetMax      *int    `json:"budgetMax" validate:"omitempty,min=0,max=50000"`
	Location       *string `json:"location" validate:"omitempty,max=200"`
	MoveInDate     *string `json:"move_in_date" validate:"omitempty,max=32"`
	LeaseDuration  *string `json:"lease_duration" validate:"omitempty,oneof=3-months 6-months 12-months month-to-month custom"`
	CustomDuration *string `json:"custom_duration" validate:"omitempty,max=100"`

	Smoking          *bool `json:"smoking"`
	Pets             *bool `json:"pets"`
	NightOwl         *bool `json:"nightOwl"`
	CleanlinessLevel *int  `json:"cleanlinessLevel" validate:"omitempty,min=1,max=5"`
	GuestsFrequency  *int  `json:"guestsFrequency" validate:"omitempty,min=1,max=5"`
	NoiseLevel       *int  `json:"noiseLevel" validate:"omitempty,min=1,max=5"`
}

func (req UpdateProfileRequest) profileFields() models.ProfileFields {
	return models.ProfileFields{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Occupation:     req.Occupation,
		Bio:            req.Bio,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Location:       req.Location,
		MoveInDate:     req.MoveInDate,
		LeaseDuration:  req.LeaseDuration,
		CustomDuration: req.CustomDuration,
	}
}

func (req UpdateProfileRequest) preferences() models.PreferencesUpdate {
	return models.PreferencesUpdate{
		Smoking:          req.Smoking,
		Pets:             req.Pets,
		NightOwl:         req.NightOwl,
		CleanlinessLevel: req.CleanlinessLevel,
		GuestsFrequency:  req.GuestsFrequency,
		NoiseLevel:       req.NoiseLevel,
	}
}

// NewGetProfileHandler returns an HTTP handler for fetching a user's profile.
// @Summary Get user profile
// @Description Returns the profile and lifestyle preferences of a user. The password hash is never included.
// @Tags profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id} [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := pathID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		profile, err := svc.GetProfile(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.FromContext(ctx).Errorw("failed to fetch profile", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch profile")
			}
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update user profile
// @Description Overwrites the profile attributes and merges lifestyle preferences. Only the owner may update a profile.
// @Tags profile
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.UpdateProfileRequest true "Profile update"
// @Success 200 {object} handlers.MessageResponse "Profile updated successfully"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the profile owner"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id} [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, tokener Tokener) http.HandlerFunc {
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
			logger.FromContext(ctx).Warnw("profile update by non-owner", "user_id", userID, "caller", caller)
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err))
			return
		}
		fields := req.profileFields()
		if err := checkProfileFields(fields); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.UpdateProfile(ctx, userID, fields, req.preferences()); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.FromContext(ctx).Errorw("failed to update profile", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to update profile")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile updated successfully"})
	}
}
