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

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, fields models.ProfileFields) (string, int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=8,max=128"`

	// required: true
	// default: John
	Name string `json:"name" validate:"required,min=1,max=100"`

	Age        *int    `json:"age" validate:"omitempty,min=18,max=100"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female non-binary prefer-not-to-say"`
	Occupation *string `json:"occupation" validate:"omitempty,max=100"`
	Bio        *string `json:"bio" validate:"omitempty,max=1000"`

	// Deprecated single budget, use budget_min/budget_max
	Budget    *int `json:"budget" validate:"omitempty,min=0,max=50000"`
	BudgetMin *int `json:"budget_min" validate:"omitempty,min=0,max=50000"`
	BudgetMax *int `json:"budget_max" validate:"omitempty,min=0,max=50000"`

	Location       *string `json:"location" validate:"omitempty,max=200"`
	MoveInDate     *string `json:"moveInDate" validate:"omitempty,max=32"`
	LeaseDuration  *string `json:"lease_duration" validate:"omitempty,oneof=3-months 6-months 12-months month-to-month custom"`
	CustomDuration *string `json:"custom_duration" validate:"omitempty,max=100"`
}

func (req RegisterRequest) profileFields() models.ProfileFields {
	return models.ProfileFields{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Occupation:     req.Occupation,
		Bio:            req.Bio,
		Budget:         req.Budget,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Location:       req.Location,
		MoveInDate:     req.MoveInDate,
		LeaseDuration:  req.LeaseDuration,
		CustomDuration: req.CustomDuration,
	}
}

// AuthResponse is returned by registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated user id
	// default: 1
	UserID int64 `json:"userId"`
}

// checkProfileFields enforces the rules struct tags cannot express.
func checkProfileFields(f models.ProfileFields) error {
	if f.BudgetMin != nil && f.BudgetMax != nil && *f.BudgetMin > *f.BudgetMax {
		return errors.New("minimum budget cannot be greater than maximum budget")
	}
	if f.LeaseDuration != nil && *f.LeaseDuration == models.LeaseCustom &&
		(f.CustomDuration == nil || *f.CustomDuration == "") {
		return errors.New("custom_duration is required when lease_duration is custom")
	}
	return nil
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with default lifestyle preferences. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterRequest
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

		token, userID, err := svc.Register(ctx, req.Email, req.Password, fields)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			default:
				logger.FromContext(ctx).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Registration failed. Please try again.")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Token:  token,
			UserID: userID,
		})
	}
}
