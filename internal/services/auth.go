package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/sbilibin2017/roommate-matcher/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for user credentials.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) (int64, error)
}

// PreferencesWriter creates or overwrites a user's preferences.
type PreferencesWriter interface {
	Save(ctx context.Context, prefs models.Preferences) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	tx         Transactor
	reader     UserReader
	writer     UserWriter
	prefWriter PreferencesWriter
	jwt        JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(tx Transactor, reader UserReader, writer UserWriter, prefWriter PreferencesWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		tx:         tx,
		reader:     reader,
		writer:     writer,
		prefWriter: prefWriter,
		jwt:        jwt,
	}
}

// Register creates a user with default preferences in one transaction and returns a JWT and the new user id.
func (svc *AuthService) Register(ctx context.Context, email, password string, fields models.ProfileFields) (string, int64, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return "", 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if user != nil {
		log.Warnw("user already exists", "email", email)
		return "", 0, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return "", 0, err
	}

	var userID int64
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := svc.writer.Save(ctx, models.NewUser{
			Email:         email,
			PasswordHash:  string(hashedPassword),
			ProfileFields: fields,
		})
		if err != nil {
			if repositories.IsUniqueViolation(err) {
				return ErrUserAlreadyExists
			}
			return err
		}
		userID = id
		return svc.prefWriter.Save(ctx, models.DefaultPreferences(id))
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			log.Warnw("user already exists", "email", email)
			return "", 0, err
		}
		log.Errorw("failed to save user", "err", err)
		return "", 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	token, err := svc.jwt.Generate(ctx, userID, email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", 0, err
	}

	return token, userID, nil
}

// Login authenticates a user and returns a JWT token and the user id.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, int64, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if user == nil {
		log.Warnw("user does not exist", "email", email)
		return "", 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warnw("invalid credentials", "email", email)
		return "", 0, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", 0, err
	}

	return token, user.UserID, nil
}
