package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sbilibin2017/roommate-matcher/internal/compatibility"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

// ProfileReader defines read operations on user profiles.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)                                        // nil when the user does not exist
	ListCandidates(ctx context.Context, excludeID int64, filter models.CandidateFilter) ([]models.Profile, error) // every user but excludeID matching filter
}

// ProfileWriter defines profile updates.
type ProfileWriter interface {
	Update(ctx context.Context, userID int64, fields models.ProfileFields) (bool, error)
}

// CompatibilityCache caches pairwise compatibility scores.
type CompatibilityCache interface {
	Get(ctx context.Context, a, b int64) (int, error)
	Set(ctx context.Context, a, b int64, score int) error
	InvalidateUser(ctx context.Context, userID int64) error
}

// ProfileService handles profile reads/updates and candidate search.
type ProfileService struct {
	tx          Transactor
	reader      ProfileReader
	writer      ProfileWriter
	prefsReader PreferencesReader
	prefsWriter PreferencesWriter
	cache       CompatibilityCache
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	tx Transactor,
	reader ProfileReader,
	writer ProfileWriter,
	prefsReader PreferencesReader,
	prefsWriter PreferencesWriter,
	cache CompatibilityCache,
) *ProfileService {
	return &ProfileService{
		tx:          tx,
		reader:      reader,
		writer:      writer,
		prefsReader: prefsReader,
		prefsWriter: prefsWriter,
		cache:       cache,
	}
}

// GetProfile returns the user's profile with preferences.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.reader.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

// UpdateProfile overwrites the profile attributes and applies the preference
// changes on top of the stored (or default) preferences.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, fields models.ProfileFields, prefs models.PreferencesUpdate) error {
	log := logger.FromContext(ctx)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := s.writer.Update(ctx, userID, fields)
		if err != nil {
			return err
		}
		if !found {
			return ErrUserNotFound
		}

		if prefs.IsEmpty() {
			return nil
		}

		current, err := s.prefsReader.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		base := models.DefaultPreferences(userID)
		if current != nil {
			base = *current
		}
		return s.prefsWriter.Save(ctx, prefs.Apply(base))
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Warnw("profile update for unknown user", "user_id", userID)
			return err
		}
		log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	if !prefs.IsEmpty() {
		if err := s.cache.InvalidateUser(ctx, userID); err != nil {
			log.Errorw("failed to invalidate compatibility cache", "user_id", userID, "error", err)
		}
	}

	return nil
}

// ListCandidates returns the users matching filter, except userID itself,
// scored against userID's preferences and sorted by score, best first.
// Ties keep the newest-first storage order.
func (s *ProfileService) ListCandidates(ctx context.Context, userID int64, filter models.CandidateFilter) ([]models.Candidate, error) {
	log := logger.FromContext(ctx)

	me, err := s.prefsReader.GetByUserID(ctx, userID)
	if err != nil {
		log.Errorw("failed to get preferences", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	profiles, err := s.reader.ListCandidates(ctx, userID, filter)
	if err != nil {
		log.Errorw("failed to list candidates", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	candidates := make([]models.Candidate, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, models.Candidate{
			Profile:            p,
			CompatibilityScore: compatibility.Score(me, p.Preferences),
		})
	}

	slices.SortStableFunc(candidates, func(a, b models.Candidate) int {
		return cmp.Compare(b.CompatibilityScore, a.CompatibilityScore)
	})

	return candidates, nil
}
