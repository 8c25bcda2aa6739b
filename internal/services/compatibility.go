package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/roommate-matcher/internal/compatibility"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/repositories"
)

// CompatibilityService computes pairwise scores through a cache.
type CompatibilityService struct {
	reader ProfileReader
	cache  CompatibilityCache
}

// NewCompatibilityService creates a new CompatibilityService.
func NewCompatibilityService(reader ProfileReader, cache CompatibilityCache) *CompatibilityService {
	return &CompatibilityService{reader: reader, cache: cache}
}

// Compatibility returns the compatibility score of two distinct users.
func (s *CompatibilityService) Compatibility(ctx context.Context, userID, otherID int64) (int, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || otherID <= 0 || userID == otherID {
		return 0, ErrInvalidInput
	}

	score, err := s.cache.Get(ctx, userID, otherID)
	if err == nil {
		return score, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		log.Warnw("compatibility cache unavailable", "error", err)
	}

	score, err = s.score(ctx, userID, otherID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, userID, otherID, score); err != nil {
		log.Errorw("failed to cache compatibility score", "user_id", userID, "other_user_id", otherID, "score", score, "error", err)
		return score, nil
	}

	// A preference update committed between the reads and Set has already run its
	// invalidation, so the entry just written may be stale. Re-read and drop it on change.
	fresh, err := s.score(ctx, userID, otherID)
	if err == nil && fresh == score {
		return score, nil
	}
	if invErr := s.cache.InvalidateUser(ctx, userID); invErr != nil {
		log.Errorw("failed to drop stale compatibility score", "user_id", userID, "other_user_id", otherID, "error", invErr)
	}
	if err != nil {
		return score, nil
	}
	return fresh, nil
}

// score loads both users and scores their current preferences.
func (s *CompatibilityService) score(ctx context.Context, userID, otherID int64) (int, error) {
	log := logger.FromContext(ctx)

	user, err := s.reader.GetProfile(ctx, userID)
	if err != nil {
		log.Errorw("failed to get profile", "user_id", userID, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	other, err := s.reader.GetProfile(ctx, otherID)
	if err != nil {
		log.Errorw("failed to get profile", "user_id", otherID, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if user == nil || other == nil {
		return 0, ErrUserNotFound
	}

	return compatibility.Score(user.Preferences, other.Preferences), nil
}
