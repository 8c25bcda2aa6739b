package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/sbilibin2017/roommate-matcher/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityService_Compatibility(t *testing.T) {
	ctx := context.Background()

	quiet := models.DefaultPreferences(1)
	quiet.NoiseLevel = 1
	loud := models.DefaultPreferences(2)
	loud.NoiseLevel = 5

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(73, nil)

		score, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 73, score)
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(0, repositories.ErrCacheMiss)
		reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1, Preferences: &quiet}, nil).Times(2)
		reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(&models.Profile{UserID: 2, Preferences: &loud}, nil).Times(2)
		cache.EXPECT().Set(gomock.Any(), int64(1), int64(2), 84).Return(nil)

		score, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 84, score)
	})

	t.Run("preferences change while scoring drops the cached score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		louder := loud
		louder.UserID = 1

		cache.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(0, repositories.ErrCacheMiss)
		gomock.InOrder(
			reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1, Preferences: &quiet}, nil),
			reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1, Preferences: &louder}, nil),
		)
		reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(&models.Profile{UserID: 2, Preferences: &loud}, nil).Times(2)
		gomock.InOrder(
			cache.EXPECT().Set(gomock.Any(), int64(1), int64(2), 84).Return(nil),
			cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil),
		)

		score, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 100, score)
	})

	t.Run("failed re-read drops the cached score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(0, repositories.ErrCacheMiss)
		gomock.InOrder(
			reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1, Preferences: &quiet}, nil),
			reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(nil, errors.New("boom")),
		)
		reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(&models.Profile{UserID: 2, Preferences: &loud}, nil)
		cache.EXPECT().Set(gomock.Any(), int64(1), int64(2), 84).Return(nil)
		cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(errors.New("dial tcp"))

		score, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 84, score)
	})

	t.Run("cache down still answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("dial tcp"))
		reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1}, nil)
		reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(&models.Profile{UserID: 2, Preferences: &loud}, nil)
		cache.EXPECT().Set(gomock.Any(), int64(1), int64(2), 50).Return(errors.New("dial tcp"))

		score, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 50, score)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, repositories.ErrCacheMiss)
		reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(&models.Profile{UserID: 1}, nil)
		reader.EXPECT().GetProfile(gomock.Any(), int64(9)).Return(nil, nil)

		_, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockProfileReader(ctrl)
		cache := NewMockCompatibilityCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, repositories.ErrCacheMiss)
		reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

		_, err := NewCompatibilityService(reader, cache).Compatibility(ctx, 1, 2)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	t.Run("same user", func(t *testing.T) {
		_, err := NewCompatibilityService(nil, nil).Compatibility(ctx, 3, 3)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
