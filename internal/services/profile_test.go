package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileMocks struct {
	reader      *MockProfileReader
	writer      *MockProfileWriter
	prefsReader *MockPreferencesReader
	prefsWriter *MockPreferencesWriter
	cache       *MockCompatibilityCache
}

func newProfileService(t *testing.T) (*ProfileService, profileMocks) {
	ctrl := gomock.NewController(t)

	tx := NewMockTransactor(ctrl)
	passthroughTx(tx)
	m := profileMocks{
		reader:      NewMockProfileReader(ctrl),
		writer:      NewMockProfileWriter(ctrl),
		prefsReader: NewMockPreferencesReader(ctrl),
		prefsWriter: NewMockPreferencesWriter(ctrl),
		cache:       NewMockCompatibilityCache(ctrl),
	}
	return NewProfileService(tx, m.reader, m.writer, m.prefsReader, m.prefsWriter, m.cache), m
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, m := newProfileService(t)
		want := &models.Profile{UserID: 1, ProfileFields: models.ProfileFields{Name: "Ann"}}
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(1)).Return(want, nil)

		got, err := svc.GetProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(nil, nil)

		_, err := svc.GetProfile(ctx, 2)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(2)).Return(nil, errors.New("boom"))

		_, err := svc.GetProfile(ctx, 2)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	fields := models.ProfileFields{Name: "Ann", BudgetMin: ptr(500), BudgetMax: ptr(900)}

	t.Run("profile only leaves preferences and cache alone", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.writer.EXPECT().Update(gomock.Any(), int64(1), fields).Return(true, nil)

		assert.NoError(t, svc.UpdateProfile(ctx, 1, fields, models.PreferencesUpdate{}))
	})

	t.Run("merges preferences and invalidates cache", func(t *testing.T) {
		svc, m := newProfileService(t)

		stored := models.Preferences{UserID: 1, Pets: true, CleanlinessLevel: 2, GuestsFrequency: 4, NoiseLevel: 1}
		m.writer.EXPECT().Update(gomock.Any(), int64(1), fields).Return(true, nil)
		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&stored, nil)
		m.prefsWriter.EXPECT().Save(gomock.Any(), models.Preferences{
			UserID:           1,
			Smoking:          true,
			Pets:             true,
			CleanlinessLevel: 5,
			GuestsFrequency:  4,
			NoiseLevel:       1,
		}).Return(nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		err := svc.UpdateProfile(ctx, 1, fields, models.PreferencesUpdate{Smoking: ptr(true), CleanlinessLevel: ptr(5)})
		assert.NoError(t, err)
	})

	t.Run("missing preferences start from defaults", func(t *testing.T) {
		svc, m := newProfileService(t)

		want := models.DefaultPreferences(1)
		want.NightOwl = true
		m.writer.EXPECT().Update(gomock.Any(), int64(1), fields).Return(true, nil)
		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, nil)
		m.prefsWriter.EXPECT().Save(gomock.Any(), want).Return(nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(errors.New("redis down"))

		assert.NoError(t, svc.UpdateProfile(ctx, 1, fields, models.PreferencesUpdate{NightOwl: ptr(true)}))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.writer.EXPECT().Update(gomock.Any(), int64(8), fields).Return(false, nil)

		err := svc.UpdateProfile(ctx, 8, fields, models.PreferencesUpdate{Pets: ptr(false)})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newProfileService(t)
		m.writer.EXPECT().Update(gomock.Any(), int64(1), fields).Return(true, nil)
		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

		err := svc.UpdateProfile(ctx, 1, fields, models.PreferencesUpdate{Pets: ptr(false)})
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestProfileService_ListCandidates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	me := models.DefaultPreferences(1)
	smoker := models.DefaultPreferences(2)
	smoker.Smoking = true
	twin := models.DefaultPreferences(3)

	filter := models.CandidateFilter{Location: "berlin"}

	t.Run("sorted by score, ties keep storage order", func(t *testing.T) {
		svc, m := newProfileService(t)

		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&me, nil)
		m.reader.EXPECT().ListCandidates(gomock.Any(), int64(1), filter).Return([]models.Profile{
			{UserID: 2, CreatedAt: now, Preferences: &smoker},
			{UserID: 4, CreatedAt: now.Add(-time.Hour)},
			{UserID: 3, CreatedAt: now.Add(-2 * time.Hour), Preferences: &twin},
			{UserID: 5, CreatedAt: now.Add(-3 * time.Hour)},
		}, nil)

		got, err := svc.ListCandidates(ctx, 1, filter)
		require.NoError(t, err)

		ids := make([]int64, 0, len(got))
		scores := make([]int, 0, len(got))
		for _, c := range got {
			ids = append(ids, c.UserID)
			scores = append(scores, c.CompatibilityScore)
		}
		assert.Equal(t, []int64{3, 2, 4, 5}, ids)
		assert.Equal(t, []int{100, 80, 50, 50}, scores)
	})

	t.Run("no candidates", func(t *testing.T) {
		svc, m := newProfileService(t)

		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, nil)
		m.reader.EXPECT().ListCandidates(gomock.Any(), int64(1), filter).Return(nil, nil)

		got, err := svc.ListCandidates(ctx, 1, filter)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newProfileService(t)

		m.prefsReader.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(&me, nil)
		m.reader.EXPECT().ListCandidates(gomock.Any(), int64(1), filter).Return(nil, errors.New("boom"))

		_, err := svc.ListCandidates(ctx, 1, filter)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}
