package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepository(t *testing.T) {
	ctx := context.Background()
	prefColumns := []string{"user_id", "smoking", "pets", "night_owl", "cleanliness_level", "guests_frequency", "noise_level"}

	t.Run("get", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPreferencesReadRepository(db, GetTxFromContext)

		mock.ExpectQuery("FROM preferences").WithArgs(3).
			WillReturnRows(sqlmock.NewRows(prefColumns).AddRow(3, true, false, true, 4, 2, 5))

		prefs, err := repo.GetByUserID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, &models.Preferences{
			UserID: 3, Smoking: true, NightOwl: true,
			CleanlinessLevel: 4, GuestsFrequency: 2, NoiseLevel: 5,
		}, prefs)
	})

	t.Run("get missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPreferencesReadRepository(db, GetTxFromContext)

		mock.ExpectQuery("FROM preferences").WillReturnRows(sqlmock.NewRows(prefColumns))

		prefs, err := repo.GetByUserID(ctx, 3)
		assert.NoError(t, err)
		assert.Nil(t, prefs)
	})

	t.Run("save upserts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPreferencesWriteRepository(db, GetTxFromContext)

		mock.ExpectExec("ON CONFLICT \\(user_id\\) DO UPDATE").
			WithArgs(3, false, false, false, 3, 3, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, models.DefaultPreferences(3))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
