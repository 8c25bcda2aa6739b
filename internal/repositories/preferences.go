package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

// PreferencesReadRepository handles preferences read operations
type PreferencesReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPreferencesReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PreferencesReadRepository {
	return &PreferencesReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the user's preferences, or nil when the user has none.
func (r *PreferencesReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.Preferences, error) {
	const query = `
		SELECT user_id, smoking, pets, night_owl, cleanliness_level, guests_frequency, noise_level
		FROM preferences
		WHERE user_id = $1
	`

	var prefs models.Preferences
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &prefs, query, userID)

	logQuery(ctx, query, []any{userID}, prefs, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// PreferencesWriteRepository handles preferences write operations
type PreferencesWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPreferencesWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PreferencesWriteRepository {
	return &PreferencesWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT: creates the user's preferences row or overwrites it.
func (r *PreferencesWriteRepository) Save(ctx context.Context, prefs models.Preferences) error {
	const query = `
		INSERT INTO preferences (user_id, smoking, pets, night_owl, cleanliness_level, guests_frequency, noise_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			smoking = EXCLUDED.smoking,
			pets = EXCLUDED.pets,
			night_owl = EXCLUDED.night_owl,
			cleanliness_level = EXCLUDED.cleanliness_level,
			guests_frequency = EXCLUDED.guests_frequency,
			noise_level = EXCLUDED.noise_level
	`
	args := []any{
		prefs.UserID, prefs.Smoking, prefs.Pets, prefs.NightOwl,
		prefs.CleanlinessLevel, prefs.GuestsFrequency, prefs.NoiseLevel,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	return err
}
