package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

// profileColumns selects a user joined with preferences, never the password hash.
// Expects users aliased as u and preferences as p.
const profileColumns = `
	u.id, u.email, u.name, u.age, u.gender, u.occupation, u.bio,
	u.budget, u.budget_min, u.budget_max, u.location, u.move_in_date,
	u.lease_duration, u.custom_duration, u.created_at,
	p.user_id AS pref_user_id, p.smoking, p.pets, p.night_owl,
	p.cleanliness_level, p.guests_frequency, p.noise_level
`

// profileRow is a users LEFT JOIN preferences row.
type profileRow struct {
	UserID    int64     `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	models.ProfileFields

	PrefUserID       sql.NullInt64 `db:"pref_user_id"`
	Smoking          sql.NullBool  `db:"smoking"`
	Pets             sql.NullBool  `db:"pets"`
	NightOwl         sql.NullBool  `db:"night_owl"`
	CleanlinessLevel sql.NullInt64 `db:"cleanliness_level"`
	GuestsFrequency  sql.NullInt64 `db:"guests_frequency"`
	NoiseLevel       sql.NullInt64 `db:"noise_level"`
}

func (r profileRow) toProfile() models.Profile {
	p := models.Profile{
		UserID:        r.UserID,
		Email:         r.Email,
		CreatedAt:     r.CreatedAt,
		ProfileFields: r.ProfileFields,
	}
	if r.PrefUserID.Valid {
		p.Preferences = &models.Preferences{
			UserID:           r.PrefUserID.Int64,
			Smoking:          r.Smoking.Bool,
			Pets:             r.Pets.Bool,
			NightOwl:         r.NightOwl.Bool,
			CleanlinessLevel: int(r.CleanlinessLevel.Int64),
			GuestsFrequency:  int(r.GuestsFrequency.Int64),
			NoiseLevel:       int(r.NoiseLevel.Int64),
		}
	}
	return p
}

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, name, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)

	logQuery(ctx, query, []any{email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the user's profile with preferences, or nil when the user does not exist.
func (r *UserReadRepository) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users u
		LEFT JOIN preferences p ON p.user_id = u.id
		WHERE u.id = $1
	`

	var row profileRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, userID)

	logQuery(ctx, query, []any{userID}, row.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	profile := row.toProfile()
	return &profile, nil
}

// ListCandidates returns every user except excludeID matching the filter, newest first.
// The budget bounds fall back to the legacy single budget column.
func (r *UserReadRepository) ListCandidates(ctx context.Context, excludeID int64, filter models.CandidateFilter) ([]models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users u
		LEFT JOIN preferences p ON p.user_id = u.id
		WHERE u.id <> $1
		  AND ($2::INT IS NULL OR COALESCE(u.budget_min, u.budget) >= $2)
		  AND ($3::INT IS NULL OR COALESCE(u.budget_max, u.budget) <= $3)
		  AND ($4::TEXT = '' OR u.location ILIKE '%' || $4 || '%')
		  AND ($5::TEXT = '' OR u.gender = $5)
		  AND ($6::INT IS NULL OR u.age >= $6)
		  AND ($7::INT IS NULL OR u.age <= $7)
		  AND ($8::BOOLEAN IS NULL OR p.smoking = $8)
		  AND ($9::BOOLEAN IS NULL OR p.pets = $9)
		  AND ($10::BOOLEAN IS NULL OR p.night_owl = $10)
		ORDER BY u.created_at DESC, u.id DESC
	`
	args := []any{
		excludeID,
		filter.MinBudget, filter.MaxBudget,
		filter.Location, filter.Gender,
		filter.MinAge, filter.MaxAge,
		filter.Smoking, filter.Pets, filter.NightOwl,
	}

	var rows []profileRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)

	logQuery(ctx, query, args, len(rows), err)

	if err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.toProfile())
	}
	return profiles, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and returns its id. A taken email surfaces as a unique violation.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) (int64, error) {
	const query = `
		INSERT INTO users (
			email, password_hash, name, age, gender, occupation, bio,
			budget, budget_min, budget_max, location, move_in_date,
			lease_duration, custom_duration, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING id
	`
	f := user.ProfileFields
	args := []any{
		user.Email, user.PasswordHash, f.Name, f.Age, f.Gender, f.Occupation, f.Bio,
		f.Budget, f.BudgetMin, f.BudgetMax, f.Location, f.MoveInDate,
		f.LeaseDuration, f.CustomDuration,
	}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	// keep the hash out of the logs
	logQuery(ctx, query, append([]any{user.Email, "***"}, args[2:]...), id, err)

	return id, err
}

// Update overwrites the profile attributes of a user. Reports false when the user does not exist.
// The legacy budget column is left untouched.
func (r *UserWriteRepository) Update(ctx context.Context, userID int64, fields models.ProfileFields) (bool, error) {
	const query = `
		UPDATE users SET
			name = $1, age = $2, gender = $3, occupation = $4, bio = $5,
			budget_min = $6, budget_max = $7, location = $8, move_in_date = $9,
			lease_duration = $10, custom_duration = $11
		WHERE id = $12
	`
	args := []any{
		fields.Name, fields.Age, fields.Gender, fields.Occupation, fields.Bio,
		fields.BudgetMin, fields.BudgetMax, fields.Location, fields.MoveInDate,
		fields.LeaseDuration, fields.CustomDuration, userID,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
