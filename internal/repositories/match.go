package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
)

const matchColumns = `id, from_user_id, to_user_id, compatibility_score, status, message, created_at, responded_at`

// MatchWriteRepository handles match write operations
type MatchWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMatchWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MatchWriteRepository {
	return &MatchWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a pending match request. It reports created=false without
// error when a match already exists for the unordered pair; the pair unique
// index makes the check and the insert a single atomic statement.
func (r *MatchWriteRepository) Create(ctx context.Context, m models.NewMatch) (id int64, created bool, err error) {
	const query = `
		INSERT INTO matches (from_user_id, to_user_id, compatibility_score, status, message, created_at)
		VALUES ($1, $2, $3, 'pending', $4, NOW())
		ON CONFLICT DO NOTHING
		RETURNING id
	`
	args := []any{m.FromUserID, m.ToUserID, m.CompatibilityScore, m.Message}

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(ctx, query, args, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// UpdateStatus sets the status and response time of a match regardless of its
// current status. Returns sql.ErrNoRows when the match does not exist.
func (r *MatchWriteRepository) UpdateStatus(ctx context.Context, matchID int64, status models.MatchStatus) (*models.MatchDB, error) {
	const query = `
		UPDATE matches
		SET status = $1, responded_at = NOW()
		WHERE id = $2
		RETURNING ` + matchColumns

	args := []any{status, matchID}

	var match models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &match, query, args...)

	logQuery(ctx, query, args, match.MatchID, err)

	if err != nil {
		return nil, err
	}
	return &match, nil
}

// Delete removes a match regardless of its status and returns the removed row.
// Returns sql.ErrNoRows when the match does not exist.
func (r *MatchWriteRepository) Delete(ctx context.Context, matchID int64) (*models.MatchDB, error) {
	const query = `
		DELETE FROM matches
		WHERE id = $1
		RETURNING ` + matchColumns

	var match models.MatchDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &match, query, matchID)

	logQuery(ctx, query, []any{matchID}, match.MatchID, err)

	if err != nil {
		return nil, err
	}
	return &match, nil
}

// matchEntryRow is a match joined with the other party's profile row.
type matchEntryRow struct {
	MatchID            int64              `db:"match_id"`
	FromUserID         int64              `db:"from_user_id"`
	ToUserID           int64              `db:"to_user_id"`
	Status             models.MatchStatus `db:"status"`
	Message            string             `db:"message"`
	CompatibilityScore *int               `db:"compatibility_score"`
	MatchCreatedAt     time.Time          `db:"match_created_at"`
	RespondedAt        *time.Time         `db:"responded_at"`
	profileRow
}

// matchEntryColumns expects matches aliased as m, the other party as u and their preferences as p.
const matchEntryColumns = `
	m.id AS match_id, m.from_user_id, m.to_user_id, m.status, m.message,
	m.compatibility_score, m.created_at AS match_created_at, m.responded_at,
` + profileColumns

// MatchReadRepository handles match read operations
type MatchReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMatchReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MatchReadRepository {
	return &MatchReadRepository{db: db, txGetter: txGetter}
}

// ListIncoming returns pending requests sent to the user, joined with the requester.
func (r *MatchReadRepository) ListIncoming(ctx context.Context, userID int64) ([]models.MatchEntry, error) {
	query := `
		SELECT ` + matchEntryColumns + `
		FROM matches m
		JOIN users u ON u.id = m.from_user_id
		LEFT JOIN preferences p ON p.user_id = u.id
		WHERE m.to_user_id = $1 AND m.status = 'pending'
		ORDER BY m.created_at DESC, m.id DESC
	`
	return r.list(ctx, query, userID)
}

// ListOutgoing returns pending requests sent by the user, joined with the recipient.
func (r *MatchReadRepository) ListOutgoing(ctx context.Context, userID int64) ([]models.MatchEntry, error) {
	query := `
		SELECT ` + matchEntryColumns + `
		FROM matches m
		JOIN users u ON u.id = m.to_user_id
		LEFT JOIN preferences p ON p.user_id = u.id
		WHERE m.from_user_id = $1 AND m.status = 'pending'
		ORDER BY m.created_at DESC, m.id DESC
	`
	return r.list(ctx, query, userID)
}

// ListConfirmed returns accepted matches in either direction, joined with the other party.
func (r *MatchReadRepository) ListConfirmed(ctx context.Context, userID int64) ([]models.MatchEntry, error) {
	query := `
		SELECT ` + matchEntryColumns + `
		FROM matches m
		JOIN users u ON u.id = CASE WHEN m.from_user_id = $1 THEN m.to_user_id ELSE m.from_user_id END
		LEFT JOIN preferences p ON p.user_id = u.id
		WHERE (m.from_user_id = $1 OR m.to_user_id = $1) AND m.status = 'accepted'
		ORDER BY m.created_at DESC, m.id DESC
	`
	return r.list(ctx, query, userID)
}

func (r *MatchReadRepository) list(ctx context.Context, query string, userID int64) ([]models.MatchEntry, error) {
	var rows []matchEntryRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)

	logQuery(ctx, query, []any{userID}, len(rows), err)

	if err != nil {
		return nil, err
	}

	entries := make([]models.MatchEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.MatchEntry{
			MatchID:            row.MatchID,
			FromUserID:         row.FromUserID,
			ToUserID:           row.ToUserID,
			Status:             row.Status,
			Message:            row.Message,
			CompatibilityScore: row.CompatibilityScore,
			CreatedAt:          row.MatchCreatedAt,
			RespondedAt:        row.RespondedAt,
			User:               row.profileRow.toProfile(),
		})
	}
	return entries, nil
}
