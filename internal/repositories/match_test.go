package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchRowColumns = []string{
	"id", "from_user_id", "to_user_id", "compatibility_score", "status", "message", "created_at", "responded_at",
}

func TestMatchWriteRepository_Create(t *testing.T) {
	ctx := context.Background()
	newMatch := models.NewMatch{FromUserID: 1, ToUserID: 2, Message: "hi", CompatibilityScore: 64}

	t.Run("created", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("INSERT INTO matches").
			WithArgs(1, 2, 64, "hi").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

		id, created, err := repo.Create(ctx, newMatch)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(10), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair already exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("ON CONFLICT DO NOTHING").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		id, created, err := repo.Create(ctx, newMatch)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("INSERT INTO matches").
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		_, created, err := repo.Create(ctx, newMatch)
		assert.True(t, IsForeignKeyViolation(err))
		assert.False(t, created)
	})
}

func TestMatchWriteRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("UPDATE matches").
			WithArgs("accepted", 7).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(7, 1, 2, 64, "accepted", "hi", now, now))

		match, err := repo.UpdateStatus(ctx, 7, models.MatchStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, int64(7), match.MatchID)
		assert.Equal(t, models.MatchStatusAccepted, match.Status)
		require.NotNil(t, match.CompatibilityScore)
		assert.Equal(t, 64, *match.CompatibilityScore)
		assert.NotNil(t, match.RespondedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("UPDATE matches").
			WillReturnRows(sqlmock.NewRows(matchRowColumns))

		match, err := repo.UpdateStatus(ctx, 99, models.MatchStatusRejected)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, match)
	})
}

func TestMatchWriteRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("DELETE FROM matches").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(7, 1, 2, nil, "rejected", "", time.Now(), nil))

		match, err := repo.Delete(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), match.FromUserID)
		assert.Nil(t, match.CompatibilityScore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchWriteRepository(db, GetTxFromContext)

		mock.ExpectQuery("DELETE FROM matches").
			WillReturnRows(sqlmock.NewRows(matchRowColumns))

		_, err := repo.Delete(ctx, 7)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestMatchReadRepository_EmptyLists(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewMatchReadRepository(db, GetTxFromContext)

	mock.ExpectQuery("m.to_user_id = \\$1 AND m.status = 'pending'").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"match_id"}))
	mock.ExpectQuery("m.from_user_id = \\$1 AND m.status = 'pending'").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"match_id"}))
	mock.ExpectQuery("m.status = 'accepted'").WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"match_id"}))

	incoming, err := repo.ListIncoming(ctx, 1)
	require.NoError(t, err)
	outgoing, err := repo.ListOutgoing(ctx, 1)
	require.NoError(t, err)
	confirmed, err := repo.ListConfirmed(ctx, 1)
	require.NoError(t, err)

	// non-nil so they encode as []
	assert.NotNil(t, incoming)
	assert.Empty(t, incoming)
	assert.NotNil(t, outgoing)
	assert.Empty(t, outgoing)
	assert.NotNil(t, confirmed)
	assert.Empty(t, confirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchReadRepository_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchReadRepository(db, GetTxFromContext)

	mock.ExpectQuery("FROM matches m").WillReturnError(sql.ErrConnDone)

	entries, err := repo.ListIncoming(context.Background(), 1)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, entries)
}
