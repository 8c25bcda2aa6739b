package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughTx makes the mock transactor run the unit of work directly.
func passthroughTx(tx *MockTransactor) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func ptr[T any](v T) *T { return &v }

type matchMocks struct {
	tx    *MockTransactor
	write *MockMatchWriter
	read  *MockMatchReader
	prefs *MockPreferencesReader
	kafka *MockKafkaWriter
}

func newMatchService(t *testing.T, withKafka bool) (*MatchService, matchMocks) {
	ctrl := gomock.NewController(t)

	m := matchMocks{
		tx:    NewMockTransactor(ctrl),
		write: NewMockMatchWriter(ctrl),
		read:  NewMockMatchReader(ctrl),
		prefs: NewMockPreferencesReader(ctrl),
	}
	passthroughTx(m.tx)

	var kw KafkaWriter
	if withKafka {
		m.kafka = NewMockKafkaWriter(ctrl)
		kw = m.kafka
	}
	return NewMatchService(m.tx, m.write, m.read, m.prefs, kw), m
}

func decodeEvent(t *testing.T, msg kafka.Message) models.MatchEvent {
	t.Helper()
	var ev models.MatchEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	return ev
}

func TestMatchService_RequestMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending match with score and publishes", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		smoker := models.DefaultPreferences(2)
		smoker.Smoking = true
		m.prefs.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(ptr(models.DefaultPreferences(1)), nil)
		m.prefs.EXPECT().GetByUserID(gomock.Any(), int64(2)).Return(&smoker, nil)
		m.write.EXPECT().Create(gomock.Any(), models.NewMatch{
			FromUserID:         1,
			ToUserID:           2,
			Message:            "hi",
			CompatibilityScore: 80,
		}).Return(int64(7), true, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, []byte("7"), msgs[0].Key)
				ev := decodeEvent(t, msgs[0])
				assert.Equal(t, models.MatchEventRequested, ev.Type)
				assert.Equal(t, int64(7), ev.MatchID)
				assert.Equal(t, models.MatchStatusPending, ev.Status)
				assert.NotEmpty(t, ev.EventID)
				return nil
			})

		id, err := svc.RequestMatch(ctx, 1, 2, "hi")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("missing preferences score neutral", func(t *testing.T) {
		svc, m := newMatchService(t, false)

		m.prefs.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, nil)
		m.prefs.EXPECT().GetByUserID(gomock.Any(), int64(2)).Return(ptr(models.DefaultPreferences(2)), nil)
		m.write.EXPECT().Create(gomock.Any(), models.NewMatch{FromUserID: 1, ToUserID: 2, CompatibilityScore: 50}).
			Return(int64(3), true, nil)

		id, err := svc.RequestMatch(ctx, 1, 2, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("existing pair is a duplicate", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.prefs.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		m.write.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), false, nil)

		_, err := svc.RequestMatch(ctx, 2, 1, "")
		assert.ErrorIs(t, err, ErrDuplicateRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.prefs.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		m.write.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), false, &pgconn.PgError{Code: "23503"})

		_, err := svc.RequestMatch(ctx, 1, 99, "")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.prefs.EXPECT().GetByUserID(gomock.Any(), int64(1)).Return(nil, errors.New("conn reset"))

		_, err := svc.RequestMatch(ctx, 1, 2, "")
		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	for _, tc := range []struct {
		name     string
		from, to int64
	}{
		{"self request", 4, 4},
		{"zero sender", 0, 4},
		{"negative recipient", 4, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newMatchService(t, true)
			_, err := svc.RequestMatch(ctx, tc.from, tc.to, "")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMatchService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("accept", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.MatchStatusAccepted).
			Return(&models.MatchDB{MatchID: 5, FromUserID: 1, ToUserID: 2, Status: models.MatchStatusAccepted}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				ev := decodeEvent(t, msgs[0])
				assert.Equal(t, models.MatchEventAccepted, ev.Type)
				assert.Equal(t, models.MatchStatusAccepted, ev.Status)
				return nil
			})

		assert.NoError(t, svc.AcceptMatch(ctx, 5))
	})

	t.Run("reject", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.MatchStatusRejected).
			Return(&models.MatchDB{MatchID: 5, Status: models.MatchStatusRejected}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.RejectMatch(ctx, 5))
	})

	t.Run("publish failure does not fail the call", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.MatchStatusAccepted).
			Return(&models.MatchDB{MatchID: 5, Status: models.MatchStatusAccepted}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.NoError(t, svc.AcceptMatch(ctx, 5))
	})

	t.Run("no kafka writer", func(t *testing.T) {
		svc, m := newMatchService(t, false)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.MatchStatusRejected).
			Return(&models.MatchDB{MatchID: 5, Status: models.MatchStatusRejected}, nil)

		assert.NoError(t, svc.RejectMatch(ctx, 5))
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(404), models.MatchStatusAccepted).
			Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.AcceptMatch(ctx, 404), ErrMatchNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().UpdateStatus(gomock.Any(), int64(5), models.MatchStatusRejected).
			Return(nil, errors.New("timeout"))

		assert.ErrorIs(t, svc.RejectMatch(ctx, 5), ErrStorageFailure)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newMatchService(t, true)
		assert.ErrorIs(t, svc.AcceptMatch(ctx, 0), ErrInvalidInput)
	})
}

func TestMatchService_CancelMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and publishes without status", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().Delete(gomock.Any(), int64(9)).
			Return(&models.MatchDB{MatchID: 9, FromUserID: 1, ToUserID: 2, Status: models.MatchStatusRejected}, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				ev := decodeEvent(t, msgs[0])
				assert.Equal(t, models.MatchEventCancelled, ev.Type)
				assert.Empty(t, ev.Status)
				assert.Equal(t, int64(1), ev.FromUserID)
				return nil
			})

		assert.NoError(t, svc.CancelMatch(ctx, 9))
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil, sql.ErrNoRows)

		assert.ErrorIs(t, svc.CancelMatch(ctx, 9), ErrMatchNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMatchService(t, true)

		m.write.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil, errors.New("boom"))

		assert.ErrorIs(t, svc.CancelMatch(ctx, 9), ErrStorageFailure)
	})
}

func TestMatchService_ListMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("partitions", func(t *testing.T) {
		svc, m := newMatchService(t, false)

		incoming := []models.MatchEntry{{MatchID: 1, FromUserID: 2, ToUserID: 1, Status: models.MatchStatusPending}}
		confirmed := []models.MatchEntry{{MatchID: 3, FromUserID: 1, ToUserID: 4, Status: models.MatchStatusAccepted}}
		m.read.EXPECT().ListIncoming(gomock.Any(), int64(1)).Return(incoming, nil)
		m.read.EXPECT().ListOutgoing(gomock.Any(), int64(1)).Return(nil, nil)
		m.read.EXPECT().ListConfirmed(gomock.Any(), int64(1)).Return(confirmed, nil)

		lists, err := svc.ListMatches(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, incoming, lists.Incoming)
		assert.NotNil(t, lists.Outgoing)
		assert.Empty(t, lists.Outgoing)
		assert.Equal(t, confirmed, lists.Confirmed)

		body, err := json.Marshal(lists)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"outgoing":[]`)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newMatchService(t, false)

		m.read.EXPECT().ListIncoming(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

		_, err := svc.ListMatches(ctx, 1)
		assert.ErrorIs(t, err, ErrStorageFailure)
	})

	t.Run("invalid user", func(t *testing.T) {
		svc, _ := newMatchService(t, false)
		_, err := svc.ListMatches(ctx, -3)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
