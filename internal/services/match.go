package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-matcher/internal/compatibility"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/sbilibin2017/roommate-matcher/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateRequest = errors.New("match request already exists for this pair")
	ErrMatchNotFound    = errors.New("match not found")
	// ErrStorageFailure wraps any unexpected storage error; the cause is logged, never returned to clients.
	ErrStorageFailure = errors.New("storage failure")
)

//go:generate mockgen -source=match.go -destination=match_mock.go -package=services

// Transactor runs a unit of work in a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MatchWriter defines write operations for match records.
type MatchWriter interface {
	Create(ctx context.Context, m models.NewMatch) (int64, bool, error)                                  // Inserts a pending match unless the pair already has one
	UpdateStatus(ctx context.Context, matchID int64, status models.MatchStatus) (*models.MatchDB, error) // Sets status and responded_at
	Delete(ctx context.Context, matchID int64) (*models.MatchDB, error)                                  // Removes a match regardless of status
}

// MatchReader defines the categorized match queries.
type MatchReader interface {
	ListIncoming(ctx context.Context, userID int64) ([]models.MatchEntry, error)
	ListOutgoing(ctx context.Context, userID int64) ([]models.MatchEntry, error)
	ListConfirmed(ctx context.Context, userID int64) ([]models.MatchEntry, error)
}

// PreferencesReader loads a user's preferences; nil when the user has none.
type PreferencesReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Preferences, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MatchService implements the match request workflow and publishes lifecycle events.
type MatchService struct {
	tx          Transactor
	writeRepo   MatchWriter
	readRepo    MatchReader
	prefsRepo   PreferencesReader
	kafkaWriter KafkaWriter
}

// NewMatchService creates a new MatchService. kafkaWriter may be nil.
func NewMatchService(
	tx Transactor,
	writeRepo MatchWriter,
	readRepo MatchReader,
	prefsRepo PreferencesReader,
	kafkaWriter KafkaWriter,
) *MatchService {
	return &MatchService{
		tx:          tx,
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		prefsRepo:   prefsRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a match event to Kafka. Failures are logged only.
func (s *MatchService) publishEvent(ctx context.Context, eventType string, match *models.MatchDB) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType, "match_id", match.MatchID)
		return
	}

	event := models.MatchEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		MatchID:    match.MatchID,
		FromUserID: match.FromUserID,
		ToUserID:   match.ToUserID,
		Status:     match.Status,
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal match event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	// keyed by match so a match's events stay ordered within one partition
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(match.MatchID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish match event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		log.Infow("Match event published to Kafka", "event_id", event.EventID, "type", eventType, "match_id", match.MatchID)
	}
}

// RequestMatch creates a pending match from fromID to toID with the pair's
// compatibility score, and returns the new match id.
func (s *MatchService) RequestMatch(ctx context.Context, fromID, toID int64, message string) (int64, error) {
	log := logger.FromContext(ctx)

	if fromID <= 0 || toID <= 0 || fromID == toID {
		log.Warnw("invalid match request", "from_user_id", fromID, "to_user_id", toID)
		return 0, ErrInvalidInput
	}

	var (
		matchID int64
		score   int
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		fromPrefs, err := s.prefsRepo.GetByUserID(ctx, fromID)
		if err != nil {
			return err
		}
		toPrefs, err := s.prefsRepo.GetByUserID(ctx, toID)
		if err != nil {
			return err
		}
		score = compatibility.Score(fromPrefs, toPrefs)

		id, created, err := s.writeRepo.Create(ctx, models.NewMatch{
			FromUserID:         fromID,
			ToUserID:           toID,
			Message:            message,
			CompatibilityScore: score,
		})
		if err != nil {
			if repositories.IsForeignKeyViolation(err) {
				return ErrUserNotFound
			}
			return err
		}
		if !created {
			return ErrDuplicateRequest
		}
		matchID = id
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateRequest), errors.Is(err, ErrUserNotFound):
			log.Warnw("match request refused", "from_user_id", fromID, "to_user_id", toID, "error", err)
			return 0, err
		default:
			log.Errorw("failed to create match request", "from_user_id", fromID, "to_user_id", toID, "error", err)
			return 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
		}
	}

	s.publishEvent(ctx, models.MatchEventRequested, &models.MatchDB{
		MatchID:            matchID,
		FromUserID:         fromID,
		ToUserID:           toID,
		CompatibilityScore: &score,
		Status:             models.MatchStatusPending,
		Message:            message,
	})

	return matchID, nil
}

// AcceptMatch marks a match accepted. Repeating it on a resolved match is allowed.
func (s *MatchService) AcceptMatch(ctx context.Context, matchID int64) error {
	return s.respond(ctx, matchID, models.MatchStatusAccepted, models.MatchEventAccepted)
}

// RejectMatch marks a match rejected. Repeating it on a resolved match is allowed.
func (s *MatchService) RejectMatch(ctx context.Context, matchID int64) error {
	return s.respond(ctx, matchID, models.MatchStatusRejected, models.MatchEventRejected)
}

func (s *MatchService) respond(ctx context.Context, matchID int64, status models.MatchStatus, eventType string) error {
	log := logger.FromContext(ctx)

	if matchID <= 0 {
		return ErrInvalidInput
	}

	var match *models.MatchDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.writeRepo.UpdateStatus(ctx, matchID, status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		match = m
		return err
	})
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			log.Warnw("match not found", "match_id", matchID, "status", status)
			return err
		}
		log.Errorw("failed to update match status", "match_id", matchID, "status", status, "error", err)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	s.publishEvent(ctx, eventType, match)
	return nil
}

// CancelMatch deletes a match regardless of its status, freeing the pair for a new request.
func (s *MatchService) CancelMatch(ctx context.Context, matchID int64) error {
	log := logger.FromContext(ctx)

	if matchID <= 0 {
		return ErrInvalidInput
	}

	var match *models.MatchDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.writeRepo.Delete(ctx, matchID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		match = m
		return err
	})
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			log.Warnw("match not found", "match_id", matchID)
			return err
		}
		log.Errorw("failed to cancel match", "match_id", matchID, "error", err)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	// the row is gone; the event carries no status
	match.Status = ""
	s.publishEvent(ctx, models.MatchEventCancelled, match)
	return nil
}

// ListMatches returns the user's incoming, outgoing and confirmed matches.
func (s *MatchService) ListMatches(ctx context.Context, userID int64) (*models.MatchLists, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	var lists models.MatchLists
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if lists.Incoming, err = s.readRepo.ListIncoming(ctx, userID); err != nil {
			return err
		}
		if lists.Outgoing, err = s.readRepo.ListOutgoing(ctx, userID); err != nil {
			return err
		}
		lists.Confirmed, err = s.readRepo.ListConfirmed(ctx, userID)
		return err
	})
	if err != nil {
		log.Errorw("failed to list matches", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	// empty collections encode as []
	if lists.Incoming == nil {
		lists.Incoming = []models.MatchEntry{}
	}
	if lists.Outgoing == nil {
		lists.Outgoing = []models.MatchEntry{}
	}
	if lists.Confirmed == nil {
		lists.Confirmed = []models.MatchEntry{}
	}

	return &lists, nil
}
