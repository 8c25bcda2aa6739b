package models

import "time"

// MatchStatus is the lifecycle state of a match request.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// MatchDB represents a match row in the database
type MatchDB struct {
	MatchID            int64       `json:"id" db:"id"`
	FromUserID         int64       `json:"from_user_id" db:"from_user_id"`
	ToUserID           int64       `json:"to_user_id" db:"to_user_id"`
	CompatibilityScore *int        `json:"compatibility_score" db:"compatibility_score"`
	Status             MatchStatus `json:"status" db:"status"`
	Message            string      `json:"message" db:"message"`
	CreatedAt          time.Time   `json:"created_at" db:"created_at"`
	RespondedAt        *time.Time  `json:"responded_at" db:"responded_at"`
}

// OtherUserID returns the counterpart of userID in the match.
func (m *MatchDB) OtherUserID(userID int64) (int64, bool) {
	switch userID {
	case m.FromUserID:
		return m.ToUserID, true
	case m.ToUserID:
		return m.FromUserID, true
	}
	return 0, false
}

// NewMatch is the input for creating a pending match request.
type NewMatch struct {
	FromUserID         int64
	ToUserID           int64
	Message            string
	CompatibilityScore int
}

// MatchEntry is a match joined with the profile of the other party.
type MatchEntry struct {
	MatchID            int64       `json:"match_id"`
	FromUserID         int64       `json:"from_user_id"`
	ToUserID           int64       `json:"to_user_id"`
	Status             MatchStatus `json:"status"`
	Message            string      `json:"message"`
	CompatibilityScore *int        `json:"compatibility_score"`
	CreatedAt          time.Time   `json:"match_created_at"`
	RespondedAt        *time.Time  `json:"responded_at"`
	User               Profile     `json:"user"`
}

// MatchLists partitions every match touching a user.
type MatchLists struct {
	Incoming  []MatchEntry `json:"incoming"`  // pending, sent to the user
	Outgoing  []MatchEntry `json:"outgoing"`  // pending, sent by the user
	Confirmed []MatchEntry `json:"confirmed"` // accepted, either direction
}

// Match event types published on every workflow transition
const (
	MatchEventRequested = "match.requested"
	MatchEventAccepted  = "match.accepted"
	MatchEventRejected  = "match.rejected"
	MatchEventCancelled = "match.cancelled"
)

// MatchEvent describes a match lifecycle transition.
type MatchEvent struct {
	EventID    string      `json:"event_id"`   // Unique event identifier
	Type       string      `json:"type"`       // One of the MatchEvent* constants
	MatchID    int64       `json:"match_id"`   // Affected match
	FromUserID int64       `json:"from_user_id"`
	ToUserID   int64       `json:"to_user_id"`
	Status     MatchStatus `json:"status,omitempty"` // Status after the transition; empty for cancellation
	Timestamp  int64       `json:"timestamp"`        // Unix seconds
}
