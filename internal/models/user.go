package models

import "time"

// Supported values for the profile gender field
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderNonBinary      = "non-binary"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// Supported lease durations. LeaseCustom means CustomDuration holds free text.
const (
	Lease3Months      = "3-months"
	Lease6Months      = "6-months"
	Lease12Months     = "12-months"
	LeaseMonthToMonth = "month-to-month"
	LeaseCustom       = "custom"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Name         string    `json:"name" db:"name"`             // Display name
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Registration timestamp
}

// ProfileFields holds the user-editable profile attributes.
type ProfileFields struct {
	Name           string  `json:"name" db:"name"`
	Age            *int    `json:"age" db:"age"`
	Gender         *string `json:"gender" db:"gender"`
	Occupation     *string `json:"occupation" db:"occupation"`
	Bio            *string `json:"bio" db:"bio"`
	Budget         *int    `json:"budget,omitempty" db:"budget"` // deprecated single budget, read as fallback
	BudgetMin      *int    `json:"budget_min" db:"budget_min"`
	BudgetMax      *int    `json:"budget_max" db:"budget_max"`
	Location       *string `json:"location" db:"location"`
	MoveInDate     *string `json:"move_in_date" db:"move_in_date"`
	LeaseDuration  *string `json:"lease_duration" db:"lease_duration"`
	CustomDuration *string `json:"custom_duration" db:"custom_duration"`
}

// Profile is a user as exposed to other users: profile attributes plus
// lifestyle preferences, without the credential.
type Profile struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ProfileFields

	// Preferences is nil when the user has no preferences row
	Preferences *Preferences `json:"preferences"`
}

// EffectiveBudget returns the budget range, falling back to the legacy
// single budget for whichever bound is missing.
func (p *ProfileFields) EffectiveBudget() (min, max *int) {
	min, max = p.BudgetMin, p.BudgetMax
	if min == nil {
		min = p.Budget
	}
	if max == nil {
		max = p.Budget
	}
	return min, max
}

// NewUser is the input for registering a user.
type NewUser struct {
	Email        string
	PasswordHash string
	ProfileFields
}

// CandidateFilter narrows the candidate search. Nil/empty fields do not filter.
type CandidateFilter struct {
	MinBudget *int
	MaxBudget *int
	Location  string // case-insensitive substring
	Gender    string
	MinAge    *int
	MaxAge    *int
	Smoking   *bool
	Pets      *bool
	NightOwl  *bool
}

// Candidate is a potential roommate annotated with compatibility to the searching user.
type Candidate struct {
	Profile
	CompatibilityScore int `json:"compatibility_score"`
}
