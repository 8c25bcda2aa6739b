package models

// Bounds for the 1..5 lifestyle scales
const (
	MinLevel     = 1
	MaxLevel     = 5
	DefaultLevel = 3
)

// Preferences represents a user's declared lifestyle preferences (one row per user)
type Preferences struct {
	UserID           int64 `json:"user_id" db:"user_id"`
	Smoking          bool  `json:"smoking" db:"smoking"`
	Pets             bool  `json:"pets" db:"pets"`
	NightOwl         bool  `json:"night_owl" db:"night_owl"`
	CleanlinessLevel int   `json:"cleanliness_level" db:"cleanliness_level"` // 1..5
	GuestsFrequency  int   `json:"guests_frequency" db:"guests_frequency"`   // 1..5
	NoiseLevel       int   `json:"noise_level" db:"noise_level"`             // 1..5
}

// DefaultPreferences returns the preferences every user starts with at registration.
func DefaultPreferences(userID int64) Preferences {
	return Preferences{
		UserID:           userID,
		CleanlinessLevel: DefaultLevel,
		GuestsFrequency:  DefaultLevel,
		NoiseLevel:       DefaultLevel,
	}
}

// PreferencesUpdate is a partial preferences change; nil fields keep their current value.
type PreferencesUpdate struct {
	Smoking          *bool `json:"smoking"`
	Pets             *bool `json:"pets"`
	NightOwl         *bool `json:"night_owl"`
	CleanlinessLevel *int  `json:"cleanliness_level"`
	GuestsFrequency  *int  `json:"guests_frequency"`
	NoiseLevel       *int  `json:"noise_level"`
}

// IsEmpty reports whether the update changes nothing.
func (u PreferencesUpdate) IsEmpty() bool {
	return u == PreferencesUpdate{}
}

// Apply returns p with the non-nil fields of u applied.
func (u PreferencesUpdate) Apply(p Preferences) Preferences {
	if u.Smoking != nil {
		p.Smoking = *u.Smoking
	}
	if u.Pets != nil {
		p.Pets = *u.Pets
	}
	if u.NightOwl != nil {
		p.NightOwl = *u.NightOwl
	}
	if u.CleanlinessLevel != nil {
		p.CleanlinessLevel = *u.CleanlinessLevel
	}
	if u.GuestsFrequency != nil {
		p.GuestsFrequency = *u.GuestsFrequency
	}
	if u.NoiseLevel != nil {
		p.NoiseLevel = *u.NoiseLevel
	}
	return p
}
