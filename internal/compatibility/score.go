// Package compatibility scores how well two users' lifestyle preferences align.
package compatibility

import "github.com/sbilibin2017/roommate-matcher/internal/models"

// Neutral is returned when either side has no preferences.
const Neutral = 50

// Penalties subtracted from a perfect score of 100.
const (
	SmokingPenalty     = 20
	PetsPenalty        = 15
	NightOwlPenalty    = 10
	CleanlinessPenalty = 4 // per level of difference
	GuestsPenalty      = 3 // per level of difference
	NoisePenalty       = 4 // per level of difference
)

// Score returns a 0..100 compatibility score for two preference sets.
// The result is symmetric in a and b.
func Score(a, b *models.Preferences) int {
	if a == nil || b == nil {
		return Neutral
	}

	score := 100
	if a.Smoking != b.Smoking {
		score -= SmokingPenalty
	}
	if a.Pets != b.Pets {
		score -= PetsPenalty
	}
	if a.NightOwl != b.NightOwl {
		score -= NightOwlPenalty
	}
	score -= CleanlinessPenalty * absDiff(a.CleanlinessLevel, b.CleanlinessLevel)
	score -= GuestsPenalty * absDiff(a.GuestsFrequency, b.GuestsFrequency)
	score -= NoisePenalty * absDiff(a.NoiseLevel, b.NoiseLevel)

	return min(max(score, 0), 100)
}

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}
