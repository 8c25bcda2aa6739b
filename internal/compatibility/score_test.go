package compatibility

import (
	"testing"

	"github.com/sbilibin2017/roommate-matcher/internal/models"
	"github.com/stretchr/testify/assert"
)

func prefs(smoking, pets, nightOwl bool, cleanliness, guests, noise int) *models.Preferences {
	return &models.Preferences{
		Smoking:          smoking,
		Pets:             pets,
		NightOwl:         nightOwl,
		CleanlinessLevel: cleanliness,
		GuestsFrequency:  guests,
		NoiseLevel:       noise,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a, b *models.Preferences
		want int
	}{
		{
			name: "missing left",
			a:    nil,
			b:    prefs(true, true, true, 1, 1, 1),
			want: Neutral,
		},
		{
			name: "missing right",
			a:    prefs(false, false, false, 3, 3, 3),
			b:    nil,
			want: Neutral,
		},
		{
			name: "both missing",
			want: Neutral,
		},
		{
			name: "identical",
			a:    prefs(true, false, true, 4, 2, 5),
			b:    prefs(true, false, true, 4, 2, 5),
			want: 100,
		},
		{
			name: "smoking and cleanliness mismatch",
			a:    prefs(true, false, false, 5, 1, 2),
			b:    prefs(false, false, false, 1, 1, 2),
			want: 64,
		},
		{
			name: "pets and night owl mismatch",
			a:    prefs(false, true, true, 3, 3, 3),
			b:    prefs(false, false, false, 3, 3, 3),
			want: 75,
		},
		{
			name: "level differences only",
			a:    prefs(false, false, false, 1, 2, 3),
			b:    prefs(false, false, false, 3, 5, 4),
			want: 100 - 8 - 9 - 4,
		},
		{
			name: "maximal mismatch keeps floor of 11",
			a:    prefs(true, true, true, 1, 1, 1),
			b:    prefs(false, false, false, 5, 5, 5),
			want: 100 - 20 - 15 - 10 - 16 - 12 - 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.a, tt.b))
		})
	}
}

func allPreferences() []*models.Preferences {
	var out []*models.Preferences
	bools := []bool{false, true}
	for _, s := range bools {
		for _, p := range bools {
			for _, n := range bools {
				for c := models.MinLevel; c <= models.MaxLevel; c += 2 {
					for g := models.MinLevel; g <= models.MaxLevel; g += 2 {
						for v := models.MinLevel; v <= models.MaxLevel; v += 2 {
							out = append(out, prefs(s, p, n, c, g, v))
						}
					}
				}
			}
		}
	}
	return out
}

func TestScore_Properties(t *testing.T) {
	all := allPreferences()

	for _, a := range all {
		assert.Equal(t, 100, Score(a, a))
		assert.Equal(t, Neutral, Score(a, nil))
		assert.Equal(t, Neutral, Score(nil, a))

		for _, b := range all {
			got := Score(a, b)
			assert.Equal(t, got, Score(b, a), "score must be symmetric")
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
