package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Gender is used by the generator to weight fatigue
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the supported genders
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Skill score bounds
const (
	MinScore     = 0.0
	MaxScore     = 10.0
	DefaultScore = 5.0
)

// Player is a member of the roster
type Player struct {
	ID        PlayerID
	Name      string
	AvatarURL string
	Gender    Gender
	Score     float64 // skill score in [MinScore, MaxScore]
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClampScore bounds a score to [MinScore, MaxScore]
func ClampScore(score float64) float64 {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
