package generator

import (
	"fmt"

	"github.com/mcoot/pickleplanner/internal/model"
)

// Weights holds the tunable constants of the match cost function.
// The defaults have been revised by hand over time; treat them as configuration.
type Weights struct {
	// Balance scales the absolute difference between team score totals
	Balance float64
	// Fatigue scales the summed per-player fatigue
	Fatigue float64
	// FatigueFactorMale and FatigueFactorFemale are per-match fatigue accrual by gender
	FatigueFactorMale   float64
	FatigueFactorFemale float64
	// NoRest scales NoRestPenalty, which is charged per player who played the previous match
	NoRest        float64
	NoRestPenalty float64
	// TeammateRepeat is charged per player for each teammate they were already paired with
	TeammateRepeat float64

	// SmallPoolSize is the largest pool treated as small (forced rotation)
	SmallPoolSize int
	// Consecutive-match penalty thresholds and multipliers by pool size.
	// The multipliers must dominate any possible Balance contribution.
	SmallPoolMaxConsecutive        int
	LargePoolMaxConsecutive        int
	SmallPoolConsecutiveMultiplier float64
	LargePoolConsecutiveMultiplier float64
	// LargePoolRestLimit is the consecutive run at which large pools stop preferring a player
	LargePoolRestLimit int
}

// DefaultWeights returns the standard weights for 0-10 skill scores
func DefaultWeights() Weights {
	return Weights{
		Balance:             100,
		Fatigue:             2,
		FatigueFactorMale:   0.2,
		FatigueFactorFemale: 0.3,
		NoRest:              1,
		NoRestPenalty:       1.0,
		TeammateRepeat:      10,

		SmallPoolSize:                  6,
		SmallPoolMaxConsecutive:        3,
		LargePoolMaxConsecutive:        2,
		SmallPoolConsecutiveMultiplier: 1000,
		LargePoolConsecutiveMultiplier: 2000,
		LargePoolRestLimit:             2,
	}
}

// maxTeamDifference is the widest possible gap between two team totals
const maxTeamDifference = 2 * (model.MaxScore - model.MinScore)

// Validate rejects weights that break the cost ordering: no term may be
// negative, and the smallest consecutive-match penalty must outweigh the
// largest balance cost so rotation always comes before balance.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"balance":                 w.Balance,
		"fatigue":                 w.Fatigue,
		"fatigue factor (male)":   w.FatigueFactorMale,
		"fatigue factor (female)": w.FatigueFactorFemale,
		"no-rest":                 w.NoRest,
		"no-rest penalty":         w.NoRestPenalty,
		"teammate repeat":         w.TeammateRepeat,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s weight %g is negative", model.ErrInvalidConfiguration, name, v)
		}
	}
	if w.SmallPoolMaxConsecutive < 1 || w.LargePoolMaxConsecutive < 1 || w.LargePoolRestLimit < 1 {
		return fmt.Errorf("%w: consecutive-match limits must be at least 1", model.ErrInvalidConfiguration)
	}

	worstBalance := w.Balance * maxTeamDifference
	smallest := min(
		float64(w.SmallPoolMaxConsecutive)*w.SmallPoolConsecutiveMultiplier,
		float64(w.LargePoolMaxConsecutive)*w.LargePoolConsecutiveMultiplier,
	)
	if worstBalance >= smallest {
		return fmt.Errorf("%w: balance weight %g allows a balance cost of %g, which must stay below the consecutive-match penalty %g",
			model.ErrInvalidConfiguration, w.Balance, worstBalance, smallest)
	}
	return nil
}

func (w Weights) fatigueFactor(g model.Gender) float64 {
	if g == model.GenderFemale {
		return w.FatigueFactorFemale
	}
	return w.FatigueFactorMale
}

func (w Weights) isSmallPool(poolSize int) bool {
	return poolSize <= w.SmallPoolSize
}

func (w Weights) consecutiveRule(poolSize int) (threshold int, multiplier float64) {
	if w.isSmallPool(poolSize) {
		return w.SmallPoolMaxConsecutive, w.SmallPoolConsecutiveMultiplier
	}
	return w.LargePoolMaxConsecutive, w.LargePoolConsecutiveMultiplier
}
