package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleplanner/internal/dependencies/mocks"
	"github.com/mcoot/pickleplanner/internal/model"
)

func TestDefaultWeightsAreValid(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
}

func TestWeightsValidate(t *testing.T) {
	cases := map[string]func(w *Weights){
		"negative balance":         func(w *Weights) { w.Balance = -1 },
		"negative fatigue":         func(w *Weights) { w.Fatigue = -0.5 },
		"negative teammate repeat": func(w *Weights) { w.TeammateRepeat = -10 },
		"balance outweighs rotation": func(w *Weights) {
			w.Balance = 150 // 150 * 20 = 3000, the small-pool penalty
		},
		"zero consecutive limit": func(w *Weights) { w.SmallPoolMaxConsecutive = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			w := DefaultWeights()
			mutate(&w)
			assert.ErrorIs(t, w.Validate(), model.ErrInvalidConfiguration)
		})
	}
}

func TestWeightsValidateAllowsSmallerBalance(t *testing.T) {
	w := DefaultWeights()
	w.Balance = 149
	assert.NoError(t, w.Validate())
}

func TestNewFillsZeroWeights(t *testing.T) {
	g := New(mocks.NewMockRandom(), Config{CandidatePoolSize: 6}, nil)

	assert.Equal(t, DefaultWeights(), g.cfg.Weights)
	assert.Equal(t, 6, g.cfg.CandidatePoolSize)
	assert.Equal(t, DefaultConfig().MaxPlayers, g.cfg.MaxPlayers)
}

func TestPartialConfigStillBalances(t *testing.T) {
	// With zero weights every candidate would cost nothing and the first
	// pairing (p1 & p2 vs p3 & p4) would win.
	g := New(mocks.NewMockRandom(), Config{CandidatePoolSize: 4}, nil)

	matches, err := g.Generate(roster(10, 9, 1, 0), 15, 15)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Zero(t, matches[0].ScoreDifference())
}
