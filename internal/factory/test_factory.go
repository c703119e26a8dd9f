package factory

import (
	"context"
	"time"

	"github.com/mcoot/pickleplanner/internal/dependencies/mocks"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/roster"
	"github.com/mcoot/pickleplanner/internal/storage/memory"
	"github.com/mcoot/pickleplanner/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDs
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// MockRandom leaves the player pool unshuffled unless values are queued.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDs("id")

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, withDefaults(Config{}), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}

// TestPlayer describes a roster entry for SeedPlayers
type TestPlayer struct {
	Name   string
	Gender model.Gender
	Score  float64
}

// SeedPlayers adds players to the roster in order and returns their ids
func (t *TestApp) SeedPlayers(ctx context.Context, players ...TestPlayer) ([]model.PlayerID, error) {
	out := make([]model.PlayerID, 0, len(players))
	for _, p := range players {
		score := p.Score
		created, err := t.Roster.Create(ctx, roster.NewPlayer{Name: p.Name, Gender: p.Gender, Score: &score})
		if err != nil {
			return nil, err
		}
		out = append(out, created.ID)
	}
	return out, nil
}

// DefaultTestPlayers is a mixed eight-player club night
func DefaultTestPlayers() []TestPlayer {
	return []TestPlayer{
		{"Alice", model.GenderFemale, 8},
		{"Bob", model.GenderMale, 7},
		{"Carol", model.GenderFemale, 6.5},
		{"Dan", model.GenderMale, 6},
		{"Erin", model.GenderFemale, 5},
		{"Frank", model.GenderMale, 4.5},
		{"Grace", model.GenderFemale, 4},
		{"Hank", model.GenderMale, 3},
	}
}
