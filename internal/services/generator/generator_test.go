package generator

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleplanner/internal/dependencies/mocks"
	"github.com/mcoot/pickleplanner/internal/dependencies/random"
	"github.com/mcoot/pickleplanner/internal/model"
)

type recordingObserver struct {
	decisions []Decision
	stops     []Stop
}

func (o *recordingObserver) MatchSelected(d Decision) { o.decisions = append(o.decisions, d) }
func (o *recordingObserver) GenerationStopped(s Stop) { o.stops = append(o.stops, s) }

type GeneratorSuite struct {
	suite.Suite
	random    *mocks.MockRandom
	observer  *recordingObserver
	generator *Generator
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.observer = &recordingObserver{}
	s.generator = New(s.random, DefaultConfig(), s.observer)
}

// roster builds players p1..pn with the given scores, alternating gender
func roster(scores ...float64) []model.Player {
	players := make([]model.Player, len(scores))
	for i, score := range scores {
		gender := model.GenderMale
		if i%2 == 1 {
			gender = model.GenderFemale
		}
		players[i] = model.Player{
			ID:     model.PlayerID(fmt.Sprintf("p%d", i+1)),
			Name:   fmt.Sprintf("Player %d", i+1),
			Gender: gender,
			Score:  score,
		}
	}
	return players
}

func uniform(n int) []model.Player {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 5
	}
	return roster(scores...)
}

func (s *GeneratorSuite) assertWellFormed(matches []model.SessionMatch) {
	for i, m := range matches {
		s.Equal(i+1, m.Number, "matches are numbered contiguously from 1")
		seen := map[model.PlayerID]bool{}
		for _, p := range m.Players() {
			s.False(seen[p.ID], "player %s appears twice in match %d", p.ID, m.Number)
			seen[p.ID] = true
		}
		s.Len(seen, 4)
	}
}

func minSplitDifference(m model.SessionMatch) float64 {
	p := m.Players()
	diff := func(a, b, c, d model.Player) float64 {
		return math.Abs(a.Score + b.Score - c.Score - d.Score)
	}
	return math.Min(diff(p[0], p[1], p[2], p[3]),
		math.Min(diff(p[0], p[2], p[1], p[3]), diff(p[0], p[3], p[1], p[2])))
}

// Degenerate inputs

func (s *GeneratorSuite) TestFewerThanFourPlayersReturnsEmpty() {
	for n := 0; n < 4; n++ {
		matches, err := s.generator.Generate(uniform(n), 60, 15)
		s.Require().NoError(err)
		s.NotNil(matches)
		s.Empty(matches)
	}
}

func (s *GeneratorSuite) TestMatchLongerThanSessionReturnsEmpty() {
	matches, err := s.generator.Generate(uniform(4), 10, 15)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *GeneratorSuite) TestNonPositiveDurationsAreRejected() {
	_, err := s.generator.Generate(uniform(4), 60, 0)
	s.ErrorIs(err, model.ErrInvalidConfiguration)

	_, err = s.generator.Generate(uniform(4), 0, 15)
	s.ErrorIs(err, model.ErrInvalidConfiguration)

	_, err = s.generator.Generate(uniform(4), -30, 15)
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}

func (s *GeneratorSuite) TestDuplicatePlayersAreRejected() {
	players := uniform(4)
	players[3].ID = players[0].ID

	_, err := s.generator.Generate(players, 60, 15)
	s.ErrorIs(err, model.ErrDuplicatePlayer)
}

func (s *GeneratorSuite) TestPoolLargerThanMaxPlayersIsRejected() {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 6
	g := New(s.random, cfg, nil)

	_, err := g.Generate(uniform(7), 60, 15)
	s.ErrorIs(err, model.ErrInvalidConfiguration)
}

func (s *GeneratorSuite) TestInputIsNotModified() {
	players := roster(1, 2, 3, 4, 5, 6)
	original := make([]model.Player, len(players))
	copy(original, players)

	_, err := New(random.NewSeeded(7), DefaultConfig(), nil).Generate(players, 90, 15)
	s.Require().NoError(err)
	s.Equal(original, players)
}

// Match counts

func (s *GeneratorSuite) TestFourPlayersFillTheSession() {
	matches, err := s.generator.Generate(uniform(4), 60, 15)
	s.Require().NoError(err)
	s.Len(matches, 4)
	s.assertWellFormed(matches)
}

func (s *GeneratorSuite) TestTotalMatchesRoundsDown() {
	matches, err := s.generator.Generate(uniform(6), 70, 15)
	s.Require().NoError(err)
	s.Len(matches, 4)
	s.Equal(4, TotalMatches(70, 15))
	s.Equal(0, TotalMatches(70, 0))
}

// Balance

func (s *GeneratorSuite) TestFourPlayersAreSplitEvenly() {
	matches, err := s.generator.Generate(roster(1, 2, 3, 4), 60, 15)
	s.Require().NoError(err)
	s.Require().Len(matches, 4)

	for _, m := range matches {
		s.True(m.Team1.Has("p1") && m.Team1.Has("p4"), "match %d team1", m.Number)
		s.True(m.Team2.Has("p2") && m.Team2.Has("p3"), "match %d team2", m.Number)
		s.Zero(m.ScoreDifference())
	}
}

func (s *GeneratorSuite) TestEightPlayersPickMostBalancedSplit() {
	g := New(random.NewSeeded(2024), DefaultConfig(), nil)

	matches, err := g.Generate(roster(10, 9, 8, 7, 6, 5, 4, 3), 120, 15)
	s.Require().NoError(err)
	s.Require().Len(matches, 8)
	s.assertWellFormed(matches)

	for _, m := range matches {
		s.Equal(minSplitDifference(m), m.ScoreDifference(), "match %d is not the best split", m.Number)
		s.LessOrEqual(m.ScoreDifference(), 4.0)
	}
}

// Rotation

func (s *GeneratorSuite) TestFivePlayersRotateOneOut() {
	g := New(random.NewSeeded(99), DefaultConfig(), nil)

	matches, err := g.Generate(roster(5, 6, 4, 7, 3), 75, 15)
	s.Require().NoError(err)
	s.Require().Len(matches, 5)
	s.assertWellFormed(matches)

	for i := 1; i < len(matches); i++ {
		shared := 0
		for _, p := range matches[i].Players() {
			for _, q := range matches[i-1].Players() {
				if p.ID == q.ID {
					shared++
				}
			}
		}
		s.Equal(3, shared, "matches %d and %d", i, i+1)
	}
}

func (s *GeneratorSuite) TestLargePoolLimitsConsecutiveMatches() {
	players := uniform(12)
	g := New(random.NewSeeded(11), DefaultConfig(), nil)

	matches, err := g.Generate(players, 240, 15)
	s.Require().NoError(err)
	s.Require().Len(matches, 16)
	s.assertWellFormed(matches)

	for _, p := range Summarize(players, matches) {
		s.LessOrEqual(p.MaxConsecutive, 2, "player %s", p.PlayerID)
		s.Positive(p.Matches, "player %s never played", p.PlayerID)
	}
}

func (s *GeneratorSuite) TestLargerCandidatePoolStillProducesValidMatches() {
	cfg := DefaultConfig()
	cfg.CandidatePoolSize = 8
	g := New(random.NewSeeded(5), cfg, s.observer)

	matches, err := g.Generate(roster(10, 9, 8, 7, 6, 5, 4, 3, 2), 120, 15)
	s.Require().NoError(err)
	s.Require().Len(matches, 8)
	s.assertWellFormed(matches)

	for _, d := range s.observer.decisions {
		s.LessOrEqual(len(d.Available), 8)
		s.Greater(d.Evaluated, 3)
	}
}

// Determinism

func (s *GeneratorSuite) TestSeededGeneratorsAgree() {
	players := roster(9, 8, 7, 6, 5, 4, 3, 2, 1, 5)

	a, err := New(random.NewSeeded(42), DefaultConfig(), nil).Generate(players, 180, 20)
	s.Require().NoError(err)
	b, err := New(random.NewSeeded(42), DefaultConfig(), nil).Generate(players, 180, 20)
	s.Require().NoError(err)

	s.Equal(a, b)
}

func (s *GeneratorSuite) TestShuffleConsumesRandom() {
	_, err := s.generator.Generate(uniform(6), 30, 15)
	s.Require().NoError(err)
	s.Equal([]int{6, 5, 4, 3, 2}, s.random.Calls)
}

// Observer

func (s *GeneratorSuite) TestObserverSeesEveryDecision() {
	matches, err := s.generator.Generate(roster(3, 4, 5, 6, 7), 60, 15)
	s.Require().NoError(err)
	s.Require().Len(s.observer.decisions, len(matches))

	for i, d := range s.observer.decisions {
		s.Equal(matches[i], d.Match)
		s.Equal(3, d.Evaluated)
		s.Len(d.Available, 4)
		s.Equal(d.Cost.Balance, matches[i].ScoreDifference()*DefaultWeights().Balance)
	}
	s.Empty(s.observer.stops)
}

func (s *GeneratorSuite) TestNilObserverIsAllowed() {
	g := New(random.NewSeeded(1), DefaultConfig(), nil)
	matches, err := g.Generate(uniform(6), 60, 15)
	s.Require().NoError(err)
	s.Len(matches, 4)
}
