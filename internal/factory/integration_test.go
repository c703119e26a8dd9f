package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/generator"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
	ids []model.PlayerID
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()

	ids, err := s.app.SeedPlayers(s.ctx, DefaultTestPlayers()...)
	s.Require().NoError(err)
	s.ids = ids
}

// Test: a club night from roster to final result
func (s *IntegrationSuite) TestCompleteSessionFlow() {
	// Step 1: Preview a two hour session of 15 minute games
	preview, err := s.app.SessionController.Preview(s.ctx, s.ids, 120, 15)
	s.Require().NoError(err)
	s.Len(preview.Matches, 8)

	// Step 2: Create it for real
	created, err := s.app.SessionController.CreateSession(s.ctx, session.CreateSessionRequest{
		Name:           "Club night",
		PlayerIDs:      s.ids,
		SessionMinutes: 120,
		MatchMinutes:   15,
	})
	s.Require().NoError(err)
	s.Require().Len(created.Matches, 8)
	s.False(created.Truncated)

	// Every player gets on court and nobody plays three in a row
	for _, p := range generator.Summarize(s.rosterPlayers(), generatedFrom(created)) {
		s.Positive(p.Matches, p.Name)
		s.LessOrEqual(p.MaxConsecutive, 2, p.Name)
	}

	// Step 3: Play every match; team 1 always wins 11-7
	before := s.scores()
	for _, m := range created.Matches {
		_, err := s.app.SessionController.StartMatch(s.ctx, created.ID, m.Number)
		s.Require().NoError(err)
		_, err = s.app.SessionController.RecordResult(s.ctx, created.ID, m.Number, 11, 7)
		s.Require().NoError(err)
	}

	// Step 4: Session is completed and ratings moved
	final, err := s.app.SessionController.GetSession(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStatusCompleted, final.Status)
	s.True(final.AllMatchesCompleted())

	after := s.scores()
	changed := 0
	for id, score := range after {
		s.GreaterOrEqual(score, model.MinScore)
		s.LessOrEqual(score, model.MaxScore)
		if score != before[id] {
			changed++
		}
	}
	s.Positive(changed)
}

// Test: the generator reflects rating changes in later sessions
func (s *IntegrationSuite) TestNewSessionUsesUpdatedScores() {
	first, err := s.app.SessionController.CreateSession(s.ctx, session.CreateSessionRequest{
		PlayerIDs: s.ids[:4], SessionMinutes: 15, MatchMinutes: 15,
	})
	s.Require().NoError(err)
	_, err = s.app.SessionController.RecordResult(s.ctx, first.ID, 1, 11, 2)
	s.Require().NoError(err)

	second, err := s.app.SessionController.CreateSession(s.ctx, session.CreateSessionRequest{
		PlayerIDs: s.ids[:4], SessionMinutes: 15, MatchMinutes: 15,
	})
	s.Require().NoError(err)

	current := s.scores()
	for _, p := range second.Matches[0].Team1 {
		s.Equal(current[p.ID], p.Score)
	}
}

func (s *IntegrationSuite) rosterPlayers() []model.Player {
	players, err := s.app.Roster.GetMany(s.ctx, s.ids)
	s.Require().NoError(err)
	return players
}

func (s *IntegrationSuite) scores() map[model.PlayerID]float64 {
	out := map[model.PlayerID]float64{}
	for _, p := range s.rosterPlayers() {
		out[p.ID] = p.Score
	}
	return out
}

func generatedFrom(sess *model.Session) []model.SessionMatch {
	out := make([]model.SessionMatch, len(sess.Matches))
	for i, m := range sess.Matches {
		out[i] = model.SessionMatch{Number: m.Number, Team1: m.Team1, Team2: m.Team2}
	}
	return out
}
