package rating

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pickleplanner/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(DefaultConfig())
}

func (s *ServiceSuite) match(scores ...float64) *model.Match {
	var p [4]model.Player
	for i := range p {
		p[i] = model.Player{ID: model.PlayerID([]string{"a", "b", "c", "d"}[i]), Score: scores[i]}
	}
	return &model.Match{
		Number: 1,
		Team1:  model.Team{p[0], p[1]},
		Team2:  model.Team{p[2], p[3]},
	}
}

func (s *ServiceSuite) changes(deltas []PlayerDelta) map[model.PlayerID]int {
	out := map[model.PlayerID]int{}
	for _, d := range deltas {
		out[d.PlayerID] = d.Change
	}
	return out
}

// ExpectedOutcome tests

func (s *ServiceSuite) TestExpectedOutcomeIsEvenForEqualTeams() {
	s.InDelta(0.5, s.service.ExpectedOutcome(10, 10), 1e-9)
}

func (s *ServiceSuite) TestExpectedOutcomeFavoursStrongerTeam() {
	s.Greater(s.service.ExpectedOutcome(12, 8), 0.5)
	s.Less(s.service.ExpectedOutcome(8, 12), 0.5)
	s.InDelta(1, s.service.ExpectedOutcome(12, 8)+s.service.ExpectedOutcome(8, 12), 1e-9)
}

// ScoreChanges tests

func (s *ServiceSuite) TestScoreChangesForDecisiveWin() {
	deltas := s.service.ScoreChanges(s.match(5, 5, 5, 5), 11, 4, model.SideTeam1)

	s.Require().Len(deltas, 4)
	s.Equal(map[model.PlayerID]int{"a": 16, "b": 16, "c": -16, "d": -16}, s.changes(deltas))
}

func (s *ServiceSuite) TestScoreChangesForTeam2Win() {
	deltas := s.service.ScoreChanges(s.match(5, 5, 5, 5), 3, 11, model.SideTeam2)

	s.Equal(map[model.PlayerID]int{"a": -16, "b": -16, "c": 16, "d": 16}, s.changes(deltas))
}

func (s *ServiceSuite) TestScoreChangesAddCloseMatchBonus() {
	deltas := s.service.ScoreChanges(s.match(5, 5, 5, 5), 11, 9, model.SideTeam1)

	s.Equal(map[model.PlayerID]int{"a": 21, "b": 21, "c": -11, "d": -11}, s.changes(deltas))
}

func (s *ServiceSuite) TestScoreChangesOrderTeam1First() {
	deltas := s.service.ScoreChanges(s.match(1, 2, 3, 4), 11, 0, model.SideTeam1)

	s.Require().Len(deltas, 4)
	s.Equal([]model.PlayerID{"a", "b", "c", "d"},
		[]model.PlayerID{deltas[0].PlayerID, deltas[1].PlayerID, deltas[2].PlayerID, deltas[3].PlayerID})
}

func (s *ServiceSuite) TestScoreChangesWithoutWinnerIsNil() {
	s.Nil(s.service.ScoreChanges(s.match(5, 5, 5, 5), 7, 7, model.SideNone))
}

func (s *ServiceSuite) TestCustomKFactor() {
	cfg := DefaultConfig()
	cfg.KFactor = 10
	cfg.CloseMatchBonus = 0
	svc := New(cfg)

	deltas := svc.ScoreChanges(s.match(5, 5, 5, 5), 11, 10, model.SideTeam1)

	s.Equal(map[model.PlayerID]int{"a": 5, "b": 5, "c": -5, "d": -5}, s.changes(deltas))
}

// ApplyDelta tests

func (s *ServiceSuite) TestApplyDeltaScalesChange() {
	s.InDelta(5.16, s.service.ApplyDelta(5, 16), 1e-9)
	s.InDelta(4.84, s.service.ApplyDelta(5, -16), 1e-9)
}

func (s *ServiceSuite) TestApplyDeltaClamps() {
	s.Equal(model.MaxScore, s.service.ApplyDelta(9.9, 21))
	s.Equal(model.MinScore, s.service.ApplyDelta(0.05, -16))
}

// Helpers

func (s *ServiceSuite) TestTeamBalance() {
	s.Equal(2.0, TeamBalance(9, 11))
	s.True(AreTeamsBalanced(9, 11, 2))
	s.False(AreTeamsBalanced(9, 12, 2))
}

func (s *ServiceSuite) TestDetermineWinner() {
	s.Equal(model.SideTeam1, DetermineWinner(11, 9))
	s.Equal(model.SideTeam2, DetermineWinner(4, 11))
	s.Equal(model.SideNone, DetermineWinner(10, 10))
}
