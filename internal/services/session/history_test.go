package session

import (
	"time"

	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/roster"
)

func matchNumbers(records []MatchRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Match.Number
	}
	return out
}

// recordTwo records results for matches 1 and 2, ten minutes apart
func (s *ControllerSuite) recordTwo() *model.Session {
	session := s.createSession()
	for _, n := range []int{1, 2} {
		s.clock.Advance(10 * time.Minute)
		_, err := s.controller.RecordResult(s.ctx, session.ID, n, 11, 6)
		s.Require().NoError(err)
	}
	return session
}

func (s *ControllerSuite) TestPlayerHistoryLatestFirst() {
	session := s.recordTwo()

	history, err := s.controller.PlayerHistory(s.ctx, s.playerIDs[0])
	s.Require().NoError(err)

	s.Equal([]int{2, 1}, matchNumbers(history))
	s.Equal(session.ID, history[0].SessionID)
	s.Equal("Tuesday", history[0].SessionName)
	s.Equal(11, history[0].Match.Team1Points)
}

func (s *ControllerSuite) TestPlayerHistoryOnlyIncludesThePlayer() {
	s.recordTwo()

	erin, err := s.roster.Create(s.ctx, roster.NewPlayer{Name: "Erin", Gender: model.GenderFemale})
	s.Require().NoError(err)

	history, err := s.controller.PlayerHistory(s.ctx, erin.ID)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *ControllerSuite) TestPlayerHistoryUnknownPlayer() {
	_, err := s.controller.PlayerHistory(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestRecentMatchesLimit() {
	s.recordTwo()

	recent, err := s.controller.RecentMatches(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal([]int{2}, matchNumbers(recent))

	recent, err = s.controller.RecentMatches(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]int{2, 1}, matchNumbers(recent))
}

func (s *ControllerSuite) TestActiveMatches() {
	session := s.recordTwo()

	active, err := s.controller.ActiveMatches(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int{3, 4}, matchNumbers(active))

	_, err = s.controller.UpdateStatus(s.ctx, session.ID, model.SessionStatusCompleted)
	s.Require().NoError(err)

	active, err = s.controller.ActiveMatches(s.ctx)
	s.Require().NoError(err)
	s.Empty(active)
}
