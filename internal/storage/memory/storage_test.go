package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:             id,
		Name:           "Tuesday",
		Status:         model.SessionStatusDraft,
		SessionMinutes: 60,
		MatchMinutes:   15,
		PlayerIDs:      []model.PlayerID{"a", "b", "c", "d"},
		Matches: []model.Match{{
			Number: 1,
			Team1:  model.Team{{ID: "a"}, {ID: "d"}},
			Team2:  model.Team{{ID: "b"}, {ID: "c"}},
			Status: model.MatchStatusScheduled,
		}},
		CreatedAt: time.Now(),
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Name:      "Alice",
		Gender:    model.GenderFemale,
		Score:     6.5,
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Score, retrieved.Score)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerIsCopied() {
	player := &model.Player{ID: "player-1", Name: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	player.Name = "Mallory"
	retrieved, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal("Alice", retrieved.Name)

	retrieved.Name = "Eve"
	again, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal("Alice", again.Name)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", Name: "Bob"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Name: "Alice"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	err := s.storage.SaveSession(s.ctx, testSession("session-1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("Tuesday", retrieved.Name)
	s.Len(retrieved.Matches, 1)
	s.True(retrieved.Matches[0].Team1.Has("d"))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionIsCopied() {
	session := testSession("session-1")
	_ = s.storage.SaveSession(s.ctx, session)

	session.Matches[0].Status = model.MatchStatusCompleted
	retrieved, _ := s.storage.GetSession(s.ctx, "session-1")
	s.Equal(model.MatchStatusScheduled, retrieved.Matches[0].Status)
}

func (s *StorageSuite) TestListAndDeleteSessions() {
	_ = s.storage.SaveSession(s.ctx, testSession("session-1"))
	_ = s.storage.SaveSession(s.ctx, testSession("session-2"))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Len(sessions, 2)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	sessions, err = s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(model.SessionID("session-2"), sessions[0].ID)
}
