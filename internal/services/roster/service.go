package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mcoot/pickleplanner/internal/dependencies/clock"
	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/storage"
)

// MaxNameLength bounds player names
const MaxNameLength = 64

// NewPlayer holds the fields for creating a player.
// A nil Score means model.DefaultScore.
type NewPlayer struct {
	Name      string
	AvatarURL string
	Gender    model.Gender
	Score     *float64
}

// PlayerUpdate holds optional changes to a player; nil fields are left as-is
type PlayerUpdate struct {
	Name      *string
	AvatarURL *string
	Gender    *model.Gender
	Score     *float64
}

// Service manages the player roster
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
}

// New creates a new roster Service
func New(storage storage.Storage, clock clock.Clock, ids ids.Generator) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		ids:     ids,
	}
}

// Create validates and stores a new player
func (s *Service) Create(ctx context.Context, req NewPlayer) (*model.Player, error) {
	score := model.DefaultScore
	if req.Score != nil {
		score = *req.Score
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:        model.PlayerID(s.ids.NewID()),
		Name:      strings.TrimSpace(req.Name),
		AvatarURL: req.AvatarURL,
		Gender:    req.Gender,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validate(player); err != nil {
		return nil, err
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Get returns a player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetMany returns the players with the given ids, in the same order.
// Any unknown id fails the whole call.
func (s *Service) GetMany(ctx context.Context, playerIDs []model.PlayerID) ([]model.Player, error) {
	players := make([]model.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, err := s.storage.GetPlayer(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, id)
		}
		players = append(players, *p)
	}
	return players, nil
}

// List returns every player, by name or by score (highest first)
func (s *Service) List(ctx context.Context, byScore bool) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(players, func(i, j int) bool {
		if byScore && players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

// Update applies the non-nil fields of upd to a player
func (s *Service) Update(ctx context.Context, id model.PlayerID, upd PlayerUpdate) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		player.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.AvatarURL != nil {
		player.AvatarURL = *upd.AvatarURL
	}
	if upd.Gender != nil {
		player.Gender = *upd.Gender
	}
	if upd.Score != nil {
		player.Score = *upd.Score
	}
	if err := validate(player); err != nil {
		return nil, err
	}

	player.UpdatedAt = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// SetScore stores a new skill score, clamped to the valid range
func (s *Service) SetScore(ctx context.Context, id model.PlayerID, score float64) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Score = model.ClampScore(score)
	player.UpdatedAt = s.clock.Now()
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Delete removes a player. Sessions keep their own snapshot of the player.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	return s.storage.DeletePlayer(ctx, id)
}

func validate(p *model.Player) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", model.ErrInvalidPlayer)
	}
	if len(p.Name) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", model.ErrInvalidPlayer, MaxNameLength)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("%w: gender must be %q or %q", model.ErrInvalidPlayer, model.GenderMale, model.GenderFemale)
	}
	if p.Score < model.MinScore || p.Score > model.MaxScore {
		return fmt.Errorf("%w: score must be between %v and %v", model.ErrInvalidPlayer, model.MinScore, model.MaxScore)
	}
	return nil
}
