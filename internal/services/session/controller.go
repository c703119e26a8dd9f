package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/pickleplanner/internal/dependencies/clock"
	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/generator"
	"github.com/mcoot/pickleplanner/internal/services/rating"
	"github.com/mcoot/pickleplanner/internal/services/roster"
	"github.com/mcoot/pickleplanner/internal/storage"
)

// CreateSessionRequest holds the configuration for a new session
type CreateSessionRequest struct {
	Name           string
	PlayerIDs      []model.PlayerID
	SessionMinutes int
	MatchMinutes   int
}

// Preview is a generated schedule that has not been stored
type Preview struct {
	Matches          []model.SessionMatch
	RequestedMatches int
	Participation    []generator.Participation
}

// MatchResult is the outcome of recording a match
type MatchResult struct {
	Session *model.Session
	Match   model.Match
	Deltas  []rating.PlayerDelta
}

// Notifier is told about changes to stored sessions
type Notifier interface {
	MatchStarted(session *model.Session, match model.Match)
	MatchCompleted(result *MatchResult)
	StatusChanged(session *model.Session)
	SessionDeleted(id model.SessionID)
}

type nopNotifier struct{}

func (nopNotifier) MatchStarted(*model.Session, model.Match) {}
func (nopNotifier) MatchCompleted(*MatchResult)              {}
func (nopNotifier) StatusChanged(*model.Session)             {}
func (nopNotifier) SessionDeleted(model.SessionID)           {}

// Controller manages session generation and the match lifecycle
type Controller struct {
	storage   storage.Storage
	roster    *roster.Service
	generator *generator.Generator
	rating    *rating.Service
	clock     clock.Clock
	ids       ids.Generator
	logger    *slog.Logger
	notifier  Notifier

	// serialises read-modify-write cycles on stored sessions
	mu sync.Mutex
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	roster *roster.Service,
	generator *generator.Generator,
	rating *rating.Service,
	clock clock.Clock,
	ids ids.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		roster:    roster,
		generator: generator,
		rating:    rating,
		clock:     clock,
		ids:       ids,
		logger:    logger,
		notifier:  nopNotifier{},
	}
}

// SetNotifier registers n to hear about session changes; nil disables it
func (c *Controller) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	c.notifier = n
}

// Preview generates a schedule for the given players without storing it
func (c *Controller) Preview(ctx context.Context, playerIDs []model.PlayerID, sessionMinutes, matchMinutes int) (*Preview, error) {
	players, err := c.roster.GetMany(ctx, playerIDs)
	if err != nil {
		return nil, err
	}

	matches, err := c.generator.Generate(players, sessionMinutes, matchMinutes)
	if err != nil {
		return nil, err
	}

	return &Preview{
		Matches:          matches,
		RequestedMatches: generator.TotalMatches(sessionMinutes, matchMinutes),
		Participation:    generator.Summarize(players, matches),
	}, nil
}

// CreateSession generates and stores a new draft session
func (c *Controller) CreateSession(ctx context.Context, req CreateSessionRequest) (*model.Session, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	players, err := c.roster.GetMany(ctx, req.PlayerIDs)
	if err != nil {
		return nil, err
	}

	generated, err := c.generator.Generate(players, req.SessionMinutes, req.MatchMinutes)
	if err != nil {
		return nil, err
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("%w: no matches fit a %d minute session of %d minute matches",
			model.ErrInsufficientPlayers, req.SessionMinutes, req.MatchMinutes)
	}

	now := c.clock.Now()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Session " + now.Format("2006-01-02 15:04")
	}

	requested := generator.TotalMatches(req.SessionMinutes, req.MatchMinutes)
	session := &model.Session{
		ID:               model.SessionID(c.ids.NewID()),
		Name:             name,
		Status:           model.SessionStatusDraft,
		SessionMinutes:   req.SessionMinutes,
		MatchMinutes:     req.MatchMinutes,
		RequestedMatches: requested,
		Truncated:        len(generated) < requested,
		PlayerIDs:        append([]model.PlayerID(nil), req.PlayerIDs...),
		Matches:          make([]model.Match, len(generated)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for i, m := range generated {
		session.Matches[i] = model.MatchFromGenerated(m)
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if session.Truncated {
		c.logger.Warn("session shorter than requested",
			slog.String("session_id", string(session.ID)),
			slog.Int("requested", requested),
			slog.Int("generated", len(generated)),
		)
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("player_count", len(players)),
		slog.Int("match_count", len(session.Matches)),
	)
	if c.logger.Enabled(ctx, slog.LevelDebug) {
		for _, p := range generator.Summarize(players, generated) {
			c.logger.Debug("participation",
				slog.String("session_id", string(session.ID)),
				slog.String("player", p.Name),
				slog.Int("matches", p.Matches),
				slog.Int("max_consecutive", p.MaxConsecutive),
				slog.Int("teammates", p.Teammates),
			)
		}
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// ListSessions returns every session, newest first
func (c *Controller) ListSessions(ctx context.Context) ([]*model.Session, error) {
	sessions, err := c.storage.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

// UpdateStatus moves a session forward through its lifecycle
func (c *Controller) UpdateStatus(ctx context.Context, id model.SessionID, status model.SessionStatus) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !status.Valid() || !session.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", model.ErrInvalidStatusTransition, session.Status, status)
	}

	session.Status = status
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session status changed",
		slog.String("session_id", string(id)),
		slog.String("status", string(status)),
	)
	c.notifier.StatusChanged(session)
	return session, nil
}

// DeleteSession removes a session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.notifier.SessionDeleted(id)
	return nil
}

// StartMatch marks a scheduled match as being played.
// Starting a match that is already in progress is a no-op.
func (c *Controller) StartMatch(ctx context.Context, id model.SessionID, number int) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, match, err := c.loadMatch(ctx, id, number)
	if err != nil {
		return nil, err
	}

	switch match.Status {
	case model.MatchStatusCompleted:
		return nil, model.ErrMatchCompleted
	case model.MatchStatusInProgress:
		return session, nil
	}

	previous := session.Status
	match.Status = model.MatchStatusInProgress
	if session.Status == model.SessionStatusDraft {
		session.Status = model.SessionStatusInProgress
	}
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("session_id", string(id)),
		slog.Int("match", number),
	)
	c.notifier.MatchStarted(session, *match)
	if session.Status != previous {
		c.notifier.StatusChanged(session)
	}
	return session, nil
}

// RecordResult stores the points for a match and updates player ratings.
// A tie has no winner and leaves ratings unchanged. The session completes
// once every match has a result.
func (c *Controller) RecordResult(ctx context.Context, id model.SessionID, number, team1Points, team2Points int) (*MatchResult, error) {
	if team1Points < 0 || team2Points < 0 {
		return nil, fmt.Errorf("%w: points cannot be negative", model.ErrInvalidMatchPoints)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, match, err := c.loadMatch(ctx, id, number)
	if err != nil {
		return nil, err
	}
	if match.Status == model.MatchStatusCompleted {
		return nil, model.ErrMatchCompleted
	}

	previous := session.Status
	now := c.clock.Now()
	match.Team1Points = team1Points
	match.Team2Points = team2Points
	match.Winner = rating.DetermineWinner(team1Points, team2Points)
	match.Status = model.MatchStatusCompleted
	match.CompletedAt = &now

	if session.Status == model.SessionStatusDraft {
		session.Status = model.SessionStatusInProgress
	}
	if session.AllMatchesCompleted() {
		session.Status = model.SessionStatusCompleted
	}
	session.UpdatedAt = now

	// Ratings go first so a failed write leaves the match open for a retry
	deltas := c.rating.ScoreChanges(match, team1Points, team2Points, match.Winner)
	restore, err := c.applyDeltas(ctx, deltas)
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		restore()
		return nil, err
	}

	c.logger.Info("match result recorded",
		slog.String("session_id", string(id)),
		slog.Int("match", number),
		slog.Int("team1_points", team1Points),
		slog.Int("team2_points", team2Points),
		slog.String("winner", string(match.Winner)),
	)
	if session.Status == model.SessionStatusCompleted {
		c.logger.Info("session completed", slog.String("session_id", string(id)))
	}

	result := &MatchResult{Session: session, Match: *match, Deltas: deltas}
	c.notifier.MatchCompleted(result)
	if session.Status != previous {
		c.notifier.StatusChanged(session)
	}
	return result, nil
}

// applyDeltas updates the rated players' scores. On failure the scores
// already written are put back; the returned restore does the same for
// callers whose later write fails.
func (c *Controller) applyDeltas(ctx context.Context, deltas []rating.PlayerDelta) (restore func(), err error) {
	type saved struct {
		id    model.PlayerID
		score float64
	}
	var applied []saved
	restore = func() {
		// context.WithoutCancel so a cancelled request still rolls back
		rctx := context.WithoutCancel(ctx)
		for i := len(applied) - 1; i >= 0; i-- {
			if _, err := c.roster.SetScore(rctx, applied[i].id, applied[i].score); err != nil {
				c.logger.Error("failed to restore player score",
					slog.String("player_id", string(applied[i].id)),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	for _, d := range deltas {
		player, err := c.roster.Get(ctx, d.PlayerID)
		if errors.Is(err, model.ErrPlayerNotFound) {
			// Removed from the roster after the session was generated
			c.logger.Warn("skipping rating update for missing player",
				slog.String("player_id", string(d.PlayerID)),
			)
			continue
		}
		if err != nil {
			restore()
			return nil, err
		}

		if _, err := c.roster.SetScore(ctx, d.PlayerID, c.rating.ApplyDelta(player.Score, d.Change)); err != nil {
			restore()
			return nil, err
		}
		applied = append(applied, saved{id: d.PlayerID, score: player.Score})
	}
	return restore, nil
}

func (c *Controller) loadMatch(ctx context.Context, id model.SessionID, number int) (*model.Session, *model.Match, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if session.Status == model.SessionStatusCompleted {
		return nil, nil, model.ErrSessionCompleted
	}
	match := session.GetMatch(number)
	if match == nil {
		return nil, nil, fmt.Errorf("%w: %d", model.ErrMatchNotFound, number)
	}
	return session, match, nil
}

func validateRequest(req CreateSessionRequest) error {
	if req.SessionMinutes <= 0 || req.MatchMinutes <= 0 {
		return fmt.Errorf("%w: durations must be positive", model.ErrInvalidConfiguration)
	}
	seen := make(map[model.PlayerID]bool, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		if seen[id] {
			return fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, id)
		}
		seen[id] = true
	}
	if len(seen) < generator.PlayersPerMatch {
		return fmt.Errorf("%w: need at least %d players, got %d",
			model.ErrInsufficientPlayers, generator.PlayersPerMatch, len(seen))
	}
	return nil
}
