package session

import (
	"context"
	"sort"

	"github.com/mcoot/pickleplanner/internal/model"
)

// DefaultRecentLimit is how many matches RecentMatches returns when no limit is given
const DefaultRecentLimit = 5

// MatchRecord is a stored match together with the session it belongs to
type MatchRecord struct {
	SessionID   model.SessionID
	SessionName string
	Match       model.Match
}

// PlayerHistory returns every completed match the player took part in,
// most recent result first
func (c *Controller) PlayerHistory(ctx context.Context, playerID model.PlayerID) ([]MatchRecord, error) {
	if _, err := c.roster.Get(ctx, playerID); err != nil {
		return nil, err
	}

	records, err := c.collect(ctx, func(_ *model.Session, m *model.Match) bool {
		return m.Status == model.MatchStatusCompleted && (m.Team1.Has(playerID) || m.Team2.Has(playerID))
	})
	if err != nil {
		return nil, err
	}
	sortByCompletion(records)
	return records, nil
}

// RecentMatches returns up to limit completed matches across all sessions,
// most recent result first. A non-positive limit uses DefaultRecentLimit.
func (c *Controller) RecentMatches(ctx context.Context, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	records, err := c.collect(ctx, func(_ *model.Session, m *model.Match) bool {
		return m.Status == model.MatchStatusCompleted
	})
	if err != nil {
		return nil, err
	}
	sortByCompletion(records)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// ActiveMatches returns the matches still waiting for a result in sessions
// that have not completed, newest session first and in play order within
// a session
func (c *Controller) ActiveMatches(ctx context.Context) ([]MatchRecord, error) {
	// ListSessions is newest first; collect keeps match order
	return c.collect(ctx, func(s *model.Session, m *model.Match) bool {
		return s.Status != model.SessionStatusCompleted && m.Status != model.MatchStatusCompleted
	})
}

func (c *Controller) collect(ctx context.Context, keep func(*model.Session, *model.Match) bool) ([]MatchRecord, error) {
	sessions, err := c.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	records := []MatchRecord{}
	for _, s := range sessions {
		for i := range s.Matches {
			if keep(s, &s.Matches[i]) {
				records = append(records, MatchRecord{SessionID: s.ID, SessionName: s.Name, Match: s.Matches[i]})
			}
		}
	}
	return records, nil
}

func sortByCompletion(records []MatchRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Match.CompletedAt, records[j].Match.CompletedAt
		return a != nil && b != nil && a.After(*b)
	})
}
