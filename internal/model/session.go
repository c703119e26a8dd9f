package model

import "time"

// SessionID uniquely identifies a session
type SessionID string

// SessionStatus represents the lifecycle of a session
type SessionStatus string

const (
	SessionStatusDraft      SessionStatus = "draft"       // Generated, not yet started
	SessionStatusInProgress SessionStatus = "in_progress" // At least one match started
	SessionStatusCompleted  SessionStatus = "completed"   // Every match has a result
)

// Valid reports whether s is a known session status
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusDraft, SessionStatusInProgress, SessionStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a session may move from s to next.
// Sessions only move forward.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStatusDraft:
		return next == SessionStatusInProgress || next == SessionStatusCompleted
	case SessionStatusInProgress:
		return next == SessionStatusCompleted
	}
	return false
}

// Session is a time-boxed sequence of matches for a fixed player pool
type Session struct {
	ID               SessionID
	Name             string
	Status           SessionStatus
	SessionMinutes   int
	MatchMinutes     int
	RequestedMatches int  // floor(SessionMinutes / MatchMinutes)
	Truncated        bool // fewer matches were generated than requested
	PlayerIDs        []PlayerID
	Matches          []Match
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GetMatch returns the match with the given 1-based number, or nil if not found
func (s *Session) GetMatch(number int) *Match {
	for i := range s.Matches {
		if s.Matches[i].Number == number {
			return &s.Matches[i]
		}
	}
	return nil
}

// AllMatchesCompleted returns true if every match has a recorded result
func (s *Session) AllMatchesCompleted() bool {
	if len(s.Matches) == 0 {
		return false
	}
	for _, m := range s.Matches {
		if m.Status != MatchStatusCompleted {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	c.PlayerIDs = append([]PlayerID(nil), s.PlayerIDs...)
	c.Matches = make([]Match, len(s.Matches))
	for i, m := range s.Matches {
		if m.CompletedAt != nil {
			t := *m.CompletedAt
			m.CompletedAt = &t
		}
		c.Matches[i] = m
	}
	return &c
}
