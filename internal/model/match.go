package model

import "time"

// Team is a doubles pair
type Team [2]Player

// TotalScore returns the summed skill score of both players
func (t Team) TotalScore() float64 {
	return t[0].Score + t[1].Score
}

// Has reports whether the team contains the given player
func (t Team) Has(id PlayerID) bool {
	return t[0].ID == id || t[1].ID == id
}

// SessionMatch is one generated assignment of four players into two teams
type SessionMatch struct {
	Number int // 1-based
	Team1  Team
	Team2  Team
}

// Players returns all four players, team 1 first
func (m SessionMatch) Players() []Player {
	return []Player{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

// ScoreDifference returns the absolute difference between the team totals
func (m SessionMatch) ScoreDifference() float64 {
	d := m.Team1.TotalScore() - m.Team2.TotalScore()
	if d < 0 {
		return -d
	}
	return d
}

// MatchStatus represents the lifecycle of a persisted match
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

// TeamSide identifies a team within a match
type TeamSide string

const (
	SideNone  TeamSide = ""
	SideTeam1 TeamSide = "team1"
	SideTeam2 TeamSide = "team2"
)

// Match is a persisted SessionMatch plus its result
type Match struct {
	Number      int
	Team1       Team // snapshot of players at generation time
	Team2       Team
	Status      MatchStatus
	Team1Points int
	Team2Points int
	Winner      TeamSide // SideNone until completed, and for ties
	CompletedAt *time.Time
}

// MatchFromGenerated converts a generated match into a scheduled match record
func MatchFromGenerated(sm SessionMatch) Match {
	return Match{
		Number: sm.Number,
		Team1:  sm.Team1,
		Team2:  sm.Team2,
		Status: MatchStatusScheduled,
	}
}

// PlayerIDs returns the ids of all four players, team 1 first
func (m *Match) PlayerIDs() []PlayerID {
	return []PlayerID{m.Team1[0].ID, m.Team1[1].ID, m.Team2[0].ID, m.Team2[1].ID}
}
