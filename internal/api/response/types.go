package response

import (
	"time"

	"github.com/mcoot/pickleplanner/internal/model"
	"github.com/mcoot/pickleplanner/internal/services/generator"
	"github.com/mcoot/pickleplanner/internal/services/rating"
	"github.com/mcoot/pickleplanner/internal/services/session"
)

// Player represents a roster player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Gender    string    `json:"gender"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		Gender:    string(p.Gender),
		Score:     p.Score,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// TeamPlayer is a player as seen within a match; the score is the one used to balance it
type TeamPlayer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Team represents one side of a match
type Team struct {
	Players    []TeamPlayer `json:"players"`
	TotalScore float64      `json:"total_score"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t model.Team) Team {
	return Team{
		Players: []TeamPlayer{
			{ID: string(t[0].ID), Name: t[0].Name, Score: t[0].Score},
			{ID: string(t[1].ID), Name: t[1].Name, Score: t[1].Score},
		},
		TotalScore: t.TotalScore(),
	}
}

// Match represents a generated or recorded match
type Match struct {
	Number          int        `json:"number"`
	Team1           Team       `json:"team1"`
	Team2           Team       `json:"team2"`
	ScoreDifference float64    `json:"score_difference"`
	Status          string     `json:"status,omitempty"`
	Team1Points     *int       `json:"team1_points,omitempty"`
	Team2Points     *int       `json:"team2_points,omitempty"`
	Winner          *string    `json:"winner,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// MatchFromGenerated converts a generated, unstored match
func MatchFromGenerated(m model.SessionMatch) Match {
	return Match{
		Number:          m.Number,
		Team1:           TeamFromModel(m.Team1),
		Team2:           TeamFromModel(m.Team2),
		ScoreDifference: m.ScoreDifference(),
	}
}

// MatchFromModel converts a stored match, including its result once completed
func MatchFromModel(m model.Match) Match {
	resp := MatchFromGenerated(model.SessionMatch{Number: m.Number, Team1: m.Team1, Team2: m.Team2})
	resp.Status = string(m.Status)
	if m.Status == model.MatchStatusCompleted {
		t1, t2 := m.Team1Points, m.Team2Points
		resp.Team1Points = &t1
		resp.Team2Points = &t2
		if m.Winner != model.SideNone {
			w := string(m.Winner)
			resp.Winner = &w
		}
		resp.CompletedAt = m.CompletedAt
	}
	return resp
}

// Participation summarizes one player's share of a schedule
type Participation struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	Matches        int    `json:"matches"`
	MaxConsecutive int    `json:"max_consecutive"`
	Teammates      int    `json:"teammates"`
}

// Preview is the response for a generated, unsaved schedule
type Preview struct {
	RequestedMatches int             `json:"requested_matches"`
	Matches          []Match         `json:"matches"`
	Participation    []Participation `json:"participation"`
}

// PreviewFromService converts session.Preview
func PreviewFromService(p *session.Preview) Preview {
	matches := make([]Match, len(p.Matches))
	for i, m := range p.Matches {
		matches[i] = MatchFromGenerated(m)
	}
	return Preview{
		RequestedMatches: p.RequestedMatches,
		Matches:          matches,
		Participation:    participationFromService(p.Participation),
	}
}

func participationFromService(ps []generator.Participation) []Participation {
	out := make([]Participation, len(ps))
	for i, p := range ps {
		out[i] = Participation{
			PlayerID:       string(p.PlayerID),
			Name:           p.Name,
			Matches:        p.Matches,
			MaxConsecutive: p.MaxConsecutive,
			Teammates:      p.Teammates,
		}
	}
	return out
}

// Session represents a stored session
type Session struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	SessionMinutes   int       `json:"session_minutes"`
	MatchMinutes     int       `json:"match_minutes"`
	RequestedMatches int       `json:"requested_matches"`
	Truncated        bool      `json:"truncated,omitempty"`
	PlayerIDs        []string  `json:"player_ids"`
	Matches          []Match   `json:"matches"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	playerIDs := make([]string, len(s.PlayerIDs))
	for i, id := range s.PlayerIDs {
		playerIDs[i] = string(id)
	}
	matches := make([]Match, len(s.Matches))
	for i, m := range s.Matches {
		matches[i] = MatchFromModel(m)
	}
	return Session{
		ID:               string(s.ID),
		Name:             s.Name,
		Status:           string(s.Status),
		SessionMinutes:   s.SessionMinutes,
		MatchMinutes:     s.MatchMinutes,
		RequestedMatches: s.RequestedMatches,
		Truncated:        s.Truncated,
		PlayerIDs:        playerIDs,
		Matches:          matches,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// SessionSummary is a session without its matches, for listings
type SessionSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	PlayerCount int       `json:"player_count"`
	MatchCount  int       `json:"match_count"`
	Completed   int       `json:"completed_matches"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionSummariesFromModel converts a session listing
func SessionSummariesFromModel(sessions []*model.Session) []SessionSummary {
	out := make([]SessionSummary, len(sessions))
	for i, s := range sessions {
		completed := 0
		for _, m := range s.Matches {
			if m.Status == model.MatchStatusCompleted {
				completed++
			}
		}
		out[i] = SessionSummary{
			ID:          string(s.ID),
			Name:        s.Name,
			Status:      string(s.Status),
			PlayerCount: len(s.PlayerIDs),
			MatchCount:  len(s.Matches),
			Completed:   completed,
			CreatedAt:   s.CreatedAt,
		}
	}
	return out
}

// ScoreChange is one player's rating change after a match
type ScoreChange struct {
	PlayerID string `json:"player_id"`
	Change   int    `json:"change"`
}

// MatchResult is the response after recording a result
type MatchResult struct {
	Match         Match         `json:"match"`
	SessionStatus string        `json:"session_status"`
	ScoreChanges  []ScoreChange `json:"score_changes"`
}

// MatchResultFromService converts session.MatchResult
func MatchResultFromService(r *session.MatchResult) MatchResult {
	return MatchResult{
		Match:         MatchFromModel(r.Match),
		SessionStatus: string(r.Session.Status),
		ScoreChanges:  scoreChanges(r.Deltas),
	}
}

// MatchRecord is a match listed outside its session
type MatchRecord struct {
	SessionID   string `json:"session_id"`
	SessionName string `json:"session_name"`
	Match       Match  `json:"match"`
}

// MatchRecordsFromService converts session.MatchRecord values
func MatchRecordsFromService(records []session.MatchRecord) []MatchRecord {
	out := make([]MatchRecord, len(records))
	for i, r := range records {
		out[i] = MatchRecord{
			SessionID:   string(r.SessionID),
			SessionName: r.SessionName,
			Match:       MatchFromModel(r.Match),
		}
	}
	return out
}

func scoreChanges(deltas []rating.PlayerDelta) []ScoreChange {
	out := make([]ScoreChange, len(deltas))
	for i, d := range deltas {
		out[i] = ScoreChange{PlayerID: string(d.PlayerID), Change: d.Change}
	}
	return out
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
