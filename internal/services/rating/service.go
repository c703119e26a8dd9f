package rating

import (
	"math"

	"github.com/mcoot/pickleplanner/internal/model"
)

// Config holds the rating constants
type Config struct {
	// KFactor scales how far a single result moves a rating
	KFactor float64
	// Divisor is the logistic spread of the expected outcome
	Divisor float64
	// CloseMatchMargin is the largest points gap that still earns the close match bonus
	CloseMatchMargin int
	CloseMatchBonus  int
	// PointScale converts rating points to the 0-10 skill score
	PointScale float64
}

// DefaultConfig returns the standard rating constants
func DefaultConfig() Config {
	return Config{
		KFactor:          32,
		Divisor:          400,
		CloseMatchMargin: 2,
		CloseMatchBonus:  5,
		PointScale:       0.01,
	}
}

// PlayerDelta is the rating change for one player after a match
type PlayerDelta struct {
	PlayerID model.PlayerID
	Change   int
}

// Service computes rating changes from match results
type Service struct {
	cfg Config
}

// New creates a new rating Service
func New(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// ExpectedOutcome returns the probability that a team with total a beats a team with total b
func (s *Service) ExpectedOutcome(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/s.cfg.Divisor))
}

// ScoreChanges returns one delta per player, team 1 first.
// A match without a winner changes nothing and returns nil.
func (s *Service) ScoreChanges(match *model.Match, team1Points, team2Points int, winner model.TeamSide) []PlayerDelta {
	if winner != model.SideTeam1 && winner != model.SideTeam2 {
		return nil
	}

	team1Expected := s.ExpectedOutcome(match.Team1.TotalScore(), match.Team2.TotalScore())
	team2Expected := 1 - team1Expected

	var team1Actual, team2Actual float64
	if winner == model.SideTeam1 {
		team1Actual = 1
	} else {
		team2Actual = 1
	}

	team1Change := int(math.Round(s.cfg.KFactor * (team1Actual - team1Expected)))
	team2Change := int(math.Round(s.cfg.KFactor * (team2Actual - team2Expected)))

	bonus := 0
	if abs(team1Points-team2Points) <= s.cfg.CloseMatchMargin {
		bonus = s.cfg.CloseMatchBonus
	}

	return []PlayerDelta{
		{PlayerID: match.Team1[0].ID, Change: team1Change + bonus},
		{PlayerID: match.Team1[1].ID, Change: team1Change + bonus},
		{PlayerID: match.Team2[0].ID, Change: team2Change + bonus},
		{PlayerID: match.Team2[1].ID, Change: team2Change + bonus},
	}
}

// ApplyDelta returns score moved by change rating points, kept within the valid range
func (s *Service) ApplyDelta(score float64, change int) float64 {
	return model.ClampScore(score + float64(change)*s.cfg.PointScale)
}

// TeamBalance returns the gap between two team totals; lower is more balanced
func TeamBalance(a, b float64) float64 {
	return math.Abs(a - b)
}

// AreTeamsBalanced reports whether the gap between two team totals is within threshold
func AreTeamsBalanced(a, b, threshold float64) bool {
	return TeamBalance(a, b) <= threshold
}

// DetermineWinner returns the side with more points, or SideNone on a tie
func DetermineWinner(team1Points, team2Points int) model.TeamSide {
	switch {
	case team1Points > team2Points:
		return model.SideTeam1
	case team2Points > team1Points:
		return model.SideTeam2
	default:
		return model.SideNone
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
