package generator

import (
	"fmt"
	"math"

	"github.com/mcoot/pickleplanner/internal/dependencies/random"
	"github.com/mcoot/pickleplanner/internal/model"
)

const (
	// PlayersPerMatch is fixed for doubles
	PlayersPerMatch = 4
	// MaxCandidatePoolSize bounds enumeration to C(12,4)*3 = 1485 pairings per match
	MaxCandidatePoolSize = 12
)

// Config holds generator settings
type Config struct {
	Weights Weights
	// CandidatePoolSize is how many players the availability step hands to
	// the enumerator for each match. Clamped to [4, MaxCandidatePoolSize].
	CandidatePoolSize int
	// MaxPlayers rejects larger pools outright
	MaxPlayers int
}

// DefaultConfig returns the standard generator configuration
func DefaultConfig() Config {
	return Config{
		Weights:           DefaultWeights(),
		CandidatePoolSize: PlayersPerMatch,
		MaxPlayers:        64,
	}
}

// Generator produces balanced, rotating doubles matches for a session.
//
// Each Generate call works on its own copy of the players, so a Generator may
// be shared between goroutines as long as its Random and Observer are safe for
// concurrent use. The initial pool order is shuffled; identical inputs are not
// expected to produce identical sessions unless Random is seeded.
type Generator struct {
	random   random.Random
	cfg      Config
	observer Observer
}

// New creates a Generator. Zero weights take the defaults and a nil
// observer discards decisions.
func New(rnd random.Random, cfg Config, observer Observer) *Generator {
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	if cfg.CandidatePoolSize < PlayersPerMatch {
		cfg.CandidatePoolSize = PlayersPerMatch
	}
	if cfg.CandidatePoolSize > MaxCandidatePoolSize {
		cfg.CandidatePoolSize = MaxCandidatePoolSize
	}
	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = DefaultConfig().MaxPlayers
	}
	if observer == nil {
		observer = NopObserver{}
	}
	return &Generator{random: rnd, cfg: cfg, observer: observer}
}

// TotalMatches returns how many matches fit in the session
func TotalMatches(sessionMinutes, matchMinutes int) int {
	if matchMinutes <= 0 {
		return 0
	}
	return sessionMinutes / matchMinutes
}

// Validate checks the inputs Generate fails fast on
func (g *Generator) Validate(players []model.Player, sessionMinutes, matchMinutes int) error {
	if sessionMinutes <= 0 {
		return fmt.Errorf("%w: session minutes must be positive, got %d", model.ErrInvalidConfiguration, sessionMinutes)
	}
	if matchMinutes <= 0 {
		return fmt.Errorf("%w: match minutes must be positive, got %d", model.ErrInvalidConfiguration, matchMinutes)
	}
	if len(players) > g.cfg.MaxPlayers {
		return fmt.Errorf("%w: %d players exceeds the maximum of %d", model.ErrInvalidConfiguration, len(players), g.cfg.MaxPlayers)
	}
	seen := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Generate returns up to floor(sessionMinutes/matchMinutes) matches numbered from 1.
//
// Fewer than four players, or a match longer than the session, yields an empty
// result. Generation stops early, returning the matches produced so far, when
// fewer than four players can be assembled for a match. Neither case is an error.
func (g *Generator) Generate(players []model.Player, sessionMinutes, matchMinutes int) ([]model.SessionMatch, error) {
	if err := g.Validate(players, sessionMinutes, matchMinutes); err != nil {
		return nil, err
	}

	matches := []model.SessionMatch{}
	totalMatches := TotalMatches(sessionMinutes, matchMinutes)
	if len(players) < PlayersPerMatch || totalMatches <= 0 {
		return matches, nil
	}

	shuffled := make([]model.Player, len(players))
	copy(shuffled, players)
	random.Shuffle(g.random, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	pool := clonePlayers(shuffled)
	w := g.cfg.Weights

	for matchIndex := 0; matchIndex < totalMatches; matchIndex++ {
		available := w.selectAvailable(pool, matchIndex, g.cfg.CandidatePoolSize)
		if len(available) < PlayersPerMatch {
			available = addRested(available, pool, matchIndex, g.cfg.CandidatePoolSize)
		}
		if len(available) < PlayersPerMatch {
			g.observer.GenerationStopped(Stop{
				MatchNumber: matchIndex + 1,
				Requested:   totalMatches,
				Available:   len(available),
				Reason:      StopNotEnoughPlayers,
			})
			break
		}

		best, cost, evaluated, ok := w.bestPairing(available, matchIndex, len(pool))
		if !ok {
			g.observer.GenerationStopped(Stop{
				MatchNumber: matchIndex + 1,
				Requested:   totalMatches,
				Available:   len(available),
				Reason:      StopNoCandidate,
			})
			break
		}

		for i, p := range best.players() {
			p.commit(matchIndex, best.partnerOf(i))
		}

		match := model.SessionMatch{
			Number: matchIndex + 1,
			Team1:  model.Team{best.team1[0].Player, best.team1[1].Player},
			Team2:  model.Team{best.team2[0].Player, best.team2[1].Player},
		}
		matches = append(matches, match)

		g.observer.MatchSelected(Decision{
			Match:     match,
			Available: snapshot(available),
			Evaluated: evaluated,
			Cost:      cost,
		})
	}

	return matches, nil
}

// bestPairing scores every split of every foursome drawn from available.
// The first candidate with the lowest cost wins.
func (w Weights) bestPairing(available []*internalPlayer, matchIndex, poolSize int) (pairing, CostBreakdown, int, bool) {
	var (
		best      pairing
		bestCost  CostBreakdown
		bestTotal = math.Inf(1)
		evaluated int
		found     bool
	)
	for _, four := range foursomes(available) {
		for _, candidate := range splits(four) {
			evaluated++
			cost := w.scorePairing(candidate, matchIndex, poolSize)
			if total := cost.Total(); total < bestTotal {
				best, bestCost, bestTotal, found = candidate, cost, total, true
			}
		}
	}
	return best, bestCost, evaluated, found
}

func snapshot(players []*internalPlayer) []model.Player {
	out := make([]model.Player, len(players))
	for i, p := range players {
		out[i] = p.Player
	}
	return out
}
