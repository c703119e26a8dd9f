package generator

import (
	"context"
	"log/slog"

	"github.com/mcoot/pickleplanner/internal/model"
)

// Decision describes how one match was chosen
type Decision struct {
	Match     model.SessionMatch
	Available []model.Player // working set the match was drawn from
	Evaluated int            // candidate pairings scored
	Cost      CostBreakdown
}

// StopReason explains why generation ended before the requested match count
type StopReason string

const (
	StopNotEnoughPlayers StopReason = "not_enough_players"
	StopNoCandidate      StopReason = "no_candidate"
)

// Stop describes an early end of generation
type Stop struct {
	MatchNumber int // the match that could not be produced
	Requested   int
	Available   int
	Reason      StopReason
}

// Observer receives generation decisions. Implementations must not retain
// or modify the slices they are given.
type Observer interface {
	MatchSelected(d Decision)
	GenerationStopped(s Stop)
}

// NopObserver ignores all decisions
type NopObserver struct{}

func (NopObserver) MatchSelected(Decision) {}
func (NopObserver) GenerationStopped(Stop) {}

// LogObserver writes decisions to a structured logger at debug level
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) MatchSelected(d Decision) {
	if !o.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	available := make([]string, len(d.Available))
	for i, p := range d.Available {
		available[i] = p.Name
	}
	o.logger.Debug("match selected",
		slog.Int("match", d.Match.Number),
		slog.Any("available", available),
		slog.Any("team1", []string{d.Match.Team1[0].Name, d.Match.Team1[1].Name}),
		slog.Any("team2", []string{d.Match.Team2[0].Name, d.Match.Team2[1].Name}),
		slog.Int("evaluated", d.Evaluated),
		slog.Float64("cost", d.Cost.Total()),
		slog.Float64("balance", d.Cost.Balance),
		slog.Float64("consecutive", d.Cost.Consecutive),
	)
}

func (o *LogObserver) GenerationStopped(s Stop) {
	o.logger.Info("generation stopped early",
		slog.Int("match", s.MatchNumber),
		slog.Int("requested", s.Requested),
		slog.Int("available", s.Available),
		slog.String("reason", string(s.Reason)),
	)
}

var (
	_ Observer = NopObserver{}
	_ Observer = (*LogObserver)(nil)
)
