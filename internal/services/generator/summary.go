package generator

import (
	"sort"

	"github.com/mcoot/pickleplanner/internal/model"
)

// Participation summarizes how a player was used across a generated session
type Participation struct {
	PlayerID       model.PlayerID
	Name           string
	Matches        int
	MaxConsecutive int
	Teammates      int // distinct partners
}

// Summarize reports participation for every player in the pool, including
// players who were never assigned. Results are ordered by matches played,
// most first, then by name.
func Summarize(players []model.Player, matches []model.SessionMatch) []Participation {
	type tally struct {
		Participation
		last     int
		run      int
		partners map[model.PlayerID]struct{}
	}

	byID := make(map[model.PlayerID]*tally, len(players))
	order := make([]*tally, 0, len(players))
	for _, p := range players {
		t := &tally{
			Participation: Participation{PlayerID: p.ID, Name: p.Name},
			last:          notPlayed,
			partners:      make(map[model.PlayerID]struct{}),
		}
		byID[p.ID] = t
		order = append(order, t)
	}

	for _, m := range matches {
		for _, team := range []model.Team{m.Team1, m.Team2} {
			for i, p := range team {
				t, ok := byID[p.ID]
				if !ok {
					continue
				}
				t.Matches++
				if t.last == m.Number-1 {
					t.run++
				} else {
					t.run = 1
				}
				t.last = m.Number
				if t.run > t.MaxConsecutive {
					t.MaxConsecutive = t.run
				}
				t.partners[team[1-i].ID] = struct{}{}
			}
		}
	}

	out := make([]Participation, len(order))
	for i, t := range order {
		t.Teammates = len(t.partners)
		out[i] = t.Participation
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Name < out[j].Name
	})
	return out
}
