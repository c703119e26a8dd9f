package generator

import "github.com/mcoot/pickleplanner/internal/model"

// notPlayed marks a player who has not been assigned a match in this run
const notPlayed = -1

// internalPlayer is the generation-scoped working copy of a roster player.
// It is owned by a single Generate call and mutated only when a match is committed.
type internalPlayer struct {
	model.Player

	matchesPlayed int
	lastPlayed    int
	// streak is the length of the unbroken run of matches ending at lastPlayed
	streak        int
	lastTeammates map[model.PlayerID]struct{}
}

func clonePlayers(players []model.Player) []*internalPlayer {
	out := make([]*internalPlayer, len(players))
	for i, p := range players {
		out[i] = &internalPlayer{
			Player:        p,
			lastPlayed:    notPlayed,
			lastTeammates: make(map[model.PlayerID]struct{}),
		}
	}
	return out
}

// consecutiveBefore counts the matches immediately preceding matchIndex
// that this player was assigned to, with no gaps.
func (p *internalPlayer) consecutiveBefore(matchIndex int) int {
	if p.lastPlayed == notPlayed || p.lastPlayed != matchIndex-1 {
		return 0
	}
	return p.streak
}

func (p *internalPlayer) hasTeamedWith(id model.PlayerID) bool {
	_, ok := p.lastTeammates[id]
	return ok
}

// commit records that the player was assigned to matchIndex alongside partner
func (p *internalPlayer) commit(matchIndex int, partner *internalPlayer) {
	if p.lastPlayed != notPlayed && p.lastPlayed == matchIndex-1 {
		p.streak++
	} else {
		p.streak = 1
	}
	p.matchesPlayed++
	p.lastPlayed = matchIndex
	p.lastTeammates[partner.ID] = struct{}{}
}
