package generator

import "sort"

type ranked struct {
	player      *internalPlayer
	consecutive int
}

// rankPlayers orders players by how much they deserve the next match:
// unplayed first, then fewer consecutive matches, fewer total matches,
// and longest idle. Ties keep the (shuffled) pool order.
func rankPlayers(players []*internalPlayer, matchIndex int) []ranked {
	out := make([]ranked, len(players))
	for i, p := range players {
		out[i] = ranked{player: p, consecutive: p.consecutiveBefore(matchIndex)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].player, out[j].player
		if (a.matchesPlayed == 0) != (b.matchesPlayed == 0) {
			return a.matchesPlayed == 0
		}
		if out[i].consecutive != out[j].consecutive {
			return out[i].consecutive < out[j].consecutive
		}
		if a.matchesPlayed != b.matchesPlayed {
			return a.matchesPlayed < b.matchesPlayed
		}
		return a.lastPlayed < b.lastPlayed
	})
	return out
}

// selectAvailable picks the working set of up to limit players for matchIndex.
//
// Small pools force rotation: when at least four players sat out the previous
// match, only they are considered. Large pools prefer players below the rest
// limit. Either way the top of the ranking is the fallback.
func (w Weights) selectAvailable(players []*internalPlayer, matchIndex, limit int) []*internalPlayer {
	sorted := rankPlayers(players, matchIndex)

	var preferred []*internalPlayer
	if w.isSmallPool(len(players)) {
		if matchIndex > 0 {
			for _, r := range sorted {
				if r.player.lastPlayed != matchIndex-1 {
					preferred = append(preferred, r.player)
				}
			}
		}
	} else {
		for _, r := range sorted {
			if r.consecutive < w.LargePoolRestLimit {
				preferred = append(preferred, r.player)
			}
		}
	}

	if len(preferred) >= 4 {
		return head(preferred, limit)
	}

	all := make([]*internalPlayer, len(sorted))
	for i, r := range sorted {
		all[i] = r.player
	}
	return head(all, limit)
}

// addRested tops up available with any player who did not play matchIndex itself,
// up to limit players in total.
func addRested(available, players []*internalPlayer, matchIndex, limit int) []*internalPlayer {
	in := make(map[*internalPlayer]bool, len(available))
	for _, p := range available {
		in[p] = true
	}
	for _, p := range players {
		if len(available) >= limit {
			break
		}
		if !in[p] && p.lastPlayed < matchIndex {
			available = append(available, p)
			in[p] = true
		}
	}
	return available
}

func head(players []*internalPlayer, n int) []*internalPlayer {
	if len(players) > n {
		players = players[:n]
	}
	out := make([]*internalPlayer, len(players))
	copy(out, players)
	return out
}
