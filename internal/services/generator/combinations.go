package generator

type foursome [4]*internalPlayer

// pairing is one division of a foursome into two teams
type pairing struct {
	team1 [2]*internalPlayer
	team2 [2]*internalPlayer
}

func (p pairing) players() [4]*internalPlayer {
	return [4]*internalPlayer{p.team1[0], p.team1[1], p.team2[0], p.team2[1]}
}

// partnerOf returns the teammate of the player at index i of players()
func (p pairing) partnerOf(i int) *internalPlayer {
	switch i {
	case 0:
		return p.team1[1]
	case 1:
		return p.team1[0]
	case 2:
		return p.team2[1]
	default:
		return p.team2[0]
	}
}

// foursomes returns every 4-player subset of pool in lexicographic index order
func foursomes(pool []*internalPlayer) []foursome {
	n := len(pool)
	if n < 4 {
		return nil
	}
	var out []foursome
	for a := 0; a < n-3; a++ {
		for b := a + 1; b < n-2; b++ {
			for c := b + 1; c < n-1; c++ {
				for d := c + 1; d < n; d++ {
					out = append(out, foursome{pool[a], pool[b], pool[c], pool[d]})
				}
			}
		}
	}
	return out
}

// splits returns the three ways to divide four players into two teams of two
func splits(f foursome) [3]pairing {
	a, b, c, d := f[0], f[1], f[2], f[3]
	return [3]pairing{
		{team1: [2]*internalPlayer{a, b}, team2: [2]*internalPlayer{c, d}},
		{team1: [2]*internalPlayer{a, c}, team2: [2]*internalPlayer{b, d}},
		{team1: [2]*internalPlayer{a, d}, team2: [2]*internalPlayer{b, c}},
	}
}
