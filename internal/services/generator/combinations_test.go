package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pickleplanner/internal/model"
)

func poolOf(n int) []*internalPlayer {
	players := make([]model.Player, n)
	for i := range players {
		players[i] = model.Player{ID: model.PlayerID(fmt.Sprintf("p%d", i+1)), Score: float64(i)}
	}
	return clonePlayers(players)
}

func TestFoursomesCount(t *testing.T) {
	cases := map[int]int{0: 0, 3: 0, 4: 1, 5: 5, 6: 15, 8: 70, 12: 495}
	for n, want := range cases {
		assert.Len(t, foursomes(poolOf(n)), want, "pool of %d", n)
	}
}

func TestFoursomesAreDistinctSubsets(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range foursomes(poolOf(7)) {
		ids := map[model.PlayerID]bool{}
		key := ""
		for _, p := range f {
			ids[p.ID] = true
			key += string(p.ID) + ","
		}
		assert.Len(t, ids, 4, "players within a foursome must be distinct")
		assert.False(t, seen[key], "duplicate foursome %s", key)
		seen[key] = true
	}
	assert.Len(t, seen, 35)
}

func TestSplitsArePerfectMatchings(t *testing.T) {
	pool := poolOf(4)
	four := foursomes(pool)[0]

	got := splits(four)
	require.Len(t, got, 3)

	teams := map[string]bool{}
	for _, s := range got {
		all := map[model.PlayerID]bool{}
		for _, p := range s.players() {
			all[p.ID] = true
		}
		assert.Len(t, all, 4)
		teams[string(s.team1[0].ID)+string(s.team1[1].ID)] = true
	}
	// p1 partners each of the others exactly once
	assert.Equal(t, map[string]bool{"p1p2": true, "p1p3": true, "p1p4": true}, teams)
}

func TestPartnerOf(t *testing.T) {
	s := splits(foursomes(poolOf(4))[0])[1] // (p1,p3) vs (p2,p4)
	players := s.players()
	assert.Equal(t, players[1], s.partnerOf(0))
	assert.Equal(t, players[0], s.partnerOf(1))
	assert.Equal(t, players[3], s.partnerOf(2))
	assert.Equal(t, players[2], s.partnerOf(3))
}
