package generator

import "math"

// CostBreakdown is the per-term cost of a candidate pairing; lower is better
type CostBreakdown struct {
	Consecutive    float64
	Balance        float64
	Fatigue        float64
	NoRest         float64
	TeammateRepeat float64
}

// Total returns the scalar cost used to rank candidates
func (c CostBreakdown) Total() float64 {
	return c.Consecutive + c.Balance + c.Fatigue + c.NoRest + c.TeammateRepeat
}

// scorePairing computes the cost of playing p as match matchIndex in a pool of poolSize players
func (w Weights) scorePairing(p pairing, matchIndex, poolSize int) CostBreakdown {
	var cost CostBreakdown

	total1 := p.team1[0].Score + p.team1[1].Score
	total2 := p.team2[0].Score + p.team2[1].Score
	cost.Balance = math.Abs(total1-total2) * w.Balance

	threshold, multiplier := w.consecutiveRule(poolSize)

	var fatigue, noRest float64
	for i, player := range p.players() {
		if run := player.consecutiveBefore(matchIndex); run >= threshold {
			cost.Consecutive += float64(run) * multiplier
		}

		fatigue += float64(player.matchesPlayed) * w.fatigueFactor(player.Gender)

		if player.lastPlayed != notPlayed && player.lastPlayed == matchIndex-1 {
			noRest += w.NoRestPenalty
		}

		if player.hasTeamedWith(p.partnerOf(i).ID) {
			cost.TeammateRepeat += w.TeammateRepeat
		}
	}
	cost.Fatigue = fatigue * w.Fatigue
	cost.NoRest = noRest * w.NoRest

	return cost
}
