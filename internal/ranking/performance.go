package ranking

import (
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/internal/stats"
)

// ApplyPerformance asks, per match, how the team did against expectation
// and nudges the contribution accordingly. Beating a strong opponent lifts
// offense and defense; losing to a weak one drags both. Matches are ordered
// newest first, so the slice index doubles as the recency index for the
// multiplier's decay.
func ApplyPerformance(teams []*TeamSeason, idx strengthIndex, cfg rankconfig.Performance) {
	for _, ts := range teams {
		var sao, sad float64
		for i, m := range ts.Matches {
			w := ts.Weights[i]
			opp, known := idx.byTeam[m.Match.OpponentID]

			if !known {
				sao += w * m.GF
				sad += w * defenseValue(m.GA)
				continue
			}

			expected := ts.OffRaw - opp.DefRaw
			perf := m.GoalDiff - expected
			mult := stats.PerformanceMultiplier(perf, cfg.K, cfg.DecayRate, i, cfg.Threshold)

			sao += w * m.GF * mult
			sad += w * defenseValue(m.GA*(2.0-mult))
		}
		ts.SAOPerf = sao
		ts.SADPerf = sad
	}
}
