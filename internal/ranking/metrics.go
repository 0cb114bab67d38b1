package ranking

import (
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/internal/stats"
)

// A clean sheet is worth defenseGoalBase; every goal conceded eats into it,
// floored at zero
const defenseGoalBase = 3.0

// AssignWeights computes each team's tapered recency weights
func AssignWeights(teams []*TeamSeason, cfg rankconfig.Weighting) {
	tail := stats.TailConfig{
		Start:       cfg.TailStart,
		End:         cfg.TailEnd,
		StartWeight: cfg.TailStartWeight,
		EndWeight:   cfg.TailEndWeight,
	}

	for _, ts := range teams {
		ts.Weights = stats.TaperedWeights(len(ts.Matches), cfg.RecentCount, cfg.RecentShare, tail)
	}
}

// AggregateRawMetrics computes the weighted raw offensive and defensive
// totals: off_raw rewards goals scored, def_raw rewards low goals against.
func AggregateRawMetrics(teams []*TeamSeason) {
	for _, ts := range teams {
		var off, def float64
		for i, m := range ts.Matches {
			w := ts.Weights[i]
			off += w * m.GF
			def += w * defenseValue(m.GA)
		}
		ts.OffRaw = off
		ts.DefRaw = def
	}
}

func defenseValue(ga float64) float64 {
	v := defenseGoalBase - ga
	if v < 0 {
		return 0
	}
	return v
}
