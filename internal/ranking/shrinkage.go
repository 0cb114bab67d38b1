package ranking

import "github.com/pitchrank/ladder/internal/stats"

// ApplyShrinkage pulls each team's performance-adjusted metrics toward the
// division means. Teams with few matches move a lot, teams with full
// schedules barely move, and a team with zero usable matches lands exactly
// on the prior.
func ApplyShrinkage(teams []*TeamSeason, tau float64) {
	// The prior is the league mean of the unadjusted raw aggregates, so the
	// adjustment layers cannot drag the prior itself around
	var offs, defs []float64
	for _, ts := range teams {
		if ts.MatchesUsed > 0 {
			offs = append(offs, ts.OffRaw)
			defs = append(defs, ts.DefRaw)
		}
	}
	priorOff := stats.Mean(offs)
	priorDef := stats.Mean(defs)

	for _, ts := range teams {
		ts.SAOShrunk = stats.Shrink(ts.SAOPerf, ts.MatchesUsed, priorOff, tau)
		ts.SADShrunk = stats.Shrink(ts.SADPerf, ts.MatchesUsed, priorDef, tau)
	}
}
