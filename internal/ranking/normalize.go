package ranking

import "github.com/pitchrank/ladder/internal/stats"

// NormalizeMetrics robust-scales the three composite inputs to [0,1] across
// the division. Each axis is scaled independently; a degenerate axis (every
// team identical) maps to 0.5 everywhere.
func NormalizeMetrics(teams []*TeamSeason) {
	saos := make([]float64, len(teams))
	sads := make([]float64, len(teams))
	soss := make([]float64, len(teams))
	for i, ts := range teams {
		saos[i] = ts.SAOShrunk
		sads[i] = ts.SADShrunk
		soss[i] = ts.SOSComponent
	}

	saos = stats.RobustMinMax(saos)
	sads = stats.RobustMinMax(sads)
	soss = stats.RobustMinMax(soss)

	for i, ts := range teams {
		ts.SAONorm = saos[i]
		ts.SADNorm = sads[i]
		ts.SOSNorm = soss[i]
	}
}
