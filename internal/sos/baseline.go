package sos

import "github.com/pitchrank/ladder/internal/stats"

// Baseline computes each team's SOS as the median strength among its
// realized opponents. The median tolerates one mislinked or extreme opponent
// where a mean would not. A team with zero resolvable opponents falls back
// further to the full-division median strength.
func Baseline(seed map[string]float64, edges []Edge) map[string]float64 {
	out := make(map[string]float64, len(seed))
	if len(seed) == 0 {
		return out
	}

	all := make([]float64, 0, len(seed))
	for _, s := range seed {
		all = append(all, s)
	}
	divisionMedian := stats.Median(all)

	opponents := make(map[string][]float64, len(seed))
	for _, e := range edges {
		if _, known := seed[e.Team]; !known {
			continue
		}
		if opp, ok := seed[e.Opponent]; ok {
			opponents[e.Team] = append(opponents[e.Team], opp)
		}
	}

	for team := range seed {
		if strengths := opponents[team]; len(strengths) > 0 {
			out[team] = stats.Median(strengths)
		} else {
			out[team] = divisionMedian
		}
	}
	return out
}
