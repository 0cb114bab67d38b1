package sos

// Refine runs the damped iterative strength propagation. Each round, every
// team's strength moves toward the weighted mean of its opponents' previous-
// round strengths:
//
//	s' = damping * weightedMean(opponents) + (1 - damping) * s
//
// All teams update from the same previous round, so round t+1 depends only
// on round t and the result is independent of iteration order. Teams with no
// resolvable opponent are left unchanged that round. Iteration stops after
// maxIter rounds or once the largest per-team change falls below tol.
//
// Empty input (no edges or no seeds) returns the seeds unchanged.
func Refine(seed map[string]float64, edges []Edge, maxIter int, tol, damping float64) map[string]float64 {
	strengths := make(map[string]float64, len(seed))
	for id, s := range seed {
		strengths[id] = s
	}

	if len(edges) == 0 || len(strengths) == 0 {
		return strengths
	}

	opponents := make(map[string][]Edge, len(strengths))
	for _, e := range edges {
		opponents[e.Team] = append(opponents[e.Team], e)
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make(map[string]float64, len(strengths))
		maxChange := 0.0

		for team, s := range strengths {
			next[team] = s

			var weightedSum, weightSum float64
			for _, e := range opponents[team] {
				opp, ok := strengths[e.Opponent]
				if !ok {
					continue
				}
				weightedSum += opp * e.Weight
				weightSum += e.Weight
			}
			if weightSum == 0 {
				continue
			}

			updated := damping*(weightedSum/weightSum) + (1-damping)*s
			next[team] = updated

			change := updated - s
			if change < 0 {
				change = -change
			}
			if change > maxChange {
				maxChange = change
			}
		}

		strengths = next

		if maxChange < tol {
			break
		}
	}

	return strengths
}
