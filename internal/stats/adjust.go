package stats

import "math"

// AdaptiveK computes the gap- and sample-size-sensitive multiplier:
//
//	(1 + alpha*|gap|) / (1 + beta*ln(max(1, n)))
//
// The multiplier grows with the strength gap and shrinks with sample size,
// so one lopsided result moves a low-data team more than a well-sampled one.
func AdaptiveK(gap float64, n int, alpha, beta float64) float64 {
	if n < 1 {
		n = 1
	}
	gapComponent := 1 + alpha*math.Abs(gap)
	sampleComponent := 1 / (1 + beta*math.Log(float64(n)))
	return gapComponent * sampleComponent
}

// PerformanceMultiplier converts an actual-vs-expected goal differential into
// a multiplier that fades with match age. Deviations inside the threshold are
// noise and return exactly 1. recencyIndex is 0 for the most recent match.
func PerformanceMultiplier(perf, k, decayRate float64, recencyIndex int, threshold float64) float64 {
	if math.Abs(perf) < threshold {
		return 1.0
	}

	sign := 1.0
	if perf < 0 {
		sign = -1.0
	}

	multiplier := 1 + k*sign
	decay := math.Exp(-decayRate * float64(recencyIndex))
	return multiplier * decay
}

// Shrink pulls a noisy per-team value toward the league mean in proportion
// to sample size: (n*value + tau*prior) / (n + tau). Zero observations
// return the prior exactly.
func Shrink(value float64, n int, priorMean, tau float64) float64 {
	if n == 0 {
		return priorMean
	}
	fn := float64(n)
	return (fn*value + tau*priorMean) / (fn + tau)
}

// CapGoalDiff bounds a goal differential to [-cap, cap]
func CapGoalDiff(gd, cap float64) float64 {
	return Clamp(gd, -cap, cap)
}

// ClipZScore bounds each value to mean ± z*stdev of the slice. Slices with
// fewer than two values, or zero spread, are returned unchanged.
func ClipZScore(xs []float64, z float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	if len(xs) < 2 {
		return out
	}
	sd := StdDev(xs)
	if sd == 0 {
		return out
	}

	mean := Mean(xs)
	lo, hi := mean-z*sd, mean+z*sd
	for i, x := range out {
		out[i] = Clamp(x, lo, hi)
	}
	return out
}

// ClipZScoreByKey applies ClipZScore within each key's group, preserving
// input order. A key contributing a single observation is left untouched,
// which is exactly what happens when the table holds one aggregate per team.
func ClipZScoreByKey(keys []string, vals []float64, z float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)

	groups := make(map[string][]int)
	for i, k := range keys {
		groups[k] = append(groups[k], i)
	}

	for _, idxs := range groups {
		if len(idxs) < 2 {
			continue
		}
		group := make([]float64, len(idxs))
		for j, i := range idxs {
			group[j] = vals[i]
		}
		clipped := ClipZScore(group, z)
		for j, i := range idxs {
			out[i] = clipped[j]
		}
	}
	return out
}
