package stats

// TailConfig dampens the oldest retained matches: indexes in [Start, End)
// are scaled by a value interpolated linearly from StartWeight to EndWeight.
type TailConfig struct {
	Start       int
	End         int
	StartWeight float64
	EndWeight   float64
}

// TaperedWeights returns n recency weights summing to 1 for matches ordered
// newest first. The recentCount most recent matches evenly share recentShare
// of the total weight and the remainder evenly share the rest, then the tail
// range is dampened and the result renormalized.
//
// recentCount >= n puts all weight in the recent bucket; n == 0 returns an
// empty slice.
func TaperedWeights(n, recentCount int, recentShare float64, tail TailConfig) []float64 {
	if n == 0 {
		return []float64{}
	}

	weights := make([]float64, n)

	k := recentCount
	if k > n {
		k = n
	}

	if k > 0 {
		recentEach := recentShare / float64(k)
		for i := 0; i < k; i++ {
			weights[i] = recentEach
		}
	}
	if n > k {
		priorEach := (1 - recentShare) / float64(n-k)
		for i := k; i < n; i++ {
			weights[i] = priorEach
		}
	}

	applyTailDampening(weights, tail)

	normalize(weights)
	return weights
}

func applyTailDampening(weights []float64, tail TailConfig) {
	n := len(weights)
	start, end := tail.Start, tail.End
	if start >= n || end > n || start >= end {
		return
	}

	span := end - start
	if span < 2 {
		return
	}

	for i := start; i < end; i++ {
		frac := float64(i-start) / float64(span-1)
		damp := tail.StartWeight + (tail.EndWeight-tail.StartWeight)*frac
		weights[i] *= damp
	}
}

func normalize(weights []float64) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return
	}
	for i := range weights {
		weights[i] /= sum
	}
}
