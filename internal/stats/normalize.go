package stats

import "math"

// Default quantile band for robust min-max scaling
const (
	robustQLow  = 0.05
	robustQHigh = 0.95
)

// RobustMinMax scales values to [0, 1] with outlier-resistant bounds: each
// value is clipped to the [5th, 95th] percentile band, linearly scaled, then
// passed through a gentle logistic stretch centered at 0.5.
//
// When the band is degenerate (both percentiles equal) every value maps to
// 0.5, so a constant input cannot produce NaN or spurious separation.
func RobustMinMax(xs []float64) []float64 {
	if len(xs) == 0 {
		return []float64{}
	}

	lo := Quantile(xs, robustQLow)
	hi := Quantile(xs, robustQHigh)

	out := make([]float64, len(xs))
	if lo == hi {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}

	for i, x := range xs {
		clipped := Clamp(x, lo, hi)
		scaled := (clipped - lo) / (hi - lo)
		out[i] = logisticStretch(scaled)
	}
	return out
}

// logisticStretch applies 1 / (1 + exp(-6*(x - 0.5)))
func logisticStretch(x float64) float64 {
	return 1 / (1 + math.Exp(-6*(x-0.5)))
}
