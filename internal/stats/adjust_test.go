package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptiveK(t *testing.T) {
	// gap=2, n=10, alpha=0.5, beta=0.6
	want := (1 + 0.5*2.0) / (1 + 0.6*math.Log(10))
	assert.InDelta(t, want, AdaptiveK(2.0, 10, 0.5, 0.6), 1e-12)

	// Negative gap contributes by magnitude
	assert.InDelta(t, AdaptiveK(2.0, 10, 0.5, 0.6), AdaptiveK(-2.0, 10, 0.5, 0.6), 1e-12)

	// Bigger gap raises K, bigger sample lowers it
	assert.Greater(t, AdaptiveK(3.0, 10, 0.5, 0.6), AdaptiveK(1.0, 10, 0.5, 0.6))
	assert.Less(t, AdaptiveK(2.0, 25, 0.5, 0.6), AdaptiveK(2.0, 5, 0.5, 0.6))

	// n < 1 is treated as 1, so ln never goes negative
	assert.InDelta(t, 1+0.5*2.0, AdaptiveK(2.0, 0, 0.5, 0.6), 1e-12)
}

func TestPerformanceMultiplier(t *testing.T) {
	tests := []struct {
		name         string
		perf         float64
		recencyIndex int
		want         float64
	}{
		{"inside threshold", 0.9, 0, 1.0},
		{"negative inside threshold", -0.5, 3, 1.0},
		{"overperformance most recent", 2.0, 0, 1.10},
		{"underperformance most recent", -2.0, 0, 0.90},
		{"overperformance decays with age", 2.0, 5, 1.10 * math.Exp(-0.05*5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerformanceMultiplier(tt.perf, 0.10, 0.05, tt.recencyIndex, 1.0)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestShrink(t *testing.T) {
	// Zero observations return the prior mean exactly, for any value/tau
	assert.Equal(t, 2.5, Shrink(99.0, 0, 2.5, 6.0))
	assert.Equal(t, -1.0, Shrink(0.0, 0, -1.0, 0.0))

	// (n*v + tau*prior) / (n+tau)
	got := Shrink(4.0, 10, 2.0, 6.0)
	assert.InDelta(t, (10*4.0+6.0*2.0)/16.0, got, 1e-12)

	// Larger tau pulls harder toward the prior
	near := Shrink(4.0, 10, 2.0, 1.0)
	far := Shrink(4.0, 10, 2.0, 50.0)
	assert.Greater(t, near, far)
	assert.Greater(t, far, 2.0)
}

func TestCapGoalDiff(t *testing.T) {
	for _, gd := range []float64{-20, -7.01, -7, 0, 3, 7, 11.5} {
		capped := CapGoalDiff(gd, 7)
		assert.GreaterOrEqual(t, capped, -7.0)
		assert.LessOrEqual(t, capped, 7.0)
	}
	assert.Equal(t, 3.0, CapGoalDiff(3, 7))
	assert.Equal(t, -7.0, CapGoalDiff(-12, 7))
}

func TestClipZScore(t *testing.T) {
	xs := []float64{1, 2, 3, 2, 1, 2, 50}
	clipped := ClipZScore(xs, 2.5)

	require.Len(t, clipped, len(xs))
	assert.Less(t, clipped[6], 50.0, "outlier must be pulled in")
	for i := 0; i < 6; i++ {
		assert.Equal(t, xs[i], clipped[i], "inliers untouched")
	}
}

func TestClipZScore_DegenerateInputs(t *testing.T) {
	// Single observation: nothing to clip against
	assert.Equal(t, []float64{5}, ClipZScore([]float64{5}, 2.5))

	// Zero spread: returned unchanged
	assert.Equal(t, []float64{2, 2, 2}, ClipZScore([]float64{2, 2, 2}, 2.5))
}

func TestClipZScoreByKey_SingleObservationIsNoOp(t *testing.T) {
	// The aggregate table holds exactly one row per team, so the per-team
	// clip must leave every value untouched.
	keys := []string{"t1", "t2", "t3", "t4"}
	vals := []float64{0.1, 5.0, 250.0, -40.0}

	out := ClipZScoreByKey(keys, vals, 2.5)
	assert.Equal(t, vals, out)
}

func TestClipZScoreByKey_GroupsClippedIndependently(t *testing.T) {
	keys := []string{"a", "a", "a", "a", "a", "a", "a", "b"}
	vals := []float64{1, 2, 3, 2, 1, 2, 50, 9999}

	out := ClipZScoreByKey(keys, vals, 2.5)
	assert.Less(t, out[6], 50.0, "outlier within group a clipped")
	assert.Equal(t, 9999.0, out[7], "singleton group b untouched")
}

func TestQuantile(t *testing.T) {
	xs := []float64{4, 1, 3, 2}

	assert.Equal(t, 1.0, Quantile(xs, 0))
	assert.Equal(t, 4.0, Quantile(xs, 1))
	assert.InDelta(t, 2.5, Quantile(xs, 0.5), 1e-12)
	assert.Equal(t, 0.0, Quantile(nil, 0.5))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.InDelta(t, 2.5, Median([]float64{4, 1, 3, 2}), 1e-12)
	assert.Equal(t, 0.0, Median(nil))
}
