package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobustMinMax_OutputInUnitInterval(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 100} // 100 is an outlier
	out := RobustMinMax(xs)

	require.Len(t, out, len(xs))
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0.0, "i=%d", i)
		assert.LessOrEqual(t, v, 1.0, "i=%d", i)
	}

	// Order is preserved
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i], out[i-1])
	}
}

func TestRobustMinMax_ConstantInput(t *testing.T) {
	out := RobustMinMax([]float64{3.7, 3.7, 3.7, 3.7})
	require.Len(t, out, 4)
	for _, v := range out {
		assert.Equal(t, 0.5, v)
	}
}

func TestRobustMinMax_Empty(t *testing.T) {
	assert.Empty(t, RobustMinMax(nil))
}

func TestRobustMinMax_SingleValue(t *testing.T) {
	// One value means a degenerate band
	out := RobustMinMax([]float64{42})
	require.Len(t, out, 1)
	assert.Equal(t, 0.5, out[0])
}

func TestRobustMinMax_OutlierResistance(t *testing.T) {
	// The extreme value is clipped to the 95th percentile band, so it cannot
	// push the rest of the distribution toward zero.
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 1000}
	out := RobustMinMax(xs)

	// The main body keeps real separation
	assert.Greater(t, out[18]-out[1], 0.5)
	// The outlier saturates rather than dominating
	assert.InDelta(t, out[19], out[18], 0.06)
}

func TestLogisticStretch(t *testing.T) {
	assert.InDelta(t, 0.5, logisticStretch(0.5), 1e-12)
	assert.Less(t, logisticStretch(0.0), 0.05)
	assert.Greater(t, logisticStretch(1.0), 0.95)
}
