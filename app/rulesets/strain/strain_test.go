package strain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedSumSortsDescending(t *testing.T) {
	peaks := []float64{1, 3, 2}

	assert.InDelta(t, 3+2*0.9+1*0.81, WeightedSum(peaks, 0.9), 1e-12)
	assert.Equal(t, []float64{1, 3, 2}, peaks, "input must not be reordered")
}

func TestWeightedSumMonotonic(t *testing.T) {
	peaks := []float64{}
	last := 0.0

	for _, p := range []float64{0.5, 4, 0, 2.5, 1, 7} {
		peaks = append(peaks, p)
		sum := WeightedSum(peaks, 0.9)

		assert.GreaterOrEqual(t, sum, last)
		last = sum
	}
}

func TestWeightedSumEmpty(t *testing.T) {
	assert.Equal(t, 0.0, WeightedSum([]float64{}, 0.9))
	assert.Equal(t, float32(0), WeightedSum[float32](nil, 0.9))
}

func TestDecayFactor(t *testing.T) {
	assert.Equal(t, 1.0, DecayFactor(0.3, 0.0))
	assert.InDelta(t, 0.3, DecayFactor(0.3, 1000.0), 1e-12)
}

func TestRetainPositive(t *testing.T) {
	assert.Equal(t, []float64{2, 1}, RetainPositive([]float64{0, 2, -1, 1}))
}
