package mutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, float32(2), Lerp[float32](2, 4, 0))
}

func TestDifficultyRange(t *testing.T) {
	assert.Equal(t, 1200.0, DifficultyRange(5.0, 450, 1200, 1800))
	assert.Equal(t, 450.0, DifficultyRange(10.0, 450, 1200, 1800))
	assert.Equal(t, 1800.0, DifficultyRange(0.0, 450, 1200, 1800))
}

func TestLogistic(t *testing.T) {
	assert.InDelta(t, 0.5, Logistic(3, 3, 2, 1), 1e-12)
	assert.InDelta(t, 1.0, Logistic(100, 3, 2, 1), 1e-12)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Norm(2, 3, 4), 1e-12)
}
