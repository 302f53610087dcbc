package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var chart = Attributes{Fruits: 100, Droplets: 20, TinyDroplets: 80}

func TestAccuracy(t *testing.T) {
	s := ScoreState{Fruits: 10, Droplets: 5, TinyDroplets: 3, TinyDropletMisses: 1, Misses: 1}

	assert.InDelta(t, 0.9, s.Accuracy(), 1e-12)
	assert.Equal(t, 1.0, ScoreState{}.Accuracy())
	assert.Equal(t, 16, s.ComboHits())
}

func TestFillUnknown(t *testing.T) {
	s := NewScoreState()
	s.Misses = 5

	s = s.Fill(chart)

	assert.Equal(t, 100, s.Fruits)
	assert.Equal(t, 15, s.Droplets)
	assert.Equal(t, 80, s.TinyDroplets)
	assert.Zero(t, s.TinyDropletMisses)
	assert.Equal(t, 115, s.MaxCombo)
}

func TestFillMissesOverflowIntoFruits(t *testing.T) {
	s := NewScoreState()
	s.Misses = 25

	s = s.Fill(chart)

	assert.Zero(t, s.Droplets)
	assert.Equal(t, 95, s.Fruits)
	assert.Equal(t, chart.MaxCombo(), s.ComboHits())
}

func TestFillKnownCounts(t *testing.T) {
	s := NewScoreState()
	s.Fruits = 90
	s.Droplets = 10
	s.TinyDroplets = 50
	s.TinyDropletMisses = 10
	s.Misses = 2

	s = s.Fill(chart)

	assert.Equal(t, 20, s.Droplets)
	assert.Equal(t, 98, s.Fruits)
	assert.Equal(t, 70, s.TinyDroplets)
	assert.Equal(t, 10, s.TinyDropletMisses)
}

func TestFillOnlyTinyMisses(t *testing.T) {
	s := NewScoreState()
	s.TinyDropletMisses = 30

	s = s.Fill(chart)

	assert.Equal(t, 50, s.TinyDroplets)
	assert.Equal(t, 30, s.TinyDropletMisses)
}

func TestScoreStateFromAccuracy(t *testing.T) {
	s := NewScoreState().ScoreStateFromAccuracy(0.9, chart)

	assert.Equal(t, 100, s.Fruits)
	assert.Equal(t, 20, s.Droplets)
	assert.Equal(t, 60, s.TinyDroplets)
	assert.Equal(t, 20, s.TinyDropletMisses)
	assert.InDelta(t, 0.9, s.Accuracy(), 1e-12)
}

func TestScoreStateFromAccuracyKeepsConsistentTinies(t *testing.T) {
	s := NewScoreState()
	s.TinyDroplets = 70
	s.TinyDropletMisses = 10

	s = s.ScoreStateFromAccuracy(0.5, chart)

	assert.Equal(t, 70, s.TinyDroplets)
	assert.Equal(t, 10, s.TinyDropletMisses)
}

func TestAttributeProvider(t *testing.T) {
	_, ok := AttributeProvider{}.Attributes()
	assert.False(t, ok)

	attrs, ok := AttributeProvider{Performance: &PerformanceAttributes{Difficulty: chart}}.Attributes()
	assert.True(t, ok)
	assert.Equal(t, 120, attrs.MaxCombo())
}
