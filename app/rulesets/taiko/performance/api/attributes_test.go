package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	s := ScoreState{CountGreat: 6, CountOk: 2, CountMiss: 2}

	assert.Equal(t, 10, s.TotalHits())
	assert.Equal(t, 8, s.TotalSuccessfulHits())
	assert.InDelta(t, 0.7, s.Accuracy(), 1e-12)
	assert.Zero(t, ScoreState{}.Accuracy())
}

func TestFill(t *testing.T) {
	s := ScoreState{MaxCombo: -1, CountGreat: -1, CountOk: 3, CountMiss: 2}.Fill(20)
	assert.Equal(t, ScoreState{MaxCombo: 18, CountGreat: 15, CountOk: 3, CountMiss: 2}, s)

	s = ScoreState{MaxCombo: 100, CountGreat: 50, CountOk: -4, CountMiss: 30}.Fill(20)
	assert.Equal(t, ScoreState{MaxCombo: 0, CountGreat: 0, CountOk: 0, CountMiss: 20}, s)
}

func TestScoreStateFromAccuracy(t *testing.T) {
	s := ScoreStateFromAccuracy(0.95, 100, 0)
	assert.Equal(t, 90, s.CountGreat)
	assert.Equal(t, 10, s.CountOk)
	assert.Equal(t, -1, s.MaxCombo)

	s = ScoreStateFromAccuracy(0.5, 10, 20)
	assert.Equal(t, ScoreState{MaxCombo: -1, CountMiss: 10}, s)
}

func TestAttributeProvider(t *testing.T) {
	_, ok := AttributeProvider{}.Attributes()
	assert.False(t, ok)

	attrs, ok := AttributeProvider{Difficulty: &Attributes{Stamina: 2}}.Attributes()
	assert.True(t, ok)
	assert.Equal(t, 2.0, attrs.Stamina)
}
