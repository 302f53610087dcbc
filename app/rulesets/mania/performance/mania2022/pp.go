package mania2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
)

// PPv2 : structure to store ppv2 values
type PPv2 struct {
	attribs api.Attributes
	state   api.ScoreState
}

func NewPPCalculator() *PPv2 {
	return &PPv2{}
}

// Calculate rates a play, negative CountPerfect takes every object not counted elsewhere
func (pp *PPv2) Calculate(attribs api.Attributes, state api.ScoreState, diff *difficulty.Difficulty) api.PerformanceAttributes {
	pp.attribs = attribs
	pp.state = state.Fill(attribs.ObjectCount)

	if pp.state.TotalHits() == 0 {
		return api.PerformanceAttributes{Difficulty: attribs}
	}

	// scales pp to match other modes
	multiplier := 8.0

	if diff.CheckModActive(difficulty.NoFail) {
		multiplier *= 0.75
	}

	if diff.CheckModActive(difficulty.Easy) {
		multiplier *= 0.5
	}

	difficultyValue := pp.computeDifficultyValue()

	return api.PerformanceAttributes{
		Difficulty: attribs,
		Strain:     difficultyValue,
		Total:      difficultyValue * multiplier,
	}
}

func (pp *PPv2) computeDifficultyValue() float64 {
	difficultyValue := math.Pow(max(pp.attribs.Total-0.15, 0.05), 2.2)

	// 1/20th of the value per percent of custom accuracy above 80%
	difficultyValue *= max(0, 5*pp.state.CustomAccuracy()-4)

	// Length bonus, capped at 1500 notes
	return difficultyValue * (1 + 0.1*min(float64(pp.state.TotalHits())/1500, 1))
}
