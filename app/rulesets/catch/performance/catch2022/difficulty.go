// Package catch2022 is the osu!catch star rating since 2022: movement strain over palpable objects
// with hard rock offsets placed by osu!stable's random sequence.
package catch2022

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/preprocessing"
)

const (
	StarScalingFactor float64 = 0.153
	CurrentVersion    int     = 20220902
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

func (diffCalc *DifficultyCalculator) prepare(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) ([]*DifficultyObject, preprocessing.ObjectCount) {
	cs := float32(diff.CS)
	take := diff.Take(math.MaxInt)

	palpable, count := preprocessing.ConvertObjects(bMap, diff.CheckModActive(difficulty.HardRock), cs, take)
	palpable = palpable[:min(take, len(palpable))]

	return CreateDifficultyObjects(palpable, cs, diff.Speed), count
}

func (diffCalc *DifficultyCalculator) process(diffObjects []*DifficultyObject) *Movement {
	movement := NewMovement()

	for _, o := range diffObjects {
		movement.Process(o)
	}

	return movement
}

// CalculateSingle calculates the final difficulty api.Attributes of a map, PassedObjects counts fruits and droplets
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	diffObjects, count := diffCalc.prepare(bMap, diff)
	if len(diffObjects) == 0 {
		return api.Attributes{}
	}

	attr := api.Attributes{
		ApproachRate: diff.ARReal,
		Fruits:       count.Fruits,
		Droplets:     count.Droplets,
		TinyDroplets: count.TinyDroplets,
		IsConvert:    preprocessing.IsConvert(bMap),
	}

	attr.Total = math.Sqrt(diffCalc.process(diffObjects).DifficultyValue()) * StarScalingFactor

	return attr
}

// CalculateStrainPeaks returns movement peaks of every section, the unfinished one included
func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	diffObjects, _ := diffCalc.prepare(bMap, diff)
	if len(diffObjects) == 0 {
		return api.StrainPeaks{}
	}

	return api.StrainPeaks{Movement: diffCalc.process(diffObjects).GetCurrentStrainPeaks()}
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "2022-09-02: movement rebalance, stable hard rock offsets"
}
