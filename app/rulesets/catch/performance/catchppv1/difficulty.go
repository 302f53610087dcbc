// Package catchppv1 is the first osu!catch star rating: a single movement skill over fruits and
// droplets laid out the way osu!stable did, including its slider quirks.
package catchppv1

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

const (
	SectionLength     float32 = 750
	StarScalingFactor float64 = 0.145
	CurrentVersion    int     = 20140101
)

type DifficultyCalculator struct{}

func NewDifficultyCalculator() *DifficultyCalculator {
	return &DifficultyCalculator{}
}

// CalculateSingle calculates the final difficulty api.Attributes of a map, PassedObjects counts chart objects
func (diffCalc *DifficultyCalculator) CalculateSingle(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.Attributes {
	take := diff.Take(len(bMap.HitObjects))
	if take < 2 {
		return api.Attributes{}
	}

	catchObjects, counts := buildObjects(bMap, diff.CheckModActive(difficulty.HardRock), take)

	movement := diffCalc.process(bMap, diff, catchObjects)
	if movement == nil {
		return api.Attributes{}
	}

	attr := api.Attributes{
		ApproachRate: diff.ARReal,
		Fruits:       counts.fruits,
		Droplets:     counts.droplets,
		TinyDroplets: counts.tinyDroplets,
		IsConvert:    preprocessing.IsConvert(bMap),
	}

	attr.Total = math.Sqrt(movement.DifficultyValue()) * StarScalingFactor

	return attr
}

// CalculateStrainPeaks returns movement peaks of every finished section
func (diffCalc *DifficultyCalculator) CalculateStrainPeaks(bMap *beatmap.Beatmap, diff *difficulty.Difficulty) api.StrainPeaks {
	take := diff.Take(len(bMap.HitObjects))
	if take < 2 {
		return api.StrainPeaks{}
	}

	catchObjects, _ := buildObjects(bMap, diff.CheckModActive(difficulty.HardRock), take)

	movement := diffCalc.process(bMap, diff, catchObjects)
	if movement == nil {
		return api.StrainPeaks{}
	}

	return api.StrainPeaks{Movement: movement.StrainPeaks()}
}

func (diffCalc *DifficultyCalculator) process(bMap *beatmap.Beatmap, diff *difficulty.Difficulty, catchObjects []catchObject) *Movement {
	if len(catchObjects) < 2 {
		return nil
	}

	baseSize := preprocessing.CatcherWidth(float32(diff.CS)) * 0.5
	halfCatcherWidth := baseSize * 0.8

	lastDirection := 0
	lastExcess := baseSize

	for i := 0; i < len(catchObjects)-1; i++ {
		catchObjects[i].initHyperDash(baseSize, &catchObjects[i+1], &lastDirection, &lastExcess)
	}

	movement := NewMovement()

	sectionLength := SectionLength * float32(diff.Speed)
	currentSectionEnd := math32.Ceil(float32(bMap.HitObjects[0].GetStartTime())/sectionLength) * sectionLength

	for i := 1; i < len(catchObjects); i++ {
		current := newDifficultyObject(&catchObjects[i], &catchObjects[i-1], halfCatcherWidth, diff.Speed)

		// The first difficulty object only moves the boundary
		for current.Time > currentSectionEnd {
			if i > 1 {
				movement.SaveCurrentPeak()
				movement.StartNewSectionFrom(float64(currentSectionEnd))
			}

			currentSectionEnd += sectionLength
		}

		movement.Process(current)
	}

	movement.SaveCurrentPeak()

	return movement
}

func (diffCalc *DifficultyCalculator) GetVersion() int {
	return CurrentVersion
}

func (diffCalc *DifficultyCalculator) GetVersionMessage() string {
	return "ppv1: movement strain with hyper dash bonuses"
}
