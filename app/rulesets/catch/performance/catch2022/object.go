package catch2022

import (
	"github.com/Givikap120/strainarchive/app/rulesets/catch/performance/preprocessing"
)

const (
	normalizedHitObjectRadius = 41.0
	minStrainTime             = 40.0
)

type DifficultyObject struct {
	Index int

	// StartTime and DeltaTime are scaled by clock rate
	StartTime float64
	DeltaTime float64

	StrainTime float64

	NormalizedPosition     float32
	LastNormalizedPosition float32

	// LastObject is the palpable object before this one
	LastObject *preprocessing.PalpableObject

	ClockRate float64
}

// halfCatcherWidth is the normalization width, shrunk further for circle sizes above 5.5
func halfCatcherWidth(cs float32) float32 {
	width := preprocessing.CatchWidth(cs) * 0.5

	return width * (1 - max(cs-5.5, 0)*0.0625)
}

// CreateDifficultyObjects skips the first palpable object, it only serves as the last object of the second
func CreateDifficultyObjects(palpable []preprocessing.PalpableObject, cs float32, clockRate float64) []*DifficultyObject {
	if len(palpable) < 2 {
		return nil
	}

	scalingFactor := normalizedHitObjectRadius / halfCatcherWidth(cs)

	diffObjects := make([]*DifficultyObject, 0, len(palpable)-1)

	for i := 1; i < len(palpable); i++ {
		current, last := &palpable[i], &palpable[i-1]
		delta := (current.StartTime - last.StartTime) / clockRate

		diffObjects = append(diffObjects, &DifficultyObject{
			Index:                  i - 1,
			StartTime:              current.StartTime / clockRate,
			DeltaTime:              delta,
			StrainTime:             max(minStrainTime, delta),
			NormalizedPosition:     current.X * scalingFactor,
			LastNormalizedPosition: last.X * scalingFactor,
			LastObject:             last,
			ClockRate:              clockRate,
		})
	}

	return diffObjects
}
