package mania2018

import "github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"

// DifficultyObject is a note in its column. StartTime and Delta are speed adjusted, hold overlap
// is judged on the unadjusted BaseStart and BaseEnd.
type DifficultyObject struct {
	StartTime float64
	Delta     float64

	BaseStart float64
	BaseEnd   float64

	Column int
}

func NewDifficultyObject(base, prev preprocessing.Object, columns int, clockRate float64) DifficultyObject {
	return DifficultyObject{
		StartTime: base.StartTime / clockRate,
		Delta:     (base.StartTime - prev.StartTime) / clockRate,
		BaseStart: base.StartTime,
		BaseEnd:   base.EndTime,
		Column:    preprocessing.Column(base.X, columns),
	}
}
