package maniappv1

import (
	"github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/math32"
)

// DifficultyObject is a note with its column and the speed adjusted time since the previous note.
// Times are not adjusted by clock rate.
type DifficultyObject struct {
	StartTime float32
	EndTime   float32
	Delta     float32
	Column    int
}

// NewDifficultyObject splits the playfield by unrounded circle size, columns only bounds the result
func NewDifficultyObject(base, prev preprocessing.Object, cs float32, columns int, clockRate float32) DifficultyObject {
	divisor := 512 / cs
	column := math32.Floor(float32(base.X) / divisor)
	column = min(max(column, 0), cs-1)

	return DifficultyObject{
		StartTime: float32(base.StartTime),
		EndTime:   float32(base.EndTime),
		Delta:     (float32(base.StartTime) - float32(prev.StartTime)) / clockRate,
		Column:    min(max(int(column), 0), columns-1),
	}
}
