package mania2022

import "github.com/Givikap120/strainarchive/app/rulesets/mania/performance/preprocessing"

// DifficultyObject is a note in its column, all times are speed adjusted
type DifficultyObject struct {
	Index int

	StartTime float64
	EndTime   float64
	DeltaTime float64

	Column int

	previous *DifficultyObject
}

// Previous returns the object before this one, nil for the first
func (o *DifficultyObject) Previous() *DifficultyObject {
	return o.previous
}

// CreateDifficultyObjects pairs every object after the first with its predecessor
func CreateDifficultyObjects(maniaObjects []preprocessing.Object, columns int, clockRate float64) []*DifficultyObject {
	if len(maniaObjects) < 2 {
		return nil
	}

	diffObjects := make([]*DifficultyObject, 0, len(maniaObjects)-1)

	var previous *DifficultyObject

	for i := 1; i < len(maniaObjects); i++ {
		base, last := maniaObjects[i], maniaObjects[i-1]

		current := &DifficultyObject{
			Index:     i - 1,
			StartTime: base.StartTime / clockRate,
			EndTime:   base.EndTime / clockRate,
			DeltaTime: (base.StartTime - last.StartTime) / clockRate,
			Column:    preprocessing.Column(base.X, columns),
			previous:  previous,
		}

		diffObjects = append(diffObjects, current)
		previous = current
	}

	return diffObjects
}
