package preprocessing

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

const (
	NormalizedRadius        = 50.0
	CircleSizeBuffThreshold = 30.0
	MinDeltaTime            = 25

	// brokenGamefieldRoundingAllowance mirrors the playfield scale rounding of the game client
	brokenGamefieldRoundingAllowance = 1.00041
)

type DifficultyObject struct {
	listOfDiffs *[]*DifficultyObject
	Index       int

	Diff *difficulty.Difficulty

	BaseObject objects.IHitObject

	IsSlider  bool
	IsSpinner bool

	lastObject     objects.IHitObject
	lastLastObject objects.IHitObject

	// DeltaTime, StartTime and EndTime are divided by clock rate
	DeltaTime float64
	StartTime float64
	EndTime   float64

	LazyJumpDistance    float64
	MinimumJumpDistance float64
	MinimumJumpTime     float64

	TravelDistance float64
	TravelTime     float64

	// Angle is NaN for the first two objects and around spinners
	Angle float64

	StrainTime float64

	// GreatWindow is the full width of the 300 window, divided by clock rate
	GreatWindow float64
}

// CreateDifficultyObjects builds difficulty objects for every object after the first one
func CreateDifficultyObjects(hitObjects []objects.IHitObject, d *difficulty.Difficulty) []*DifficultyObject {
	lazyObjects := make([]objects.IHitObject, len(hitObjects))

	for i, o := range hitObjects {
		if s, ok := o.(*objects.Slider); ok {
			lazyObjects[i] = NewLazySlider(s, d)
		} else {
			lazyObjects[i] = o
		}
	}

	diffObjects := make([]*DifficultyObject, 0, max(0, len(hitObjects)-1))

	for i := 1; i < len(lazyObjects); i++ {
		var lastLast objects.IHitObject
		if i > 1 {
			lastLast = lazyObjects[i-2]
		}

		diffObjects = append(diffObjects, NewDifficultyObject(lazyObjects[i], lastLast, lazyObjects[i-1], d, &diffObjects, i-1))
	}

	return diffObjects
}

func NewDifficultyObject(hitObject, lastLastObject, lastObject objects.IHitObject, d *difficulty.Difficulty, listOfDiffs *[]*DifficultyObject, index int) *DifficultyObject {
	obj := &DifficultyObject{
		listOfDiffs:    listOfDiffs,
		Index:          index,
		Diff:           d,
		BaseObject:     hitObject,
		lastObject:     lastObject,
		lastLastObject: lastLastObject,
		DeltaTime:      (hitObject.GetStartTime() - lastObject.GetStartTime()) / d.Speed,
		StartTime:      hitObject.GetStartTime() / d.Speed,
		EndTime:        hitObject.GetEndTime() / d.Speed,
		Angle:          math.NaN(),
		GreatWindow:    2 * d.Hit300U / d.Speed,
	}

	if _, ok := hitObject.(*objects.Spinner); ok {
		obj.IsSpinner = true
	}

	if _, ok := hitObject.(*LazySlider); ok {
		obj.IsSlider = true
	}

	obj.StrainTime = max(obj.DeltaTime, MinDeltaTime)

	obj.setDistances()

	return obj
}

// GetDoubletapness is 0 for even rhythm and approaches 1 when the next object comes much later
func (o *DifficultyObject) GetDoubletapness(osuNextObj *DifficultyObject) float64 {
	if osuNextObj != nil {
		currDeltaTime := max(1, o.DeltaTime)
		nextDeltaTime := max(1, osuNextObj.DeltaTime)
		deltaDifference := math.Abs(nextDeltaTime - currDeltaTime)
		speedRatio := currDeltaTime / max(currDeltaTime, deltaDifference)
		windowRatio := math.Pow(min(1, currDeltaTime/o.GreatWindow), 2)
		return 1 - math.Pow(speedRatio, 1-windowRatio)
	}

	return 0
}

// OpacityAt returns how visible this object is at an unscaled time
func (o *DifficultyObject) OpacityAt(time float64, hidden bool) float64 {
	if time > o.BaseObject.GetStartTime() {
		return 0
	}

	fadeInStartTime := o.BaseObject.GetStartTime() - o.Diff.PreemptU
	fadeInDuration := o.Diff.TimeFadeIn

	if hidden {
		fadeOutStartTime := o.BaseObject.GetStartTime() - o.Diff.PreemptU + o.Diff.TimeFadeIn
		fadeOutDuration := o.Diff.PreemptU * 0.3

		return min(
			mutils.Clamp((time-fadeInStartTime)/fadeInDuration, 0.0, 1.0),
			1.0-mutils.Clamp((time-fadeOutStartTime)/fadeOutDuration, 0.0, 1.0),
		)
	}

	return mutils.Clamp((time-fadeInStartTime)/fadeInDuration, 0.0, 1.0)
}

func (o *DifficultyObject) Previous(backwardsIndex int) *DifficultyObject {
	index := o.Index - (backwardsIndex + 1)

	if index < 0 {
		return nil
	}

	return (*o.listOfDiffs)[index]
}

func (o *DifficultyObject) Next(forwardsIndex int) *DifficultyObject {
	index := o.Index + (forwardsIndex + 1)

	if index >= len(*o.listOfDiffs) {
		return nil
	}

	return (*o.listOfDiffs)[index]
}

// Radius returns the circle radius with the client's rounding allowance
func (o *DifficultyObject) Radius() float64 {
	return radius(o.Diff)
}

func radius(d *difficulty.Difficulty) float64 {
	return d.CircleRadiusU * brokenGamefieldRoundingAllowance
}

func (o *DifficultyObject) setDistances() {
	if currentSlider, ok := o.BaseObject.(*LazySlider); ok {
		// RepeatCount counts the first span
		o.TravelDistance = float64(currentSlider.LazyTravelDistance) * math.Pow(1+float64(currentSlider.RepeatCount-1)/2.5, 1.0/2.5)
		o.TravelTime = max(currentSlider.LazyTravelTime/o.Diff.Speed, MinDeltaTime)
	}

	_, ok1 := o.BaseObject.(*objects.Spinner)
	_, ok2 := o.lastObject.(*objects.Spinner)

	if ok1 || ok2 {
		return
	}

	r := float32(o.Radius())
	scalingFactor := NormalizedRadius / r

	if r < CircleSizeBuffThreshold {
		smallCircleBonus := min(CircleSizeBuffThreshold-r, 5.0) / 50.0
		scalingFactor *= 1.0 + smallCircleBonus
	}

	lastCursorPosition := getEndCursorPosition(o.lastObject, o.Diff)
	position := o.BaseObject.GetStackedStartPositionMod(o.Diff.Mods)

	o.LazyJumpDistance = float64(position.Scl(scalingFactor).Dst(lastCursorPosition.Scl(scalingFactor)))
	o.MinimumJumpTime = o.StrainTime
	o.MinimumJumpDistance = o.LazyJumpDistance

	if lastSlider, ok := o.lastObject.(*LazySlider); ok {
		lastTravelTime := max(lastSlider.LazyTravelTime/o.Diff.Speed, MinDeltaTime)
		o.MinimumJumpTime = max(o.StrainTime-lastTravelTime, MinDeltaTime)

		// The player either cuts the slider short (lazy jump) or follows it through to the tail,
		// whichever movement is shorter
		tailJumpDistance := lastSlider.GetStackedPositionAtMod(lastSlider.EndTimeLazer, o.Diff.Mods).Dst(position) * scalingFactor
		o.MinimumJumpDistance = max(0, min(o.LazyJumpDistance-float64(maximumSliderRadius-assumedSliderRadius), float64(tailJumpDistance-maximumSliderRadius)))
	}

	if o.lastLastObject != nil {
		if _, ok := o.lastLastObject.(*objects.Spinner); ok {
			return
		}

		lastLastCursorPosition := getEndCursorPosition(o.lastLastObject, o.Diff)

		v1 := lastLastCursorPosition.Sub(o.lastObject.GetStackedStartPositionMod(o.Diff.Mods))
		v2 := position.Sub(lastCursorPosition)
		dot := v1.Dot(v2)
		det := v1.X*v2.Y - v1.Y*v2.X
		o.Angle = float64(math32.Abs(math32.Atan2(det, dot)))
	}
}

func getEndCursorPosition(obj objects.IHitObject, d *difficulty.Difficulty) (pos vector.Vector2f) {
	pos = obj.GetStackedStartPositionMod(d.Mods)

	if s, ok := obj.(*LazySlider); ok {
		pos = s.LazyEndPosition
	}

	return
}
