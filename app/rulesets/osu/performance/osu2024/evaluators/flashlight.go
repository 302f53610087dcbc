package evaluators

import (
	"math"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

const (
	maxOpacityBonus      float64 = 0.4
	hiddenBonus          float64 = 0.2
	minVelocity          float64 = 0.5
	flSliderMultiplier   float64 = 1.3
	minAngleMultiplier   float64 = 0.2
	flashlightLookback   int     = 10
	flashlightRadiusNorm float64 = 52
)

// EvaluateFlashlight rates memorisation of up to ten previous objects, weighted by distance and visibility
func EvaluateFlashlight(current *preprocessing.DifficultyObject, hidden bool) float64 {
	if current.IsSpinner {
		return 0
	}

	osuCurrent := current
	osuHitObject := current.BaseObject
	mods := current.Diff.Mods

	scalingFactor := flashlightRadiusNorm / current.Radius()
	smallDistNerf := 1.0
	cumulativeStrainTime := 0.0

	result := 0.0

	lastObj := osuCurrent

	angleRepeatCount := 0.0

	// This is iterating backwards in time from the current object.
	for i := 0; i < min(current.Index, flashlightLookback); i++ {
		currentObj := current.Previous(i)
		currentHitObject := currentObj.BaseObject

		cumulativeStrainTime += lastObj.StrainTime

		if !currentObj.IsSpinner {
			jumpDistance := float64(osuHitObject.GetStackedStartPositionMod(mods).Dst(endPosition(currentHitObject, mods)))

			// We want to nerf objects that can be easily seen within the Flashlight circle radius.
			if i == 0 {
				smallDistNerf = min(1.0, jumpDistance/75.0)
			}

			// We also want to nerf stacks so that only the first object of the stack is accounted for.
			stackNerf := min(1.0, (currentObj.LazyJumpDistance/scalingFactor)/25.0)

			// Bonus based on how visible the object is.
			opacityBonus := 1.0 + maxOpacityBonus*(1.0-osuCurrent.OpacityAt(currentHitObject.GetStartTime(), hidden))

			result += stackNerf * opacityBonus * scalingFactor * jumpDistance / cumulativeStrainTime

			// Objects further back in time should count less for the nerf.
			if !math.IsNaN(currentObj.Angle) && !math.IsNaN(osuCurrent.Angle) && math.Abs(currentObj.Angle-osuCurrent.Angle) < 0.02 {
				angleRepeatCount += max(1.0-0.1*float64(i), 0.0)
			}
		}

		lastObj = currentObj
	}

	result = math.Pow(smallDistNerf*result, 2.0)

	// Additional bonus for Hidden due to there being no approach circles.
	if hidden {
		result *= 1.0 + hiddenBonus
	}

	// Nerf patterns with repeated angles.
	result *= minAngleMultiplier + (1.0-minAngleMultiplier)/(angleRepeatCount+1.0)

	sliderBonus := 0.0

	if osuSlider, ok := osuCurrent.BaseObject.(*preprocessing.LazySlider); ok {
		// Invert the scaling factor to determine the true travel distance independent of circle size.
		pixelTravelDistance := float64(osuSlider.LazyTravelDistance) / scalingFactor

		// Reward sliders based on velocity.
		sliderBonus = math.Pow(max(0.0, pixelTravelDistance/osuCurrent.TravelTime-minVelocity), 0.5)

		// Longer sliders require more memorisation.
		sliderBonus *= pixelTravelDistance

		// Nerf sliders with repeats, as less memorisation is required.
		if repeats := osuSlider.RepeatCount - 1; repeats > 0 {
			sliderBonus /= float64(repeats + 1)
		}
	}

	result += sliderBonus * flSliderMultiplier

	return result
}

// endPosition is where the object visually ends, sliders use the real tail instead of the lazy cursor
func endPosition(o objects.IHitObject, mods difficulty.Modifier) vector.Vector2f {
	if s, ok := o.(*preprocessing.LazySlider); ok {
		return s.GetStackedEndPositionMod(mods)
	}

	return o.GetStackedStartPositionMod(mods)
}
