package evaluators

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	singleSpacingThreshold float64 = 125
	minSpeedBonus          float64 = 75 // ~200BPM
	speedBalancingFactor   float64 = 40
	distanceMultiplier     float64 = 0.94
)

// EvaluateSpeed rates tapping speed, capped by the 300 hit window and nerfed for doubletappable rhythm
func EvaluateSpeed(current *preprocessing.DifficultyObject) float64 {
	if current.IsSpinner {
		return 0
	}

	osuCurrObj := current
	osuPrevObj := current.Previous(0)
	osuNextObj := current.Next(0)

	strainTime := osuCurrObj.StrainTime
	doubletapness := 1.0 - osuCurrObj.GetDoubletapness(osuNextObj)

	// Cap deltatime to the OD 300 hitwindow.
	strainTime /= mutils.Clamp((strainTime/osuCurrObj.GreatWindow)/0.93, 0.92, 1)

	speedBonus := 0.0
	if strainTime < minSpeedBonus {
		speedBonus = 0.75 * math.Pow((minSpeedBonus-strainTime)/speedBalancingFactor, 2)
	}

	travelDistance := 0.0
	if osuPrevObj != nil {
		travelDistance = osuPrevObj.TravelDistance
	}

	distance := min(singleSpacingThreshold, travelDistance+osuCurrObj.MinimumJumpDistance)

	distanceBonus := math.Pow(distance/singleSpacingThreshold, 3.95) * distanceMultiplier

	return (1 + speedBonus + distanceBonus) * 1000 / strainTime * doubletapness
}
