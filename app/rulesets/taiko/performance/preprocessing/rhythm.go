package preprocessing

import "math"

// Rhythm is a ratio between the current and previous interval with a fixed difficulty
type Rhythm struct {
	Numerator   int
	Denominator int
	Difficulty  float64
}

func (r Rhythm) Ratio() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

var commonRhythms = [...]Rhythm{
	{1, 1, 0.0},
	{2, 1, 0.3},
	{1, 2, 0.5},
	{3, 1, 0.3},
	{1, 3, 0.35},
	{3, 2, 0.6},
	{2, 3, 0.4},
	{5, 4, 0.5},
	{4, 5, 0.7},
}

// closestRhythm picks the common rhythm nearest to deltaTime/previousDelta, earlier entries win ties
func closestRhythm(deltaTime, previousDelta float64) *Rhythm {
	best := &commonRhythms[0]

	if previousDelta == 0 {
		return best
	}

	ratio := deltaTime / previousDelta
	bestDistance := math.Abs(ratio - best.Ratio())

	for i := 1; i < len(commonRhythms); i++ {
		if d := math.Abs(ratio - commonRhythms[i].Ratio()); d < bestDistance {
			best, bestDistance = &commonRhythms[i], d
		}
	}

	return best
}
