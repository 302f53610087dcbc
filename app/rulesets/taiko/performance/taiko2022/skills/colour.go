package skills

import (
	"math"

	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/preprocessing"
)

type Colour struct {
	*decaySkill
}

// NewColourSkill decays slower than the other skills, only the first object of a run carries difficulty
func NewColourSkill() *Colour {
	return &Colour{decaySkill: newDecaySkill(0.12, 0.8, EvaluateColour)}
}

func sigmoid(val, center, width, middle, height float64) float64 {
	return math.Tanh(math.E*-(val-center)/width)*(height/2) + middle
}

func evaluateMonoStreak(arena *preprocessing.ColourArena, streak int) float64 {
	s := arena.MonoStreaks[streak]

	return sigmoid(float64(s.Index), 2, 2, 0.5, 1) * evaluateAlternatingMonoPattern(arena, s.Parent) * 0.5
}

func evaluateAlternatingMonoPattern(arena *preprocessing.ColourArena, pattern int) float64 {
	p := arena.AlternatingMonoPatterns[pattern]

	return sigmoid(float64(p.Index), 2, 2, 0.5, 1) * evaluateRepeatingHitPatterns(arena, p.Parent)
}

func evaluateRepeatingHitPatterns(arena *preprocessing.ColourArena, pattern int) float64 {
	return 2 * (1 - sigmoid(float64(arena.RepeatingHitPatterns[pattern].RepetitionInterval), 2, 2, 0.5, 1))
}

// EvaluateColour sums the difficulty of every colour run that starts at current
func EvaluateColour(current *preprocessing.DifficultyObject) float64 {
	arena := current.Colours()
	monoStreak, alternating, repeating := arena.FirstObject(current.Colour)

	difficulty := 0.0

	if monoStreak == current.Index {
		difficulty += evaluateMonoStreak(arena, current.Colour.MonoStreak)
	}

	if alternating == current.Index {
		difficulty += evaluateAlternatingMonoPattern(arena, current.Colour.AlternatingMonoPattern)
	}

	if repeating == current.Index {
		difficulty += evaluateRepeatingHitPatterns(arena, current.Colour.RepeatingHitPatterns)
	}

	return difficulty
}
