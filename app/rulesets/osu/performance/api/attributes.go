package api

import "math"

type Attributes struct {
	// Total Star rating, visible on osu!'s beatmap page
	Total float64

	// Aim stars, needed for Performance Points (aka PP) calculations
	Aim float64

	// Speed stars, needed for Performance Points (aka PP) calculations
	Speed float64

	SpeedNoteCount float64

	AimDifficultStrainCount   float64
	SpeedDifficultStrainCount float64

	// Flashlight stars, needed for Performance Points (aka PP) calculations
	Flashlight float64

	// SliderFactor is a ratio of Aim calculated without sliders to Aim with them
	SliderFactor float64

	// ApproachRate and OverallDifficulty are speed adjusted
	ApproachRate      float64
	OverallDifficulty float64
	HPDrainRate       float64

	ObjectCount int
	Circles     int
	Sliders     int
	Spinners    int
	MaxCombo    int

	// LargeTicks counts slider ticks and repeats, used by lazer slider accuracy
	LargeTicks int
}

// StrainPeaks contains peaks of Aim, Speed and Flashlight skills, as well as peaks passed through star rating formula
type StrainPeaks struct {
	// Aim peaks
	Aim []float64

	// Speed peaks
	Speed []float64

	// Flashlight peaks
	Flashlight []float64

	// Total contains aim, speed and flashlight peaks passed through star rating formula
	Total []float64
}

// ScoreState is the play being evaluated, negative MaxCombo means full combo
type ScoreState struct {
	MaxCombo int

	CountGreat int
	CountOk    int
	CountMeh   int
	CountMiss  int

	LargeTickHits int
	SmallTickHits int
	SliderEndHits int
}

func (s ScoreState) TotalHits() int {
	return s.CountGreat + s.CountOk + s.CountMeh + s.CountMiss
}

// Accuracy is the stable hit circle accuracy, slider ticks and ends don't count
func (s ScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	return float64(6*s.CountGreat+2*s.CountOk+s.CountMeh) / float64(6*total)
}

// ScoreStateFromAccuracy picks great, ok and meh counts whose accuracy is closest to acc, fewest
// mehs first. Combo and slider counts are left to their defaults.
func ScoreStateFromAccuracy(acc float64, objects, misses int) ScoreState {
	misses = min(max(misses, 0), objects)
	remaining := objects - misses

	target := acc * float64(6*objects)

	best := ScoreState{MaxCombo: -1, CountGreat: remaining, CountMiss: misses, LargeTickHits: -1, SmallTickHits: -1, SliderEndHits: -1}
	bestDistance := math.Inf(1)

	for great := remaining; great >= 0; great-- {
		// 6 great + 2 ok + meh = target with ok + meh = remaining - great
		rawOk := target - float64(5*great+remaining)

		for _, rounded := range [2]float64{math.Floor(rawOk), math.Ceil(rawOk)} {
			ok := min(max(int(rounded), 0), remaining-great)

			candidate := best
			candidate.CountGreat, candidate.CountOk, candidate.CountMeh = great, ok, remaining-great-ok

			if d := math.Abs(acc - candidate.Accuracy()); d < bestDistance {
				bestDistance = d
				best = candidate
			}
		}
	}

	return best
}

type PerformanceAttributes struct {
	Difficulty Attributes

	Aim, Speed, Acc, Flashlight, Total float64

	EffectiveMissCount float64
}

// AttributeProvider holds exactly one of difficulty or performance attributes, so a previous
// calculation can be reused without recalculating difficulty
type AttributeProvider struct {
	Difficulty  *Attributes
	Performance *PerformanceAttributes
}

// Attributes extracts difficulty attributes, false when the provider is empty
func (p AttributeProvider) Attributes() (Attributes, bool) {
	switch {
	case p.Difficulty != nil:
		return *p.Difficulty, true
	case p.Performance != nil:
		return p.Performance.Difficulty, true
	}

	return Attributes{}, false
}
