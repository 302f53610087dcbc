package api

import "math"

type Attributes struct {
	// Total Star rating, visible on osu!'s beatmap page
	Total float64

	Stamina float64
	Rhythm  float64
	Colour  float64

	// Peak is the combined rating of all skills before rescaling
	Peak float64

	// MonoStaminaFactor approaches 1 on charts where most stamina comes from single colour streams
	MonoStaminaFactor float64

	// GreatHitWindow and OkHitWindow are speed adjusted, in milliseconds
	GreatHitWindow float64
	OkHitWindow    float64

	ObjectCount int

	// MaxCombo is the number of hits, drum rolls and swells give no combo
	MaxCombo int

	IsConvert bool
}

// StrainPeaks contains per-section peaks of every skill
type StrainPeaks struct {
	Rhythm  []float64
	Colour  []float64
	Stamina []float64

	// Total contains the combined peak of every section
	Total []float64
}

// ScoreState is the play being evaluated, negative MaxCombo means full combo and negative
// CountGreat takes every hit not counted elsewhere
type ScoreState struct {
	MaxCombo int

	CountGreat int
	CountOk    int
	CountMiss  int
}

func (s ScoreState) TotalHits() int {
	return s.CountGreat + s.CountOk + s.CountMiss
}

func (s ScoreState) TotalSuccessfulHits() int {
	return s.CountGreat + s.CountOk
}

// Accuracy weighs greats twice as much as oks
func (s ScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	return float64(2*s.CountGreat+s.CountOk) / float64(2*total)
}

type PerformanceAttributes struct {
	Difficulty Attributes

	Strain, Acc, Total float64

	EffectiveMissCount float64

	// EstimatedUnstableRate is 0 when it can't be estimated
	EstimatedUnstableRate float64
}

// AttributeProvider holds exactly one of difficulty or performance attributes
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

// Fill clamps counts to hits and replaces negative CountGreat and MaxCombo with their defaults
func (s ScoreState) Fill(hits int) ScoreState {
	s.CountMiss = min(max(s.CountMiss, 0), hits)
	s.CountOk = min(max(s.CountOk, 0), hits-s.CountMiss)

	if s.CountGreat < 0 {
		s.CountGreat = hits - s.CountOk - s.CountMiss
	}

	s.CountGreat = min(s.CountGreat, hits-s.CountOk-s.CountMiss)

	maxPossibleCombo := hits - s.CountMiss
	if s.MaxCombo < 0 {
		s.MaxCombo = maxPossibleCombo
	}

	s.MaxCombo = min(s.MaxCombo, maxPossibleCombo)

	return s
}

// ScoreStateFromAccuracy splits hits into greats and oks so the state lands as close to acc as
// possible, misses are taken as given
func ScoreStateFromAccuracy(acc float64, hits, misses int) ScoreState {
	misses = min(max(misses, 0), hits)
	remaining := hits - misses

	state := ScoreState{MaxCombo: -1, CountOk: remaining, CountMiss: misses}

	rawGreat := acc*float64(2*hits) - float64(remaining)
	minGreat := min(remaining, max(0, int(math.Floor(rawGreat))))
	maxGreat := min(remaining, max(0, int(math.Ceil(rawGreat))))

	bestDistance := math.MaxFloat64

	for great := minGreat; great <= maxGreat; great++ {
		candidate := ScoreState{MaxCombo: -1, CountGreat: great, CountOk: remaining - great, CountMiss: misses}

		if d := math.Abs(acc - candidate.Accuracy()); d < bestDistance {
			bestDistance = d
			state = candidate
		}
	}

	return state
}
