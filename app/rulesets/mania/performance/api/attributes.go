package api

import "math"

// DefaultScore is the legacy score of a perfect play without score reducing mods
const DefaultScore = 1_000_000

type Attributes struct {
	// Total Star rating, visible on osu!'s beatmap page
	Total float64

	// GreatHitWindow is speed adjusted, 0 for revisions that don't report it
	GreatHitWindow float64

	Columns     int
	ObjectCount int

	// ChartObjectCount counts every object of the chart, partial plays have fewer in ObjectCount
	ChartObjectCount int

	// MaxCombo counts every note plus one per 100 ms of hold
	MaxCombo int

	IsConvert bool
}

// StrainPeaks contains the per-section peaks of the single mania skill
type StrainPeaks struct {
	Strain []float64
}

// ScoreState is the play being evaluated. Score feeds legacy revisions and is replaced by
// DefaultScore when negative, negative CountPerfect takes every object not counted elsewhere.
type ScoreState struct {
	Score float64

	CountPerfect int
	CountGreat   int
	CountGood    int
	CountOk      int
	CountMeh     int
	CountMiss    int
}

func (s ScoreState) TotalHits() int {
	return s.CountPerfect + s.CountGreat + s.CountGood + s.CountOk + s.CountMeh + s.CountMiss
}

// Accuracy is the score v1 accuracy where perfects and greats are worth the same
func (s ScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	numerator := 6*(s.CountPerfect+s.CountGreat) + 4*s.CountGood + 2*s.CountOk + s.CountMeh

	return float64(numerator) / float64(6*total)
}

// CustomAccuracy rewards perfects over greats
func (s ScoreState) CustomAccuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	numerator := 32*s.CountPerfect + 30*s.CountGreat + 20*s.CountGood + 10*s.CountOk + 5*s.CountMeh

	return float64(numerator) / float64(32*total)
}

// ScoreOrDefault returns Score, or DefaultScore when it wasn't set
func (s ScoreState) ScoreOrDefault() float64 {
	if s.Score < 0 {
		return DefaultScore
	}

	return s.Score
}

// Fill clamps counts to objects and hands the remainder to perfects when CountPerfect is negative
func (s ScoreState) Fill(objects int) ScoreState {
	s.CountMiss = min(max(s.CountMiss, 0), objects)
	remaining := objects - s.CountMiss

	clampCount := func(n *int) {
		*n = min(max(*n, 0), remaining)
		remaining -= *n
	}

	clampCount(&s.CountGreat)
	clampCount(&s.CountGood)
	clampCount(&s.CountOk)
	clampCount(&s.CountMeh)

	if s.CountPerfect < 0 {
		s.CountPerfect = remaining
	}

	s.CountPerfect = min(s.CountPerfect, remaining)

	return s
}

// ScoreStateFromAccuracy finds hit counts whose accuracy is closest to acc, preferring perfects
// over greats and splitting goods into perfects and oks where that keeps accuracy
func ScoreStateFromAccuracy(acc float64, objects, misses int) ScoreState {
	misses = min(max(misses, 0), objects)
	remaining := objects - misses

	target := acc * float64(6*objects)

	best := ScoreState{Score: -1, CountPerfect: remaining, CountMiss: misses}
	bestDistance := math.Inf(1)

	floorTo := func(v float64, limit int) int {
		return min(max(int(math.Floor(v)), 0), limit)
	}

	ceilTo := func(v float64, limit int) int {
		return min(max(int(math.Ceil(v)), 0), limit)
	}

	min3x0 := floorTo((target-float64(4*remaining))/5, remaining)
	max3x0 := ceilTo(min((target-float64(remaining))/5, acc*float64(3*objects)-float64(remaining)), remaining)

	for n3x0 := min3x0; n3x0 <= max3x0; n3x0++ {
		left := remaining - n3x0

		min200 := floorTo(acc*float64(3*objects)-float64(remaining+2*n3x0), left)
		max200 := ceilTo((target-float64(remaining+5*n3x0))/3, left)

		for n200 := min200; n200 <= max200; n200++ {
			raw100 := target - float64(remaining+5*n3x0+3*n200)

			for n100 := floorTo(raw100, left-n200); n100 <= ceilTo(raw100, left-n200); n100++ {
				candidate := ScoreState{
					Score:        -1,
					CountPerfect: n3x0,
					CountGood:    n200,
					CountOk:      n100,
					CountMeh:     left - n200 - n100,
					CountMiss:    misses,
				}

				if d := math.Abs(acc - candidate.Accuracy()); d < bestDistance {
					bestDistance = d
					best = candidate
				}
			}
		}
	}

	n := best.CountGood / 2
	best.CountPerfect += n
	best.CountGood -= 2 * n
	best.CountOk += n

	return best
}

type PerformanceAttributes struct {
	Difficulty Attributes

	// Strain and Acc are 0 for revisions that rate difficulty only
	Strain, Acc, Total float64
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
