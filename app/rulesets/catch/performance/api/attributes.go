package api

import "math"

type Attributes struct {
	// Total Star rating, visible on osu!'s beatmap page
	Total float64

	// ApproachRate is speed adjusted
	ApproachRate float64

	Fruits       int
	Droplets     int
	TinyDroplets int

	IsConvert bool
}

// MaxCombo counts fruits and droplets, tiny droplets don't give combo
func (a Attributes) MaxCombo() int {
	return a.Fruits + a.Droplets
}

// StrainPeaks contains the per-section peaks of the movement skill
type StrainPeaks struct {
	Movement []float64
}

// ScoreState is the play being evaluated. Negative counts are unknown and get derived by Fill,
// negative MaxCombo means full combo.
type ScoreState struct {
	MaxCombo int

	Fruits            int
	Droplets          int
	TinyDroplets      int
	TinyDropletMisses int
	Misses            int
}

// NewScoreState returns a state with every count unknown
func NewScoreState() ScoreState {
	return ScoreState{MaxCombo: -1, Fruits: -1, Droplets: -1, TinyDroplets: -1, TinyDropletMisses: -1}
}

// Accuracy counts every catch equally, an empty play is perfect
func (s ScoreState) Accuracy() float64 {
	return accuracy(s.Fruits, s.Droplets, s.TinyDroplets, s.TinyDropletMisses, s.Misses)
}

// ComboHits are the objects that give or break combo
func (s ScoreState) ComboHits() int {
	return s.Fruits + s.Droplets + s.Misses
}

func accuracy(fruits, droplets, tinyDroplets, tinyDropletMisses, misses int) float64 {
	numerator := fruits + droplets + tinyDroplets
	denominator := numerator + tinyDropletMisses + misses

	if denominator == 0 {
		return 1
	}

	return min(max(float64(numerator)/float64(denominator), 0), 1)
}

func sub0(a, b int) int {
	return max(a-b, 0)
}

// Fill derives unknown counts so that fruits, droplets and misses add up to the max combo
// and tiny droplets add up to the chart's tiny droplets
func (s ScoreState) Fill(attrs Attributes) ScoreState {
	return s.fill(attrs, math.NaN())
}

// ScoreStateFromAccuracy derives unknown counts of s, tiny droplets are picked to land closest to acc
func (s ScoreState) ScoreStateFromAccuracy(acc float64, attrs Attributes) ScoreState {
	return s.fill(attrs, acc)
}

func (s ScoreState) fill(attrs Attributes, acc float64) ScoreState {
	comboObjects := attrs.MaxCombo()

	s.Misses = min(max(s.Misses, 0), comboObjects)

	if s.MaxCombo < 0 {
		s.MaxCombo = comboObjects - s.Misses
	}

	s.Fruits, s.Droplets = s.fillComboHits(attrs)

	hasTiny, hasTinyMisses := s.TinyDroplets >= 0, s.TinyDropletMisses >= 0

	switch {
	case hasTiny && hasTinyMisses:
		if math.IsNaN(acc) {
			s.TinyDroplets += sub0(attrs.TinyDroplets, s.TinyDroplets+s.TinyDropletMisses)
		} else if s.TinyDroplets+s.TinyDropletMisses != attrs.TinyDroplets {
			s.findBestTinyDroplets(acc, attrs)
		}
	case hasTiny:
		s.TinyDropletMisses = sub0(attrs.TinyDroplets, s.TinyDroplets)
		s.TinyDroplets = min(attrs.TinyDroplets, s.TinyDroplets)
	case hasTinyMisses:
		s.TinyDroplets = sub0(attrs.TinyDroplets, s.TinyDropletMisses)
		s.TinyDropletMisses = min(attrs.TinyDroplets, s.TinyDropletMisses)
	case math.IsNaN(acc):
		s.TinyDroplets = attrs.TinyDroplets
		s.TinyDropletMisses = 0
	default:
		s.findBestTinyDroplets(acc, attrs)
	}

	return s
}

func (s ScoreState) fillComboHits(attrs Attributes) (fruits, droplets int) {
	total := attrs.MaxCombo()
	misses := s.Misses

	switch {
	case s.Fruits >= 0 && s.Droplets >= 0:
		fruits, droplets = s.Fruits, s.Droplets

		remaining := sub0(total, fruits+droplets+misses)
		newDroplets := min(remaining, sub0(attrs.Droplets, droplets))

		droplets += newDroplets
		fruits += remaining - newDroplets

		fruits = min(fruits, sub0(total, droplets+misses))
		droplets = min(droplets, total-fruits-misses)
	case s.Fruits >= 0:
		droplets = sub0(attrs.Droplets, sub0(misses, sub0(attrs.Fruits, s.Fruits)))
		fruits = total - misses - droplets
	case s.Droplets >= 0:
		fruits = sub0(attrs.Fruits, sub0(misses, sub0(attrs.Droplets, s.Droplets)))
		droplets = total - misses - fruits
	default:
		droplets = sub0(attrs.Droplets, misses)
		fruits = attrs.Fruits - (misses - (attrs.Droplets - droplets))
	}

	return fruits, droplets
}

func (s *ScoreState) findBestTinyDroplets(acc float64, attrs Attributes) {
	raw := acc*float64(attrs.Fruits+attrs.Droplets+attrs.TinyDroplets) - float64(s.Fruits+s.Droplets)

	lo := min(attrs.TinyDroplets, max(int(math.Floor(raw)), 0))
	hi := min(attrs.TinyDroplets, max(int(math.Ceil(raw)), 0))

	bestDistance := math.Inf(1)

	for tiny := lo; tiny <= hi; tiny++ {
		misses := attrs.TinyDroplets - tiny

		if d := math.Abs(acc - accuracy(s.Fruits, s.Droplets, tiny, misses, s.Misses)); d < bestDistance {
			bestDistance = d
			s.TinyDroplets = tiny
			s.TinyDropletMisses = misses
		}
	}
}

type PerformanceAttributes struct {
	Difficulty Attributes

	Total float64
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
