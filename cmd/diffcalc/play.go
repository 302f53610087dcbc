package main

import (
	"gopkg.in/yaml.v3"

	catchapi "github.com/Givikap120/strainarchive/app/rulesets/catch/performance/api"
	maniaapi "github.com/Givikap120/strainarchive/app/rulesets/mania/performance/api"
	osuapi "github.com/Givikap120/strainarchive/app/rulesets/osu/performance/api"
	taikoapi "github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
)

// Play describes a score in stable's terms. Negative values are unknown, Accuracy is in percent
// and takes precedence over hit counts when set.
type Play struct {
	Accuracy float64 `yaml:"acc"`
	Combo    int     `yaml:"combo"`

	Count300  int `yaml:"n300"`
	Count100  int `yaml:"n100"`
	Count50   int `yaml:"n50"`
	CountGeki int `yaml:"geki"`
	CountKatu int `yaml:"katu"`
	Misses    int `yaml:"misses"`

	Score float64 `yaml:"score"`
}

// NewPlay returns a full combo play without misses, everything else unknown
func NewPlay() Play {
	return Play{
		Accuracy:  -1,
		Combo:     -1,
		Count300:  -1,
		Count100:  -1,
		Count50:   -1,
		CountGeki: -1,
		CountKatu: -1,
		Score:     -1,
	}
}

// UnmarshalYAML leaves fields missing from the document unknown
func (p *Play) UnmarshalYAML(node *yaml.Node) error {
	type plain Play

	*p = NewPlay()

	return node.Decode((*plain)(p))
}

func (p *Play) hasAccuracy() bool {
	return p.Accuracy >= 0
}

func (p *Play) osuState(attrs osuapi.Attributes) osuapi.ScoreState {
	if p.hasAccuracy() {
		s := osuapi.ScoreStateFromAccuracy(p.Accuracy/100, attrs.ObjectCount, p.Misses)
		s.MaxCombo = p.Combo

		return s
	}

	return osuapi.ScoreState{
		MaxCombo:      p.Combo,
		CountGreat:    p.Count300,
		CountOk:       p.Count100,
		CountMeh:      p.Count50,
		CountMiss:     p.Misses,
		LargeTickHits: -1,
		SmallTickHits: -1,
		SliderEndHits: -1,
	}
}

func (p *Play) taikoState(attrs taikoapi.Attributes) taikoapi.ScoreState {
	if p.hasAccuracy() {
		s := taikoapi.ScoreStateFromAccuracy(p.Accuracy/100, attrs.MaxCombo, p.Misses)
		s.MaxCombo = p.Combo

		return s
	}

	return taikoapi.ScoreState{
		MaxCombo:   p.Combo,
		CountGreat: p.Count300,
		CountOk:    p.Count100,
		CountMiss:  p.Misses,
	}
}

// maniaState maps gekis to perfects and katus to goods
func (p *Play) maniaState(attrs maniaapi.Attributes) maniaapi.ScoreState {
	if p.hasAccuracy() {
		s := maniaapi.ScoreStateFromAccuracy(p.Accuracy/100, attrs.ObjectCount, p.Misses)
		s.Score = p.Score

		return s
	}

	return maniaapi.ScoreState{
		Score:        p.Score,
		CountPerfect: p.CountGeki,
		CountGreat:   p.Count300,
		CountGood:    p.CountKatu,
		CountOk:      p.Count100,
		CountMeh:     p.Count50,
		CountMiss:    p.Misses,
	}.Fill(attrs.ObjectCount)
}

// catchState maps 300s to fruits, 100s to droplets, 50s to tiny droplets and katus to missed tiny droplets
func (p *Play) catchState(attrs catchapi.Attributes) catchapi.ScoreState {
	s := catchapi.ScoreState{
		MaxCombo:          p.Combo,
		Fruits:            p.Count300,
		Droplets:          p.Count100,
		TinyDroplets:      p.Count50,
		TinyDropletMisses: p.CountKatu,
		Misses:            p.Misses,
	}

	if p.hasAccuracy() {
		return s.ScoreStateFromAccuracy(p.Accuracy/100, attrs)
	}

	return s.Fill(attrs)
}
