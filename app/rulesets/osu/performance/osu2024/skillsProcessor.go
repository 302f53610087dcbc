package osu2024

import (
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/skills"
)

type SkillsProcessor struct {
	Aim               *skills.AimSkill
	AimWithoutSliders *skills.AimSkill
	Speed             *skills.SpeedSkill
	Flashlight        *skills.Flashlight

	// skipIrrelevantToStarRating leaves out skills that only feed the slider factor
	skipIrrelevantToStarRating bool
}

func NewSkillsProcessor(d *difficulty.Difficulty, stepCalc bool, skipIrrelevantToStarRating bool) *SkillsProcessor {
	return &SkillsProcessor{
		Aim:                        skills.NewAimSkill(d, true, stepCalc),
		AimWithoutSliders:          skills.NewAimSkill(d, false, stepCalc),
		Speed:                      skills.NewSpeedSkill(d, stepCalc),
		Flashlight:                 skills.NewFlashlightSkill(d),
		skipIrrelevantToStarRating: skipIrrelevantToStarRating,
	}
}

func (skills *SkillsProcessor) Process(current *preprocessing.DifficultyObject) {
	skills.Aim.Process(current)
	skills.Speed.Process(current)
	skills.Flashlight.Process(current)

	if !skills.skipIrrelevantToStarRating {
		skills.AimWithoutSliders.Process(current)
	}
}
