package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rplpa"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
)

func TestScoreFromReplay(t *testing.T) {
	score := scoreFromReplay(&rplpa.Replay{
		PlayMode:  3,
		Count300:  900,
		Count100:  20,
		Count50:   5,
		CountGeki: 1200,
		CountKatu: 40,
		CountMiss: 3,
		Score:     912345,
		MaxCombo:  1500,
		Mods:      uint32(difficulty.Hidden | difficulty.DoubleTime),
	})

	assert.Equal(t, beatmap.ModeMania, score.Mode)
	assert.Equal(t, "HDDT", score.Mods.String())

	assert.Equal(t, 1200, score.Play.CountGeki)
	assert.Equal(t, 40, score.Play.CountKatu)
	assert.Equal(t, 3, score.Play.Misses)
	assert.Equal(t, 1500, score.Play.Combo)
	assert.Equal(t, 912345.0, score.Play.Score)
	assert.Negative(t, score.Play.Accuracy)
}

func TestLoadReplayMissing(t *testing.T) {
	_, err := loadReplay(filepath.Join(t.TempDir(), "missing.osr"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
