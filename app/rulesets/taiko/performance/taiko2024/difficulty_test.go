package taiko2024

import (
	"strings"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/taiko/performance/api"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chart builds a taiko chart, d is a centre hit and k a rim hit
func chart(pattern string, interval float64) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeTaiko)
	b.OverallDifficulty = 6

	for i, c := range pattern {
		circle := objects.NewCircle(float64(i)*interval, vector.NewVec2f(256, 192))
		if c == 'k' {
			circle.HitSound = objects.SoundClap
		}

		b.HitObjects = append(b.HitObjects, circle)
	}

	return b
}

func TestSingleObject(t *testing.T) {
	b := chart("d", 100)

	assert.Equal(t, api.Attributes{}, NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty()))
	assert.Equal(t, api.StrainPeaks{}, NewDifficultyCalculator().CalculateStrainPeaks(b, b.NewDifficulty()))
}

func TestConvertPenalty(t *testing.T) {
	const combined, colour = 4.0, 1.5

	base := rescale(combined * 1.4)

	for stamina := 7.0; stamina <= 9.0; stamina += 0.25 {
		assert.Equal(t, base, starRating(combined, colour, stamina, false))

		expected := base * 0.925
		if stamina > 8 {
			expected *= 0.8
		}

		assert.InDelta(t, expected, starRating(combined, colour, stamina, true), 1e-12, "stamina %v", stamina)
	}
}

func TestMonoStaminaFactor(t *testing.T) {
	mono := chart(strings.Repeat("d", 200), 100)
	alternating := chart(strings.Repeat("dk", 100), 100)

	monoAttr := NewDifficultyCalculator().CalculateSingle(mono, mono.NewDifficulty())
	alternatingAttr := NewDifficultyCalculator().CalculateSingle(alternating, alternating.NewDifficulty())

	require.Greater(t, monoAttr.Stamina, 0.0)
	require.Greater(t, alternatingAttr.Stamina, 0.0)

	assert.Greater(t, monoAttr.MonoStaminaFactor, 0.5)
	assert.LessOrEqual(t, monoAttr.MonoStaminaFactor, 1.0)
	assert.Less(t, alternatingAttr.MonoStaminaFactor, 0.01)
}

func TestFasterStreamIsHarder(t *testing.T) {
	pattern := strings.Repeat("ddkdkkdk", 20)

	slow := chart(pattern, 200)
	fast := chart(pattern, 100)

	slowAttr := NewDifficultyCalculator().CalculateSingle(slow, slow.NewDifficulty())
	fastAttr := NewDifficultyCalculator().CalculateSingle(fast, fast.NewDifficulty())

	require.Greater(t, slowAttr.Total, 0.0)
	assert.Greater(t, fastAttr.Total, slowAttr.Total)
	assert.Greater(t, fastAttr.Stamina, slowAttr.Stamina)
}

func TestStrainPeaks(t *testing.T) {
	b := chart(strings.Repeat("ddkdkkdkdk", 12), 125)

	peaks := NewDifficultyCalculator().CalculateStrainPeaks(b, b.NewDifficulty())

	require.NotEmpty(t, peaks.Total)
	assert.Len(t, peaks.Rhythm, len(peaks.Total))
	assert.Len(t, peaks.Colour, len(peaks.Total))
	assert.Len(t, peaks.Stamina, len(peaks.Total))

	for i, total := range peaks.Total {
		assert.GreaterOrEqual(t, total, peaks.Stamina[i]*(1-1e-9))
	}
}

func TestHitWindows(t *testing.T) {
	b := chart("dkdk", 200)

	attr := NewDifficultyCalculator().CalculateSingle(b, b.NewDifficulty())
	assert.InDelta(t, 32, attr.GreatHitWindow, 1e-9)
	assert.InDelta(t, 74, attr.OkHitWindow, 1e-9)
}

func TestPassedHits(t *testing.T) {
	b := chart(strings.Repeat("dk", 50), 150)

	diff := b.NewDifficulty()
	diff.PassedObjects = 10

	attr := NewDifficultyCalculator().CalculateSingle(b, diff)
	assert.Equal(t, 10, attr.MaxCombo)
}

func TestOnePassedHit(t *testing.T) {
	b := chart(strings.Repeat("dk", 10), 150)

	diff := b.NewDifficulty()
	diff.PassedObjects = 1

	attr := NewDifficultyCalculator().CalculateSingle(b, diff)

	assert.Equal(t, 1, attr.ObjectCount)
	assert.Equal(t, 1, attr.MaxCombo)
	assert.Zero(t, attr.Total)
	assert.Zero(t, attr.Peak)
}
