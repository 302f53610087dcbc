package beatmap

import (
	"strings"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChart = `
mode: osu
cs: 4
od: 8
ar: 9
timing_points:
  - {time: 0, beat_length: 500}
  - {time: 2000, beat_length: 250}
difficulty_points:
  - {time: 1000, slider_velocity: 2}
objects:
  - {type: circle, time: 0, x: 100, y: 100, new_combo: true}
  - {type: slider, time: 500, x: 100, y: 100, path: [[0, 0], [200, 0]], length: 200, repeats: 1}
  - {type: spinner, time: 2000, end: 3000}
`

func TestLoadChart(t *testing.T) {
	b, err := LoadChart(strings.NewReader(testChart))
	require.NoError(t, err)

	assert.Equal(t, ModeOsu, b.Mode)
	assert.Equal(t, 4.0, b.CircleSize)
	assert.Equal(t, 9.0, b.ApproachRate)
	assert.Equal(t, 1.4, b.SliderMultiplier)
	require.Len(t, b.HitObjects, 3)

	circles, sliders, spinners, holds := b.CountObjects()
	assert.Equal(t, []int{1, 1, 1, 0}, []int{circles, sliders, spinners, holds})

	s := b.HitObjects[1].(*objects.Slider)
	assert.InDelta(t, 0.28, s.Velocity, 1e-9)
	assert.Greater(t, s.EndTime, s.StartTime)
}

func TestLoadChartErrors(t *testing.T) {
	_, err := LoadChart(strings.NewReader("mode: drums\n"))
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = LoadChart(strings.NewReader("mode: osu\nobjects:\n  - {type: banana, time: 0}\n"))
	assert.ErrorIs(t, err, ErrUnknownObject)

	_, err = LoadChart(strings.NewReader("mode: osu\nobjects:\n  - {time: 10}\n  - {time: 5}\n"))
	assert.ErrorIs(t, err, ErrUnsorted)
}

func TestApproachRateFallsBackToOD(t *testing.T) {
	b, err := LoadChart(strings.NewReader("mode: taiko\nod: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, 7.0, b.ApproachRate)
}

func TestControlPointLookup(t *testing.T) {
	timing := []TimingPoint{{Time: 100, BeatLength: 300}, {Time: 500, BeatLength: 400}}

	assert.Equal(t, 300.0, TimingPointAt(timing, 0).BeatLength)
	assert.Equal(t, 300.0, TimingPointAt(timing, 100).BeatLength)
	assert.Equal(t, 300.0, TimingPointAt(timing, 499).BeatLength)
	assert.Equal(t, 400.0, TimingPointAt(timing, 500).BeatLength)
	assert.Equal(t, 400.0, TimingPointAt(timing, 9000).BeatLength)
	assert.Nil(t, TimingPointAt(nil, 0))

	diffs := []DifficultyPoint{{Time: 100, SliderVelocity: 2}}

	assert.Nil(t, DifficultyPointAt(diffs, 50))
	assert.Equal(t, 2.0, DifficultyPointAt(diffs, 100).SliderVelocity)
	assert.Equal(t, 2.0, DifficultyPointAt(diffs, 150).SliderVelocity)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("fruits")
	require.NoError(t, err)
	assert.Equal(t, ModeCatch, m)
	assert.Equal(t, "catch", m.String())
}
