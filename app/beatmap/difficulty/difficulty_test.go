package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMods(t *testing.T) {
	mods, err := ParseMods("HDDT")
	require.NoError(t, err)
	assert.Equal(t, Hidden|DoubleTime, mods)
	assert.Equal(t, "HDDT", mods.String())

	mods, err = ParseMods("nc,hr")
	require.NoError(t, err)
	assert.True(t, mods.Active(DoubleTime))
	assert.Equal(t, "HRNC", mods.String())

	mods, err = ParseMods("NM")
	require.NoError(t, err)
	assert.Equal(t, None, mods)

	_, err = ParseMods("XX")
	assert.ErrorIs(t, err, ErrUnknownMod)

	_, err = ParseMods("HDD")
	assert.ErrorIs(t, err, ErrUnknownMod)
}

func TestClockRate(t *testing.T) {
	assert.Equal(t, 1.5, DoubleTime.ClockRate())
	assert.Equal(t, 0.75, HalfTime.ClockRate())
	assert.Equal(t, 1.0, None.ClockRate())
	assert.Equal(t, ReflectVertical, HardRock.Reflection())
	assert.Equal(t, ReflectNone, Hidden.Reflection())
}

func TestDifficultyMods(t *testing.T) {
	diff := NewDifficulty(5, 4, 8, 9)

	assert.Equal(t, 1.0, diff.Speed)
	assert.InDelta(t, 600.0, diff.PreemptU, 1e-9)
	assert.InDelta(t, 32.0, diff.Hit300U, 1e-9)
	assert.InDelta(t, 8.0, diff.ODReal, 1e-9)

	diff.SetMods(HardRock | DoubleTime)

	assert.Equal(t, 1.5, diff.Speed)
	assert.InDelta(t, 10.0, diff.AR, 1e-9)
	assert.InDelta(t, 5.2, diff.CS, 1e-9)
	assert.InDelta(t, 300.0, diff.Preempt, 1e-9)
	assert.InDelta(t, 11.0, diff.ARReal, 1e-9)

	diff.SetMods(Easy)
	assert.InDelta(t, 4.5, diff.AR, 1e-9)
}

func TestCustomSpeedIsClamped(t *testing.T) {
	diff := NewDifficulty(5, 5, 5, 5)

	diff.SetCustomSpeed(1000)
	assert.Equal(t, MaxClockRate, diff.Speed)

	diff.SetCustomSpeed(0.0001)
	assert.Equal(t, MinClockRate, diff.Speed)
}

func TestTake(t *testing.T) {
	diff := NewDifficulty(5, 5, 5, 5)
	assert.Equal(t, 10, diff.Take(10))

	diff.PassedObjects = 3
	assert.Equal(t, 3, diff.Take(10))

	diff.PassedObjects = 30
	assert.Equal(t, 10, diff.Take(10))
}
