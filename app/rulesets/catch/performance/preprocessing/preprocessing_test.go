package preprocessing

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fruit struct {
	time float64
	x    float32
}

func fruits(list ...fruit) *beatmap.Beatmap {
	b := beatmap.NewBeatmap(beatmap.ModeCatch)

	for _, f := range list {
		b.HitObjects = append(b.HitObjects, objects.NewCircle(f.time, vector.NewVec2f(f.x, 192)))
	}

	return b
}

func TestLegacyRandom(t *testing.T) {
	r := NewLegacyRandom(1337)

	assert.Equal(t, uint32(274941776), r.NextUInt())
	assert.Equal(t, int32(514112300), r.Next())
	assert.InDelta(t, 938046240.0/(1<<31), r.NextDouble(), 1e-15)
}

func TestLegacyRandomBools(t *testing.T) {
	r := NewLegacyRandom(1337)

	bools := make([]bool, 6)
	for i := range bools {
		bools[i] = r.NextBool()
	}

	assert.Equal(t, []bool{false, false, false, false, true, false}, bools)

	// the buffer was filled once
	assert.Equal(t, int32(514112300), r.Next())
}

func TestCatchWidth(t *testing.T) {
	assert.InDelta(t, 85.4, CatchWidth(5), 1e-4)
	assert.Less(t, CatchWidth(7), CatchWidth(5))
}

func TestCatcherWidthSkipsCatchRange(t *testing.T) {
	for _, cs := range []float32{0, 2.5, 4, 5, 6.5, 10} {
		assert.Equal(t, float32(CatcherSize)*mutils.Abs(1-0.7*(cs-5)/5), CatcherWidth(cs), "cs %v", cs)
	}

	assert.Equal(t, float32(106.75), CatcherWidth(5))
}

func TestConvertFruits(t *testing.T) {
	b := fruits(fruit{300, 150}, fruit{0, 100})

	palpable, count := ConvertObjects(b, false, 5, math.MaxInt)

	require.Len(t, palpable, 2)
	assert.Equal(t, 0.0, palpable[0].StartTime)
	assert.Equal(t, 2, count.Fruits)
	assert.Zero(t, count.Droplets)
}

func TestConvertJuiceStream(t *testing.T) {
	b := beatmap.NewBeatmap(beatmap.ModeCatch)
	b.HitObjects = append(b.HitObjects,
		objects.NewSlider(0, vector.NewVec2f(100, 192), []vector.Vector2f{{X: 0, Y: 0}, {X: 200, Y: 0}}, 200, 1),
		objects.NewSpinner(2000, 3000),
	)
	b.PrepareSliders()

	palpable, count := ConvertObjects(b, false, 5, math.MaxInt)

	require.Len(t, palpable, 3)
	assert.True(t, palpable[1].Droplet)
	assert.InDelta(t, 1000.0, palpable[1].StartTime, 1e-6)
	assert.InDelta(t, 240.0, palpable[1].X, 1e-3)
	assert.InDelta(t, 300.0, palpable[2].X, 1e-3)

	assert.Equal(t, 2, count.Fruits)
	assert.Equal(t, 1, count.Droplets)
	assert.Equal(t, 18, count.TinyDroplets)
}

func TestConvertTake(t *testing.T) {
	b := fruits(fruit{0, 100}, fruit{300, 150}, fruit{600, 200})

	palpable, count := ConvertObjects(b, false, 5, 2)

	assert.Len(t, palpable, 3)
	assert.Equal(t, 2, count.Fruits)
}

func TestHardRockOffsets(t *testing.T) {
	b := fruits(fruit{0, 100}, fruit{300, 150}, fruit{2000, 150})

	palpable, _ := ConvertObjects(b, true, 5, math.MaxInt)

	assert.Equal(t, float32(100), palpable[0].X)
	assert.Equal(t, float32(200), palpable[1].X)
	assert.Equal(t, float32(150), palpable[2].X)
}

func TestHardRockRandomOffset(t *testing.T) {
	b := fruits(fruit{0, 100}, fruit{400, 100})

	palpable, _ := ConvertObjects(b, true, 5, math.MaxInt)

	assert.Equal(t, float32(80), palpable[1].X)
}

func TestHyperDash(t *testing.T) {
	palpable := []PalpableObject{
		{StartTime: 0, X: 0},
		{StartTime: 100, X: 512},
		{StartTime: 600, X: 462},
	}

	InitialiseHyperDash(palpable, CatchWidth(5)/2/AllowedCatchRange)

	assert.True(t, palpable[0].HyperDash)
	assert.Zero(t, palpable[0].DistanceToHyperDash)

	assert.False(t, palpable[1].HyperDash)
	assert.InDelta(t, 500-1000.0/60/4-50+53.375, palpable[1].DistanceToHyperDash, 1e-3)

	assert.False(t, palpable[2].HyperDash)
}
