package evaluators

import (
	"math"
	"testing"

	"github.com/Givikap120/strainarchive/app/beatmap/difficulty"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/app/rulesets/osu/performance/osu2024/preprocessing"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	time float64
	x, y float32
}

// diffObjects uses cs 5 and od 8, the radius is 32 and the 300 window 64ms wide
func diffObjects(t *testing.T, points ...point) []*preprocessing.DifficultyObject {
	t.Helper()

	hitObjects := make([]objects.IHitObject, 0, len(points))
	for _, p := range points {
		hitObjects = append(hitObjects, objects.NewCircle(p.time, vector.NewVec2f(p.x, p.y)))
	}

	result := preprocessing.CreateDifficultyObjects(hitObjects, difficulty.NewDifficulty(5, 5, 8, 9))
	require.Len(t, result, len(points)-1)

	return result
}

// normalized length of a 100 osu!pixel jump
const hundred = 100 * preprocessing.NormalizedRadius / 32.01312

func TestAimNeedsTwoPreviousObjects(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{100, 300, 100}, point{200, 100, 100})

	assert.Zero(t, EvaluateAim(objs[0], true))
	assert.Zero(t, EvaluateAim(objs[1], true))
}

func TestAimEvenJumps(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{100, 200, 100}, point{200, 300, 100}, point{300, 400, 100})

	// velocity is unchanged and the first angle is unknown, only the raw velocity is left
	assert.InDelta(t, hundred/100, EvaluateAim(objs[2], true), 1e-4)
	assert.InDelta(t, hundred/100, EvaluateAim(objs[2], false), 1e-4)
}

func TestAimVelocityChange(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{100, 200, 100}, point{200, 300, 100}, point{300, 500, 100})

	currVelocity := 2 * hundred / 100
	prevVelocity := hundred / 100

	// sin(pi/4)^2 of the velocity ratio times the 125/strainTime overlap cap
	distRatio := math.Pow(math.Sin(math.Pi/2*(currVelocity-prevVelocity)/currVelocity), 2)
	velocityChangeBonus := min(1.25, currVelocity-prevVelocity) * distRatio

	want := currVelocity + velocityChangeBonus*velocityChangeMultiplier

	assert.InDelta(t, 0.5, distRatio, 1e-9)
	assert.InDelta(t, want, EvaluateAim(objs[2], true), 1e-4)
	assert.InDelta(t, 3.59247, EvaluateAim(objs[2], true), 1e-4)
}

func TestSpeedSlowStream(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{100, 100, 100})

	// no speed bonus above 75ms, no distance bonus when stacked
	assert.InDelta(t, 10.0, EvaluateSpeed(objs[0]), 1e-9)
}

func TestSpeedFastStream(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{50, 100, 100})

	// 50ms is below 0.92 of the 300 window, it gets stretched to the cap
	strainTime := 50 / 0.92
	want := (1 + 0.75*math.Pow((75-strainTime)/40, 2)) * 1000 / strainTime

	assert.InDelta(t, want, EvaluateSpeed(objs[0]), 1e-9)
	assert.InDelta(t, 22.07867, EvaluateSpeed(objs[0]), 1e-4)
}

func TestSpeedDistanceBonusCaps(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{100, 400, 100})

	assert.InDelta(t, (1+distanceMultiplier)*10, EvaluateSpeed(objs[0]), 1e-9)
}

func TestRhythmEven(t *testing.T) {
	objs := diffObjects(t, point{0, 100, 100}, point{200, 100, 100}, point{400, 100, 100}, point{600, 100, 100}, point{800, 100, 100}, point{1000, 100, 100})

	for _, o := range objs {
		assert.Equal(t, 1.0, EvaluateRhythm(o))
	}
}

func TestRhythmSingleSpeedUp(t *testing.T) {
	// 200 200 100 200 200, one island of size 1 between two slow gaps
	objs := diffObjects(t, point{0, 100, 100}, point{200, 100, 100}, point{400, 100, 100}, point{500, 100, 100}, point{700, 100, 100}, point{900, 100, 100})

	// the island closes at the 4th object, decayed by object count to 3/4
	complexity := 0.75 * math.Sqrt(4+1) / 2 * math.Sqrt(4+0) / 2
	want := math.Sqrt(4+complexity*rhythmMultiplier) / 2

	assert.InDelta(t, want, EvaluateRhythm(objs[4]), 1e-9)
	assert.InDelta(t, 1.07574, EvaluateRhythm(objs[4]), 1e-5)
}
