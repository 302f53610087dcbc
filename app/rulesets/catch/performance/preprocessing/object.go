package preprocessing

import (
	"cmp"
	"slices"

	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const (
	randomSeed = 1337

	// tinyDropletThreshold is the smallest gap in ms between two slider events that gets tiny droplets
	tinyDropletThreshold = 80
)

// PalpableObject is a fruit or a droplet, anything the catcher has to move to
type PalpableObject struct {
	StartTime float64

	// X includes hard rock offsets
	X float32

	Droplet bool

	// HyperDash marks objects the catcher can only leave in time with a hyper dash
	HyperDash           bool
	DistanceToHyperDash float32
}

// ObjectCount counts objects of the first take palpable objects, tiny droplets are counted while
// any of those remain
type ObjectCount struct {
	Fruits       int
	Droplets     int
	TinyDroplets int

	take int
}

func (c *ObjectCount) fruit() {
	if c.take > 0 {
		c.take--
		c.Fruits++
	}
}

func (c *ObjectCount) droplet() {
	if c.take > 0 {
		c.take--
		c.Droplets++
	}
}

func (c *ObjectCount) tinyDroplets(n int) {
	if c.take > 0 {
		c.TinyDroplets += n
	}
}

type converter struct {
	rng      *LegacyRandom
	hardRock bool

	hasLastPosition bool
	lastPosition    float32
	lastStartTime   float64

	count   ObjectCount
	objects []PalpableObject
}

// ConvertObjects turns the chart into time sorted palpable objects with hyper dashes marked.
// Random offsets are drawn for every object in chart order so hard rock positions stay reproducible.
func ConvertObjects(bMap *beatmap.Beatmap, hardRock bool, cs float32, take int) ([]PalpableObject, ObjectCount) {
	c := &converter{
		rng:      NewLegacyRandom(randomSeed),
		hardRock: hardRock,
		count:    ObjectCount{take: take},
		objects:  make([]PalpableObject, 0, len(bMap.HitObjects)),
	}

	for _, o := range bMap.HitObjects {
		switch o := o.(type) {
		case *objects.Circle:
			c.addFruit(o.StartTime, o.StartPosition.X)
		case *objects.Slider:
			c.addJuiceStream(o)
		case *objects.Spinner:
			c.addBananaShower(o)
		}
	}

	slices.SortStableFunc(c.objects, func(a, b PalpableObject) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	InitialiseHyperDash(c.objects, CatchWidth(cs)/2/AllowedCatchRange)

	return c.objects, c.count
}

func (c *converter) addFruit(startTime float64, x float32) {
	if c.hardRock {
		x = c.hardRockOffset(startTime, x)
	}

	c.objects = append(c.objects, PalpableObject{StartTime: startTime, X: x})
	c.count.fruit()
}

func (c *converter) hardRockOffset(startTime float64, x float32) float32 {
	// A last position of exactly 0 counts as none
	if !c.hasLastPosition || c.lastPosition == 0 {
		c.hasLastPosition = true
		c.lastPosition = x
		c.lastStartTime = startTime

		return x
	}

	positionDiff := x - c.lastPosition
	timeDiff := int(startTime - c.lastStartTime)

	if timeDiff > 1000 {
		c.lastPosition = x
		c.lastStartTime = startTime

		return x
	}

	if positionDiff == 0 {
		return c.randomOffset(x, float64(timeDiff)/4)
	}

	if mutils.Abs(positionDiff) < float32(timeDiff/3) {
		x = applyOffset(x, positionDiff)
	}

	c.lastPosition = x
	c.lastStartTime = startTime

	return x
}

func (c *converter) randomOffset(x float32, maxOffset float64) float32 {
	right := c.rng.NextBool()
	offset := min(20, float32(c.rng.NextRange(0, max(0, maxOffset))))

	if right {
		if x+offset <= PlayfieldWidth {
			return x + offset
		}

		return x - offset
	}

	if x-offset >= 0 {
		return x - offset
	}

	return x + offset
}

func applyOffset(x, amount float32) float32 {
	if amount > 0 {
		if x+amount < PlayfieldWidth {
			return x + amount
		}

		return x
	}

	if x+amount > 0 {
		return x + amount
	}

	return x
}

func (c *converter) addJuiceStream(s *objects.Slider) {
	// The path end is taken from the last control point and the time from the head
	c.hasLastPosition = true
	c.lastPosition = s.StartPosition.X + s.Path.LastControlPoint().X
	c.lastStartTime = s.StartTime

	c.objects = append(c.objects, PalpableObject{StartTime: s.StartTime, X: s.StartPosition.X})
	c.count.fruit()

	lastTime := s.StartTime

	for _, n := range s.Nested {
		sinceLastTick := float64(int(n.Time) - int(lastTime))

		if sinceLastTick > tinyDropletThreshold {
			timeBetweenTiny := sinceLastTick
			for timeBetweenTiny > 100 {
				timeBetweenTiny /= 2
			}

			tiny := 0
			for t := timeBetweenTiny; t < sinceLastTick; t += timeBetweenTiny {
				c.rng.NextRange(-20, 20)
				tiny++
			}

			c.count.tinyDroplets(tiny)
		}

		lastTime = n.Time

		switch n.Kind {
		case objects.NestedTick:
			c.rng.Next()
			c.objects = append(c.objects, PalpableObject{StartTime: n.Time, X: n.Position.X, Droplet: true})
			c.count.droplet()
		case objects.NestedRepeat, objects.NestedTail:
			c.objects = append(c.objects, PalpableObject{StartTime: n.Time, X: n.Position.X})
			c.count.fruit()
		}
	}
}

// addBananaShower only advances the random sequence, bananas give no difficulty
func (c *converter) addBananaShower(s *objects.Spinner) {
	spacing := s.EndTime - s.StartTime
	for spacing > 100 {
		spacing /= 2
	}

	if spacing <= 0 {
		return
	}

	for t := s.StartTime; t <= s.EndTime; t += spacing {
		c.rng.NextDouble()
		c.rng.Next()
		c.rng.Next()
		c.rng.Next()
	}
}

// InitialiseHyperDash marks objects whose successor is out of walking and dashing reach
func InitialiseHyperDash(palpable []PalpableObject, halfCatcherWidth float32) {
	lastDirection := 0
	lastExcess := float64(halfCatcherWidth)

	for i := 0; i < len(palpable)-1; i++ {
		current, next := &palpable[i], &palpable[i+1]

		current.HyperDash = false
		current.DistanceToHyperDash = 0

		direction := -1
		if next.X > current.X {
			direction = 1
		}

		// A quarter of a frame of leniency
		timeToNext := float64(int(next.StartTime)-int(current.StartTime)) - 1000.0/60/4

		distanceToNext := float64(mutils.Abs(next.X - current.X))
		if lastDirection == direction {
			distanceToNext -= lastExcess
		} else {
			distanceToNext -= float64(halfCatcherWidth)
		}

		distanceToHyper := float32(timeToNext - distanceToNext)

		if distanceToHyper < 0 {
			current.HyperDash = true
			lastExcess = float64(halfCatcherWidth)
		} else {
			current.DistanceToHyperDash = distanceToHyper
			lastExcess = float64(mutils.Clamp(distanceToHyper, 0, halfCatcherWidth))
		}

		lastDirection = direction
	}
}
