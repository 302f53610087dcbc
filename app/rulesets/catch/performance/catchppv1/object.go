package catchppv1

import (
	"github.com/Givikap120/strainarchive/app/beatmap"
	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/mutils"
)

const legacyLastTickOffset float32 = 36

type catchObject struct {
	X    float32
	Time float32

	HyperDash bool
	HyperDist float32
}

// initHyperDash works like the shared hyper dash pass but keeps stable's float32 times
func (o *catchObject) initHyperDash(halfCatcherWidth float32, next *catchObject, lastDirection *int, lastExcess *float32) {
	direction := -1
	if next.X > o.X {
		direction = 1
	}

	timeToNext := next.Time - o.Time - 1000.0/60/4

	distToNext := mutils.Abs(next.X - o.X)
	if *lastDirection == direction {
		distToNext -= *lastExcess
	} else {
		distToNext -= halfCatcherWidth
	}

	distToHyper := timeToNext - distToNext

	if distToHyper < 0 {
		o.HyperDash = true
		*lastExcess = halfCatcherWidth
	} else {
		o.HyperDist = distToHyper
		*lastExcess = mutils.Clamp(distToHyper, 0, halfCatcherWidth)
	}

	*lastDirection = direction
}

type counts struct {
	fruits, droplets, tinyDroplets int
}

// juiceBuilder lays out the first take objects in chart order. Repeat spans reuse the ticks of
// the first span together with their times, so objects are not time sorted.
type juiceBuilder struct {
	bMap     *beatmap.Beatmap
	hardRock bool

	hasLastPosition bool
	lastPosition    float32
	lastTime        float32

	counts  counts
	objects []catchObject
}

func buildObjects(bMap *beatmap.Beatmap, hardRock bool, take int) ([]catchObject, counts) {
	b := &juiceBuilder{bMap: bMap, hardRock: hardRock}

	for _, o := range bMap.HitObjects[:take] {
		switch o := o.(type) {
		case *objects.Circle:
			b.addFruit(o)
		case *objects.Slider:
			b.addJuice(o)
		}
	}

	return b.objects, b.counts
}

func (b *juiceBuilder) addFruit(c *objects.Circle) {
	x, t := c.StartPosition.X, float32(c.StartTime)

	if b.hardRock {
		x = b.hardRockOffset(x, t)
	}

	b.objects = append(b.objects, catchObject{X: x, Time: t})
	b.counts.fruits++
}

// hardRockOffset moves fruits further apart when they are close in time, equal positions stay
func (b *juiceBuilder) hardRockOffset(x, t float32) float32 {
	if !b.hasLastPosition || t-b.lastTime > 1000 {
		b.hasLastPosition = true
		b.lastPosition, b.lastTime = x, t

		return x
	}

	diff := x - b.lastPosition
	if diff == 0 {
		return x
	}

	if mutils.Abs(diff) < (t-b.lastTime)/3 {
		switch {
		case diff > 0 && x+diff < objects.PlayfieldWidth:
			x += diff
		case diff < 0 && x+diff > 0:
			x += diff
		}
	}

	b.lastPosition, b.lastTime = x, t

	return x
}

type tick struct {
	x, time float32
}

func (b *juiceBuilder) addJuice(s *objects.Slider) {
	start := float32(s.StartTime)
	pixelLength := float32(s.PixelLength)
	spans := s.SpanCount()

	b.hasLastPosition = true
	b.lastPosition = s.StartPosition.X + s.Path.LastControlPoint().X
	b.lastTime = start

	beatLength := float32(b.bMap.BeatLengthAt(s.StartTime))
	speedMultiplier := float32(b.bMap.SliderVelocityAt(s.StartTime))
	sliderMultiplier := float32(b.bMap.SliderMultiplier)

	tickDistance := 100 * sliderMultiplier / float32(b.bMap.SliderTickRate)
	if b.bMap.Version >= 8 {
		tickDistance /= mutils.Clamp(100/speedMultiplier, 10, 1000) / 100
	}

	duration := float32(spans) * beatLength * pixelLength / (sliderMultiplier * speedMultiplier) / 100

	positionAt := func(distance float32) float32 {
		if pixelLength <= 0 {
			return s.StartPosition.X
		}

		return s.PositionAtProgress(float64(distance / pixelLength)).X
	}

	timeAdd := duration * (tickDistance / (pixelLength * float32(spans)))
	target := pixelLength - tickDistance/8

	var ticks []tick

	if tickDistance > 0 {
		for distance, i := tickDistance, 1; distance < target; distance, i = distance+tickDistance, i+1 {
			ticks = append(ticks, tick{positionAt(distance), start + timeAdd*float32(i)})
		}
	}

	b.counts.tinyDroplets += tinyDropletCount(start, timeAdd, duration, spans, ticks)

	juice := []catchObject{{X: s.StartPosition.X, Time: start}}

	appendTicks := func(reversed bool) {
		for i := range ticks {
			t := ticks[i]
			if reversed {
				t = ticks[len(ticks)-1-i]
			}

			juice = append(juice, catchObject{X: t.x, Time: t.time})
		}
	}

	appendTicks(false)

	for repeat := 1; repeat < spans; repeat++ {
		distance := float32(repeat%2) * pixelLength
		juice = append(juice, catchObject{X: positionAt(distance), Time: start + duration/float32(spans)*float32(repeat)})

		appendTicks(repeat%2 == 1)
	}

	juice = append(juice, catchObject{X: positionAt(float32(spans%2) * pixelLength), Time: start + duration})

	b.counts.fruits += 1 + spans
	b.counts.droplets += len(juice) - 1 - spans

	b.objects = append(b.objects, juice...)
}

// tinyDropletCount estimates tiny droplets from the first span, it can be off by one
func tinyDropletCount(start, timeBetweenTicks, duration float32, spans int, ticks []tick) int {
	perTick := 0
	if len(ticks) > 0 && timeBetweenTicks > 80 {
		timeBetweenTiny := shrinkDown(timeBetweenTicks)
		perTick = countIterations(timeBetweenTiny+0.001, timeBetweenTiny, timeBetweenTicks)
	}

	last := start
	if len(ticks) > 0 {
		last = ticks[len(ticks)-1].time
	}

	spanEnd := start + duration/float32(spans)

	// before each reverse
	beforeRepeat := 0
	if since := spanEnd - last; since > 80 {
		timeBetweenTiny := shrinkDown(since)
		beforeRepeat = countIterations(timeBetweenTiny, timeBetweenTiny, since)
	}

	// before the tail, which comes early by the legacy last tick offset
	beforeTail := 0
	if since := spanEnd - legacyLastTickOffset - last; since > 80 {
		timeBetweenTiny := shrinkDown(since)
		beforeTail = countIterations(timeBetweenTiny, timeBetweenTiny, since)
	}

	return perTick*len(ticks)*spans + beforeRepeat*max(spans-1, 0) + beforeTail
}

func shrinkDown(val float32) float32 {
	for val > 100 {
		val /= 2
	}

	return val
}

func countIterations(start, step, end float32) int {
	count := 0

	for ; start < end; start += step {
		count++
	}

	return count
}
