package preprocessing

const maxRepetitionInterval = 16

// MonoStreak is a run of consecutive notes of one colour
type MonoStreak struct {
	// Objects holds difficulty object indices
	Objects []int
	HitType HitType

	Parent int
	Index  int
}

func (m *MonoStreak) RunLength() int {
	return len(m.Objects)
}

func (m *MonoStreak) First() int {
	return m.Objects[0]
}

func (m *MonoStreak) Last() int {
	return m.Objects[len(m.Objects)-1]
}

// AlternatingMonoPattern is a run of mono streaks of equal length, alternating colour
type AlternatingMonoPattern struct {
	MonoStreaks []int

	Parent int
	Index  int
}

// RepeatingHitPatterns groups alternating mono patterns that repeat with a period of two
type RepeatingHitPatterns struct {
	AlternatingMonoPatterns []int

	// Previous is the pattern before this one, -1 for the first
	Previous int

	// RepetitionInterval counts patterns back to the last identical one, 17 when there is none within 16
	RepetitionInterval int
}

// ObjectColour points a difficulty object at the colour runs it belongs to, -1 for none
type ObjectColour struct {
	MonoStreak             int
	AlternatingMonoPattern int
	RepeatingHitPatterns   int
}

// ColourArena owns every colour run of a chart, runs refer to each other by index
type ColourArena struct {
	MonoStreaks             []MonoStreak
	AlternatingMonoPatterns []AlternatingMonoPattern
	RepeatingHitPatterns    []RepeatingHitPatterns
}

func (a *ColourArena) firstObjectOfPattern(pattern int) int {
	return a.MonoStreaks[a.AlternatingMonoPatterns[pattern].MonoStreaks[0]].First()
}

// FirstObject returns the first difficulty object of each kind of run
func (a *ColourArena) FirstObject(c ObjectColour) (monoStreak, alternating, repeating int) {
	monoStreak, alternating, repeating = -1, -1, -1

	if c.MonoStreak >= 0 {
		monoStreak = a.MonoStreaks[c.MonoStreak].First()
	}

	if c.AlternatingMonoPattern >= 0 {
		alternating = a.firstObjectOfPattern(c.AlternatingMonoPattern)
	}

	if c.RepeatingHitPatterns >= 0 {
		repeating = a.firstObjectOfPattern(a.RepeatingHitPatterns[c.RepeatingHitPatterns].AlternatingMonoPatterns[0])
	}

	return
}

func (a *ColourArena) isRepetitionOf(x, y int) bool {
	px, py := &a.AlternatingMonoPatterns[x], &a.AlternatingMonoPatterns[y]

	return a.hasIdenticalMonoLength(x, y) &&
		len(px.MonoStreaks) == len(py.MonoStreaks) &&
		a.MonoStreaks[px.MonoStreaks[0]].HitType == a.MonoStreaks[py.MonoStreaks[0]].HitType
}

func (a *ColourArena) hasIdenticalMonoLength(x, y int) bool {
	return a.MonoStreaks[a.AlternatingMonoPatterns[x].MonoStreaks[0]].RunLength() ==
		a.MonoStreaks[a.AlternatingMonoPatterns[y].MonoStreaks[0]].RunLength()
}

func (a *ColourArena) isPatternRepetitionOf(x, y int) bool {
	px, py := a.RepeatingHitPatterns[x].AlternatingMonoPatterns, a.RepeatingHitPatterns[y].AlternatingMonoPatterns

	if len(px) != len(py) {
		return false
	}

	for i := 0; i < min(len(px), 2); i++ {
		if !a.hasIdenticalMonoLength(px[i], py[i]) {
			return false
		}
	}

	return true
}

func (a *ColourArena) findRepetitionInterval(pattern int) int {
	other := a.RepeatingHitPatterns[pattern].Previous

	for interval := 1; other >= 0 && interval < maxRepetitionInterval; interval++ {
		if a.isPatternRepetitionOf(pattern, other) {
			return interval
		}

		other = a.RepeatingHitPatterns[other].Previous
	}

	return maxRepetitionInterval + 1
}

// buildColourArena encodes hit types of difficulty objects into colour runs and returns the
// runs each object belongs to. Objects that are not hits start runs of their own.
func buildColourArena(hitTypes []HitType) (*ColourArena, []ObjectColour) {
	arena := &ColourArena{}

	// mono streaks
	previousNote := -1

	for i, hitType := range hitTypes {
		last := len(arena.MonoStreaks) - 1

		if last < 0 || previousNote < 0 || hitType != hitTypes[previousNote] {
			arena.MonoStreaks = append(arena.MonoStreaks, MonoStreak{HitType: hitType})
			last++
		}

		arena.MonoStreaks[last].Objects = append(arena.MonoStreaks[last].Objects, i)

		if hitType != NoHit {
			previousNote = i
		}
	}

	// alternating mono patterns
	for i := range arena.MonoStreaks {
		if i == 0 || arena.MonoStreaks[i].RunLength() != arena.MonoStreaks[i-1].RunLength() {
			arena.AlternatingMonoPatterns = append(arena.AlternatingMonoPatterns, AlternatingMonoPattern{})
		}

		last := len(arena.AlternatingMonoPatterns) - 1
		arena.AlternatingMonoPatterns[last].MonoStreaks = append(arena.AlternatingMonoPatterns[last].MonoStreaks, i)
	}

	// repeating hit patterns
	count := len(arena.AlternatingMonoPatterns)

	isCoupled := func(i int) bool {
		return i < count-2 && arena.isRepetitionOf(i, i+2)
	}

	for i := 0; i < count; i++ {
		pattern := RepeatingHitPatterns{Previous: len(arena.RepeatingHitPatterns) - 1}

		if !isCoupled(i) {
			pattern.AlternatingMonoPatterns = append(pattern.AlternatingMonoPatterns, i)
		} else {
			for isCoupled(i) {
				pattern.AlternatingMonoPatterns = append(pattern.AlternatingMonoPatterns, i)
				i++
			}

			pattern.AlternatingMonoPatterns = append(pattern.AlternatingMonoPatterns, i, i+1)
			i++
		}

		arena.RepeatingHitPatterns = append(arena.RepeatingHitPatterns, pattern)
	}

	for i := range arena.RepeatingHitPatterns {
		arena.RepeatingHitPatterns[i].RepetitionInterval = arena.findRepetitionInterval(i)
	}

	// assign parents and indices
	colours := make([]ObjectColour, len(hitTypes))
	for i := range colours {
		colours[i] = ObjectColour{-1, -1, -1}
	}

	for r, repeating := range arena.RepeatingHitPatterns {
		for i, a := range repeating.AlternatingMonoPatterns {
			alternating := &arena.AlternatingMonoPatterns[a]
			alternating.Parent = r
			alternating.Index = i

			for j, m := range alternating.MonoStreaks {
				streak := &arena.MonoStreaks[m]
				streak.Parent = a
				streak.Index = j

				for _, o := range streak.Objects {
					colours[o] = ObjectColour{MonoStreak: m, AlternatingMonoPattern: a, RepeatingHitPatterns: r}
				}
			}
		}
	}

	return arena, colours
}
