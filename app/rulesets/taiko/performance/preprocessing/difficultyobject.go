package preprocessing

// DifficultyObject is a taiko object with its rhythm and colour relative to the two objects before it.
// Times are divided by clock rate.
type DifficultyObject struct {
	owner *DifficultyObjects
	Index int

	BaseObject Object
	HitType    HitType

	StartTime float64
	DeltaTime float64

	Rhythm *Rhythm
	Colour ObjectColour

	// NoteIndex and MonoIndex position a hit among all hits and among hits of its colour, zero for other objects
	NoteIndex int
	MonoIndex int
}

// DifficultyObjects owns the difficulty objects of a chart along with per-colour lookups and colour runs
type DifficultyObjects struct {
	Objects []*DifficultyObject

	notes  []*DifficultyObject
	centre []*DifficultyObject
	rim    []*DifficultyObject

	Colours *ColourArena
}

// CreateDifficultyObjects builds a difficulty object for every taiko object after the second one
// and assigns colour runs over all of them
func CreateDifficultyObjects(taikoObjects []Object, clockRate float64) *DifficultyObjects {
	list := &DifficultyObjects{
		Objects: make([]*DifficultyObject, 0, max(0, len(taikoObjects)-2)),
	}

	for i := 2; i < len(taikoObjects); i++ {
		list.add(taikoObjects[i], taikoObjects[i-1], taikoObjects[i-2], clockRate)
	}

	hitTypes := make([]HitType, len(list.Objects))
	for i, o := range list.Objects {
		hitTypes[i] = o.HitType
	}

	var colours []ObjectColour
	list.Colours, colours = buildColourArena(hitTypes)

	for i, o := range list.Objects {
		o.Colour = colours[i]
	}

	return list
}

func (l *DifficultyObjects) add(current, last, lastLast Object, clockRate float64) {
	obj := &DifficultyObject{
		owner:      l,
		Index:      len(l.Objects),
		BaseObject: current,
		HitType:    current.HitType(),
		StartTime:  current.StartTime / clockRate,
		DeltaTime:  (current.StartTime - last.StartTime) / clockRate,
	}

	obj.Rhythm = closestRhythm(obj.DeltaTime, (last.StartTime-lastLast.StartTime)/clockRate)

	switch obj.HitType {
	case Centre:
		obj.MonoIndex = len(l.centre)
		l.centre = append(l.centre, obj)
	case Rim:
		obj.MonoIndex = len(l.rim)
		l.rim = append(l.rim, obj)
	}

	if obj.HitType != NoHit {
		obj.NoteIndex = len(l.notes)
		l.notes = append(l.notes, obj)
	}

	l.Objects = append(l.Objects, obj)
}

// PassedCount returns how many taiko objects are covered when only the first hits are played,
// along with the combo of those objects
func PassedCount(taikoObjects []Object, hits int) (count, combo int) {
	for _, o := range taikoObjects {
		if combo >= hits {
			break
		}

		count++

		if o.IsHit() {
			combo++
		}
	}

	return count, combo
}

func at(list []*DifficultyObject, index int) *DifficultyObject {
	if index < 0 || index >= len(list) {
		return nil
	}

	return list[index]
}

func (o *DifficultyObject) Previous(backwardsIndex int) *DifficultyObject {
	return at(o.owner.Objects, o.Index-(backwardsIndex+1))
}

func (o *DifficultyObject) Next(forwardsIndex int) *DifficultyObject {
	return at(o.owner.Objects, o.Index+forwardsIndex+1)
}

func (o *DifficultyObject) PreviousNote(backwardsIndex int) *DifficultyObject {
	return at(o.owner.notes, o.NoteIndex-(backwardsIndex+1))
}

func (o *DifficultyObject) NextNote(forwardsIndex int) *DifficultyObject {
	return at(o.owner.notes, o.NoteIndex+forwardsIndex+1)
}

// PreviousMono returns an earlier hit of the same colour, nil for objects that are not hits
func (o *DifficultyObject) PreviousMono(backwardsIndex int) *DifficultyObject {
	switch o.HitType {
	case Centre:
		return at(o.owner.centre, o.MonoIndex-(backwardsIndex+1))
	case Rim:
		return at(o.owner.rim, o.MonoIndex-(backwardsIndex+1))
	}

	return nil
}

// MonoStreak returns the streak this object belongs to
func (o *DifficultyObject) MonoStreak() *MonoStreak {
	if o.Colour.MonoStreak < 0 {
		return nil
	}

	return &o.owner.Colours.MonoStreaks[o.Colour.MonoStreak]
}

// PreviousColourChange is the note before the first object of this object's mono streak
func (o *DifficultyObject) PreviousColourChange() *DifficultyObject {
	streak := o.MonoStreak()
	if streak == nil {
		return nil
	}

	return o.owner.Objects[streak.First()].PreviousNote(0)
}

// NextColourChange is the note after the last object of this object's mono streak
func (o *DifficultyObject) NextColourChange() *DifficultyObject {
	streak := o.MonoStreak()
	if streak == nil {
		return nil
	}

	return o.owner.Objects[streak.Last()].NextNote(0)
}

// PositionInMonoStreak returns the index of this object within its mono streak
func (o *DifficultyObject) PositionInMonoStreak() int {
	streak := o.MonoStreak()
	if streak == nil {
		return 0
	}

	for i, idx := range streak.Objects {
		if idx == o.Index {
			return i
		}
	}

	return 0
}

// Colours returns the colour runs shared by every object of the chart
func (o *DifficultyObject) Colours() *ColourArena {
	return o.owner.Colours
}
