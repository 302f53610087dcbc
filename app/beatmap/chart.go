package beatmap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Givikap120/strainarchive/app/beatmap/objects"
	"github.com/Givikap120/strainarchive/framework/math/vector"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownObject = errors.New("unknown object type")
	ErrUnsorted      = errors.New("objects are not sorted by time")
)

type chartFile struct {
	Mode    string `yaml:"mode"`
	Version int    `yaml:"version"`

	HP               *float64 `yaml:"hp"`
	CS               *float64 `yaml:"cs"`
	OD               *float64 `yaml:"od"`
	AR               *float64 `yaml:"ar"`
	SliderMultiplier *float64 `yaml:"slider_multiplier"`
	SliderTickRate   *float64 `yaml:"slider_tick_rate"`

	Convert bool `yaml:"convert"`

	TimingPoints     []TimingPoint     `yaml:"timing_points"`
	DifficultyPoints []DifficultyPoint `yaml:"difficulty_points"`

	Objects []chartObject `yaml:"objects"`
}

type chartObject struct {
	Type     string       `yaml:"type"`
	Time     float64      `yaml:"time"`
	End      float64      `yaml:"end"`
	X        float32      `yaml:"x"`
	Y        float32      `yaml:"y"`
	NewCombo bool         `yaml:"new_combo"`
	Sound    uint8        `yaml:"sound"`
	Path     [][2]float32 `yaml:"path"`
	Length   float64      `yaml:"length"`
	Repeats  int          `yaml:"repeats"`
}

// LoadChartFile reads a resolved chart from a YAML file
func LoadChartFile(path string) (*Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart: %w", err)
	}

	defer f.Close()

	b, err := LoadChart(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}

func LoadChart(r io.Reader) (*Beatmap, error) {
	var file chartFile

	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}

	mode, err := ParseMode(file.Mode)
	if err != nil {
		return nil, err
	}

	b := NewBeatmap(mode)
	b.IsConvert = file.Convert
	b.TimingPoints = file.TimingPoints
	b.DifficultyPoints = file.DifficultyPoints

	if file.Version > 0 {
		b.Version = file.Version
	}

	setIfPresent(&b.HPDrainRate, file.HP)
	setIfPresent(&b.CircleSize, file.CS)
	setIfPresent(&b.OverallDifficulty, file.OD)
	setIfPresent(&b.SliderMultiplier, file.SliderMultiplier)
	setIfPresent(&b.SliderTickRate, file.SliderTickRate)

	// Old charts have no AR, it falls back to OD
	b.ApproachRate = b.OverallDifficulty
	setIfPresent(&b.ApproachRate, file.AR)

	b.HitObjects = make([]objects.IHitObject, 0, len(file.Objects))

	for i, o := range file.Objects {
		if i > 0 && o.Time < file.Objects[i-1].Time {
			return nil, fmt.Errorf("%w: object %d at %.0fms", ErrUnsorted, i, o.Time)
		}

		obj, err := o.toHitObject()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}

		b.HitObjects = append(b.HitObjects, obj)
	}

	b.PrepareSliders()

	return b, nil
}

func (o chartObject) toHitObject() (objects.IHitObject, error) {
	pos := vector.NewVec2f(o.X, o.Y)

	var obj objects.IHitObject

	switch o.Type {
	case "circle", "":
		c := objects.NewCircle(o.Time, pos)
		c.NewCombo, c.HitSound = o.NewCombo, objects.HitSound(o.Sound)
		obj = c
	case "slider":
		path := make([]vector.Vector2f, len(o.Path))
		for i, p := range o.Path {
			path[i] = vector.NewVec2f(p[0], p[1])
		}

		s := objects.NewSlider(o.Time, pos, path, o.Length, o.Repeats)
		s.NewCombo, s.HitSound = o.NewCombo, objects.HitSound(o.Sound)
		obj = s
	case "spinner":
		s := objects.NewSpinner(o.Time, max(o.End, o.Time))
		s.NewCombo, s.HitSound = o.NewCombo, objects.HitSound(o.Sound)
		obj = s
	case "hold":
		h := objects.NewHoldNote(o.Time, max(o.End, o.Time), pos)
		h.HitSound = objects.HitSound(o.Sound)
		obj = h
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, o.Type)
	}

	return obj, nil
}

func setIfPresent(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
