package objects

import (
	"github.com/Givikap120/strainarchive/framework/math/vector"
)

// Path is an already flattened slider curve. Points are relative to the slider head.
// Path is trimmed or extended along its last segment to match the expected distance.
type Path struct {
	points   []vector.Vector2f
	lengths  []float64
	distance float64

	// controlEnd is the last given point, before the path is fit to the expected distance
	controlEnd vector.Vector2f
}

func NewPath(points []vector.Vector2f, expectedDistance float64) *Path {
	path := &Path{}

	if len(points) == 0 || points[0] != (vector.Vector2f{}) {
		points = append([]vector.Vector2f{{}}, points...)
	}

	path.points = points
	path.controlEnd = points[len(points)-1]
	path.lengths = make([]float64, len(points))

	for i := 1; i < len(points); i++ {
		path.lengths[i] = path.lengths[i-1] + float64(points[i].Dst(points[i-1]))
	}

	calculated := path.lengths[len(path.lengths)-1]

	if expectedDistance <= 0 {
		path.distance = calculated
		return path
	}

	path.distance = expectedDistance

	if calculated < expectedDistance && len(points) > 1 {
		last := points[len(points)-1]
		dir := last.Sub(points[len(points)-2]).Nor()

		path.points = append(path.points, last.Add(dir.Scl(float32(expectedDistance-calculated))))
		path.lengths = append(path.lengths, expectedDistance)
	}

	return path
}

// LastControlPoint returns the last point the path was built from, relative to the slider head
func (path *Path) LastControlPoint() vector.Vector2f {
	return path.controlEnd
}

func (path *Path) Distance() float64 {
	return path.distance
}

// PointAt returns the point at given progress 0..1 of the path distance
func (path *Path) PointAt(progress float64) vector.Vector2f {
	if len(path.points) == 1 {
		return path.points[0]
	}

	d := min(max(progress, 0), 1) * path.distance

	i := 1
	for i < len(path.lengths)-1 && path.lengths[i] < d {
		i++
	}

	start, end := path.lengths[i-1], path.lengths[i]
	if end-start <= 0 {
		return path.points[i]
	}

	return path.points[i-1].Lerp(path.points[i], float32((d-start)/(end-start)))
}
