package vector

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vector2d struct {
	X, Y float64
}

func NewVec2d(x, y float64) Vector2d {
	return Vector2d{x, y}
}

func (v Vector2d) gl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func (v Vector2d) Add(v1 Vector2d) Vector2d {
	r := v.gl().Add(v1.gl())
	return Vector2d{r[0], r[1]}
}

func (v Vector2d) Sub(v1 Vector2d) Vector2d {
	r := v.gl().Sub(v1.gl())
	return Vector2d{r[0], r[1]}
}

func (v Vector2d) Scl(s float64) Vector2d {
	r := v.gl().Mul(s)
	return Vector2d{r[0], r[1]}
}

func (v Vector2d) Dot(v1 Vector2d) float64 {
	return v.gl().Dot(v1.gl())
}

func (v Vector2d) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2d) Dst(v1 Vector2d) float64 {
	return v.Sub(v1).Len()
}

func (v Vector2d) Copy32() Vector2f {
	return Vector2f{float32(v.X), float32(v.Y)}
}
