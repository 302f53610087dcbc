package vector

import (
	"fmt"

	"github.com/Givikap120/strainarchive/framework/math/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vector2f is a playfield position in osu!pixels
type Vector2f struct {
	X, Y float32
}

func NewVec2f(x, y float32) Vector2f {
	return Vector2f{x, y}
}

func (v Vector2f) gl() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

func fromGL(v mgl32.Vec2) Vector2f {
	return Vector2f{v[0], v[1]}
}

func (v Vector2f) Add(v1 Vector2f) Vector2f {
	return fromGL(v.gl().Add(v1.gl()))
}

func (v Vector2f) Sub(v1 Vector2f) Vector2f {
	return fromGL(v.gl().Sub(v1.gl()))
}

func (v Vector2f) Scl(s float32) Vector2f {
	return fromGL(v.gl().Mul(s))
}

func (v Vector2f) Dot(v1 Vector2f) float32 {
	return v.gl().Dot(v1.gl())
}

// LenSq returns the squared length
func (v Vector2f) LenSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Len keeps the square root in single precision so legacy calculations stay float32 all the way
func (v Vector2f) Len() float32 {
	return math32.Sqrt(v.LenSq())
}

func (v Vector2f) Dst(v1 Vector2f) float32 {
	return v.Sub(v1).Len()
}

func (v Vector2f) DstSq(v1 Vector2f) float32 {
	return v.Sub(v1).LenSq()
}

func (v Vector2f) Lerp(v1 Vector2f, t float32) Vector2f {
	return v.Add(v1.Sub(v).Scl(t))
}

// Nor returns the normalized vector, or zero vector if length is 0
func (v Vector2f) Nor() Vector2f {
	if v.LenSq() == 0 {
		return v
	}

	return fromGL(v.gl().Normalize())
}

func (v Vector2f) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector2f) Copy64() Vector2d {
	return Vector2d{float64(v.X), float64(v.Y)}
}

func (v Vector2f) String() string {
	return fmt.Sprintf("%.2fx%.2f", v.X, v.Y)
}
