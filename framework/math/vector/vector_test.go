package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2fDistance(t *testing.T) {
	a := NewVec2f(0, 0)
	b := NewVec2f(3, 4)

	assert.Equal(t, float32(5), a.Dst(b))
	assert.Equal(t, float32(25), a.DstSq(b))
	assert.Equal(t, NewVec2f(1.5, 2), a.Lerp(b, 0.5))
}

func TestVector2fOps(t *testing.T) {
	a := NewVec2f(1, 2)
	b := NewVec2f(3, 5)

	assert.Equal(t, NewVec2f(4, 7), a.Add(b))
	assert.Equal(t, NewVec2f(2, 3), b.Sub(a))
	assert.Equal(t, float32(13), a.Dot(b))
	assert.Equal(t, NewVec2f(2, 4), a.Scl(2))
	assert.True(t, NewVec2f(0, 0).Nor().IsZero())
}

func TestVector2dConversion(t *testing.T) {
	v := NewVec2f(0.5, 1.5).Copy64()

	assert.Equal(t, NewVec2d(0.5, 1.5), v)
	assert.Equal(t, 5.0, NewVec2d(0, 0).Dst(NewVec2d(3, 4)))
	assert.Equal(t, NewVec2f(0.5, 1.5), v.Copy32())
}
