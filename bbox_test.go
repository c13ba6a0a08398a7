package splinosaurus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox([]Vector[float64]{
		Vec3(1.0, -2.0, 0.0),
		Vec3(-1.0, 4.0, 0.5),
		Vec3(0.0, 0.0, 3.0),
	})

	assert.False(t, bb.Empty())
	diff(t, Vec3(-1.0, -2.0, 0.0), bb.Min())
	diff(t, Vec3(1.0, 4.0, 3.0), bb.Max())

	assert.Equal(t, 1, bb.LongestAxis())
	assert.Equal(t, 6.0, bb.AxisLength(1))
	assert.Equal(t, 0.0, bb.AxisLength(3))
}

func TestBoundingBoxDoesNotAliasPoints(t *testing.T) {
	pt := Vec2(1.0, 1.0)
	bb := new(BoundingBox[float64]).Add(pt)

	pt[0] = 5
	diff(t, Vec2(1.0, 1.0), bb.Max())
}

func TestBoundingBoxEmpty(t *testing.T) {
	var bb BoundingBox[float64]

	assert.True(t, bb.Empty())
	assert.Nil(t, bb.Min())
	assert.False(t, bb.Contains(Vec2(0.0, 0.0), 0))
	assert.False(t, bb.Intersects(NewBoundingBox([]Vector[float64]{Vec2(0.0, 0.0)}), 0))
}

func TestBoundingBoxContains(t *testing.T) {
	bb := NewBoundingBox([]Vector[float64]{Vec2(0.0, 0.0), Vec2(1.0, 1.0)})

	assert.True(t, bb.Contains(Vec2(0.5, 0.5), 0))
	assert.True(t, bb.Contains(Vec2(1.0, 0.0), 0))
	assert.False(t, bb.Contains(Vec2(1.1, 0.5), 0))
	assert.True(t, bb.Contains(Vec2(1.1, 0.5), 0.1))
	assert.True(t, bb.Contains(Vec2(1.00001, 0.5), -1))
}

func TestBoundingBoxIntersects(t *testing.T) {
	a := NewBoundingBox([]Vector[float64]{Vec2(0.0, 0.0), Vec2(1.0, 1.0)})
	b := NewBoundingBox([]Vector[float64]{Vec2(0.5, 0.5), Vec2(2.0, 2.0)})
	c := NewBoundingBox([]Vector[float64]{Vec2(3.0, 3.0), Vec2(4.0, 4.0)})

	assert.True(t, a.Intersects(b, 0))
	assert.True(t, b.Intersects(a, 0))
	assert.False(t, a.Intersects(c, 0))
	assert.True(t, a.Intersects(c, 1))
}
