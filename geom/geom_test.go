package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	t.Parallel()

	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: -2, Z: 1}

	assert.Equal(t, Point{X: 5, Y: 0, Z: 4}, a.Add(b))
	assert.Equal(t, Point{X: -3, Y: 4, Z: 2}, a.Sub(b))
}

func TestPointDistIsPlanar(t *testing.T) {
	t.Parallel()

	a := Point{X: 0, Y: 0, Z: 10}
	b := Point{X: 3, Y: 4, Z: -10}
	// Z must not contribute.
	assert.InDelta(t, 5.0, a.Dist(b), 1e-12)
}

func TestIdentityQuaternion(t *testing.T) {
	t.Parallel()

	q := Identity()
	assert.Equal(t, Quaternion{W: 1}, q)
}

func TestPathAccessors(t *testing.T) {
	t.Parallel()

	var empty Path
	assert.Equal(t, 0, empty.Len())
	assert.Zero(t, empty.First())
	assert.Zero(t, empty.Last())

	p := Path{Waypoints: []Pose{
		{Point: Point{X: 1}},
		{Point: Point{X: 2}},
		{Point: Point{X: 3}},
	}}
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 1.0, p.First().Point.X)
	assert.Equal(t, 3.0, p.Last().Point.X)
}
