package collisions

import (
	"testing"

	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func box(minX, minY, maxX, maxY float64) AABB {
	return AABB{Min: kinematic.Vector{X: minX, Y: minY}, Max: kinematic.Vector{X: maxX, Y: maxY}}
}

func TestAABB_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a    AABB
		b    AABB
		want bool
	}{
		{name: "overlapping", a: box(0, 0, 2, 2), b: box(1, 1, 3, 3), want: true},
		{name: "contained", a: box(0, 0, 4, 4), b: box(1, 1, 2, 2), want: true},
		{name: "touching edge", a: box(0, 0, 1, 1), b: box(1, 0, 2, 1), want: true},
		{name: "touching corner", a: box(0, 0, 1, 1), b: box(1, 1, 2, 2), want: true},
		{name: "separated on x", a: box(0, 0, 1, 1), b: box(1.5, 0, 2, 1), want: false},
		{name: "separated on y", a: box(0, 0, 1, 1), b: box(0, -3, 1, -2), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestAABB_Contains(t *testing.T) {
	b := box(-1, -1, 1, 1)
	assert.True(t, b.Contains(kinematic.Vector{}))
	assert.True(t, b.Contains(kinematic.Vector{X: 1, Y: -1}))
	assert.False(t, b.Contains(kinematic.Vector{X: 1.01, Y: 0}))
	assert.True(t, b.ContainsAABB(box(-0.5, -0.5, 1, 0)))
	assert.False(t, b.ContainsAABB(box(-0.5, -0.5, 2, 0)))
}

func TestAABB_TranslateAndUnion(t *testing.T) {
	b := box(0, 0, 1, 2)
	assert.Equal(t, box(3, -1, 4, 1), b.Add(kinematic.Vector{X: 3, Y: -1}))
	assert.Equal(t, box(-3, 1, -2, 3), b.Sub(kinematic.Vector{X: 3, Y: -1}))
	assert.Equal(t, box(-2, 0, 1, 5), b.Union(box(-2, 3, 0, 5)))
	assert.Equal(t, 1.0, b.Width())
	assert.Equal(t, 2.0, b.Height())
}
