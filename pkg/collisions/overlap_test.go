package collisions

import (
	"fmt"
	"math"
	"testing"

	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlap_Scenarios(t *testing.T) {
	square := Rectangle{HalfWidth: 1, HalfHeight: 1}
	tests := []struct {
		name string
		a    *Object
		b    *Object
		want bool
	}{
		{
			name: "circles overlapping",
			a:    NewObject(Circle{Radius: 1}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 1}, vec(1.5, 0), 0),
			want: true,
		},
		{
			name: "circles apart",
			a:    NewObject(Circle{Radius: 1}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 1}, vec(3, 0), 0),
			want: false,
		},
		{
			name: "rectangle and circle overlapping",
			a:    NewObject(square, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(1.4, 0), 0),
			want: true,
		},
		{
			name: "rectangle and circle apart",
			a:    NewObject(square, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(1.6, 0), 0),
			want: false,
		},
		{
			name: "squares touching",
			a:    NewObject(square, vec(0, 0), 0),
			b:    NewObject(square, vec(2, 0), 0),
			want: true,
		},
		{
			name: "squares apart",
			a:    NewObject(square, vec(0, 0), 0),
			b:    NewObject(square, vec(2.01, 0), 0),
			want: false,
		},
		{
			name: "circle past polygon corner",
			a:    NewObject(ConvexPolygon{Points: []kinematic.Vector{vec(-1, -1), vec(1, -1), vec(1, 1), vec(-1, 1)}}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(1.4, 1.4), 0),
			want: false,
		},
		{
			name: "circle on polygon corner",
			a:    NewObject(ConvexPolygon{Points: []kinematic.Vector{vec(-1, -1), vec(1, -1), vec(1, 1), vec(-1, 1)}}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(1.3, 1.3), 0),
			want: true,
		},
		{
			name: "circle past rectangle corner",
			a:    NewObject(square, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(1.4, 1.4), 0),
			want: false,
		},
		{
			name: "capsule and circle overlapping",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(2, 0.9), 0),
			want: true,
		},
		{
			name: "capsule and circle apart",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 0.5}, vec(2, 1.1), 0),
			want: false,
		},
		{
			name: "rotated capsule and circle overlapping",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(2, 0)}, vec(0, 0), kinematic.Up),
			b:    NewObject(Circle{Radius: 0.2}, vec(0, 1.5), 0),
			want: true,
		},
		{
			name: "rotated capsule and circle apart",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(2, 0)}, vec(0, 0), kinematic.Up),
			b:    NewObject(Circle{Radius: 0.2}, vec(1.5, 0), 0),
			want: false,
		},
		{
			name: "parallel capsules overlapping",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(1, 0.9), 0),
			want: true,
		},
		{
			name: "parallel capsules apart",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(1, 1.1), 0),
			want: false,
		},
		{
			name: "capsule and rectangle overlapping",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(square, vec(2, 1.4), 0),
			want: true,
		},
		{
			name: "capsule and rectangle apart",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			b:    NewObject(square, vec(2, 1.6), 0),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Overlap(tt.a, tt.b, false)
			assert.Equal(t, tt.want, got)
			got, _ = Overlap(tt.a, tt.b, true)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlap_Translation(t *testing.T) {
	tests := []struct {
		name string
		a    *Object
		b    *Object
		want kinematic.Vector
	}{
		{
			name: "circles",
			a:    NewObject(Circle{Radius: 1}, vec(0, 0), 0),
			b:    NewObject(Circle{Radius: 1}, vec(1.5, 0), 0),
			want: vec(-0.5, 0),
		},
		{
			name: "squares",
			a:    NewObject(Rectangle{HalfWidth: 1, HalfHeight: 1}, vec(0, 0), 0),
			b:    NewObject(Rectangle{HalfWidth: 1, HalfHeight: 1}, vec(1.5, 0), 0),
			want: vec(-0.5, 0),
		},
		{
			name: "circle above box",
			a:    NewObject(Circle{Radius: 1}, vec(0, 1.75), 0),
			b:    NewObject(Rectangle{HalfWidth: 2, HalfHeight: 1}, vec(0, 0), 0),
			want: vec(0, 0.25),
		},
		{
			name: "circle inside box",
			a:    NewObject(Circle{Radius: 0.5}, vec(1.5, 0.2), 0),
			b:    NewObject(Rectangle{HalfWidth: 2, HalfHeight: 1}, vec(0, 0), 0),
			want: vec(1, 0),
		},
		{
			name: "capsules stacked",
			a:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0.75), 0),
			b:    NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(0, 0), 0),
			want: vec(0, 0.25),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, got := Overlap(tt.a, tt.b, true)
			require.True(t, ok)
			assertVectorInDelta(t, tt.want, got)

			ok, got = Overlap(tt.b, tt.a, true)
			require.True(t, ok)
			assertVectorInDelta(t, tt.want.Negate(), got)

			_, got = Overlap(tt.a, tt.b, false)
			assert.Equal(t, kinematic.Vector{}, got)
		})
	}
}

func TestOverlap_ZeroLengthCapsules(t *testing.T) {
	point := func(r float64, position kinematic.Vector) *Object {
		return NewObject(Capsule{Radius: r, Start: vec(0, 0), End: vec(0, 0)}, position, 0.7)
	}
	segment := NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(-2, 0), 0)
	square := NewObject(Rectangle{HalfWidth: 1, HalfHeight: 1}, vec(0, 0), 0)
	diamond := NewObject(Rectangle{HalfWidth: 1, HalfHeight: 1}, vec(0, 0), math.Pi/4)

	tests := []struct {
		name string
		a    *Object
		b    *Object
		want bool
	}{
		{name: "points diagonally apart", a: point(1, vec(0, 0)), b: point(1, vec(1.9, 1.9)), want: false},
		{name: "points overlapping", a: point(1, vec(0, 0)), b: point(1, vec(1.5, 0)), want: true},
		{name: "point past a segment end", a: point(1, vec(3.1, 1.1)), b: segment, want: false},
		{name: "point near a segment end", a: point(1, vec(2.9, 0.9)), b: segment, want: true},
		{name: "point off a square corner", a: point(0.5, vec(1.4, 1.4)), b: square, want: false},
		{name: "point on a square corner", a: point(0.5, vec(1.2, 1.2)), b: square, want: true},
		{name: "point off a diamond edge", a: point(0.5, vec(1.2, 1.2)), b: diamond, want: false},
		{name: "point on a diamond tip", a: point(0.5, vec(1.6, 0)), b: diamond, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.a.AABB().Intersects(tt.b.AABB()))

			got, _ := Overlap(tt.a, tt.b, false)
			assert.Equal(t, tt.want, got)
			got, _ = Overlap(tt.b, tt.a, false)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("translation", func(t *testing.T) {
		a := point(1, vec(0, 0))
		b := point(1, vec(1.5, 0))
		ok, got := Overlap(a, b, true)
		require.True(t, ok)
		assertVectorInDelta(t, vec(-0.5, 0), got)

		above := NewObject(Capsule{Radius: 0.5, Start: vec(0, 0), End: vec(4, 0)}, vec(-2, 1.25), 0)
		ok, got = Overlap(a, above, true)
		require.True(t, ok)
		assertVectorInDelta(t, vec(0, -0.25), got)

		ok, got = Overlap(above, a, true)
		require.True(t, ok)
		assertVectorInDelta(t, vec(0, 0.25), got)
	})
}

func TestOverlap_PolygonsAwayFromOrigin(t *testing.T) {
	diamond := Rectangle{HalfWidth: 1, HalfHeight: 1}

	a := NewObject(diamond, vec(10, 10), math.Pi/4)
	b := NewObject(diamond, vec(10, 10), math.Pi/4)
	got, _ := Overlap(a, b, false)
	assert.True(t, got)

	// AABBs still intersect here, only the diagonal axes separate them
	b.SetPosition(vec(11.6, 11.6))
	require.True(t, a.AABB().Intersects(b.AABB()))
	got, _ = Overlap(a, b, false)
	assert.False(t, got)

	b.SetPosition(vec(11.2, 11.2))
	got, _ = Overlap(a, b, false)
	assert.True(t, got)
}

func TestOverlap_CompoundSumsTranslations(t *testing.T) {
	compound := NewObject(Compound{Children: []CompoundChild{
		{Shape: Circle{Radius: 1}, Offset: vec(-1, 0)},
		{Shape: Circle{Radius: 1}, Offset: vec(1, 0)},
	}}, vec(0, 0), 0)
	floor := NewObject(Rectangle{HalfWidth: 3, HalfHeight: 0.5}, vec(0, 1.2), 0)

	ok, got := Overlap(compound, floor, true)
	require.True(t, ok)
	assertVectorInDelta(t, vec(0, -0.6), got)

	ok, got = Overlap(floor, compound, true)
	require.True(t, ok)
	assertVectorInDelta(t, vec(0, 0.6), got)

	ok, got = Overlap(compound, floor, false)
	assert.True(t, ok)
	assert.Equal(t, kinematic.Vector{}, got)

	// only the right circle reaches this box
	box := NewObject(Rectangle{HalfWidth: 0.5, HalfHeight: 0.5}, vec(2.2, 0), 0)
	ok, got = Overlap(compound, box, true)
	require.True(t, ok)
	assertVectorInDelta(t, vec(-0.3, 0), got)
}

func TestOverlap_NestedAndRotatedCompounds(t *testing.T) {
	inner := Compound{Children: []CompoundChild{{Shape: Circle{Radius: 0.5}, Offset: vec(1, 0)}}}
	outer := NewObject(Compound{Children: []CompoundChild{{Shape: inner, Offset: vec(2, 0)}}}, vec(10, 0), 0)

	got := outer.AABB()
	assertVectorInDelta(t, vec(12.5, -0.5), got.Min)
	assertVectorInDelta(t, vec(13.5, 0.5), got.Max)

	ok, _ := Overlap(outer, NewObject(Circle{Radius: 0.5}, vec(13.8, 0), 0), false)
	assert.True(t, ok)
	ok, _ = Overlap(outer, NewObject(Circle{Radius: 0.5}, vec(14.2, 0), 0), false)
	assert.False(t, ok)

	rotated := NewObject(Compound{Children: []CompoundChild{{Shape: Circle{Radius: 0.5}, Offset: vec(2, 0)}}}, vec(0, 0), kinematic.Up)
	ok, _ = Overlap(rotated, NewObject(Circle{Radius: 0.5}, vec(0, 2.8), 0), false)
	assert.True(t, ok)
	ok, _ = Overlap(rotated, NewObject(Circle{Radius: 0.5}, vec(2, 0), 0), false)
	assert.False(t, ok)

	// nested compounds on both sides
	ok, _ = Overlap(outer, NewObject(Compound{Children: []CompoundChild{{Shape: inner}}}, vec(12.3, 0.2), 0), false)
	assert.True(t, ok)
}

// testShapes covers every kind and every narrow-phase routine.
func testShapes() []struct {
	name     string
	shape    Shape
	rotation kinematic.Radians
} {
	return []struct {
		name     string
		shape    Shape
		rotation kinematic.Radians
	}{
		{name: "circle", shape: Circle{Radius: 0.8}},
		{name: "rectangle", shape: Rectangle{HalfWidth: 1.2, HalfHeight: 0.6}},
		{name: "rotated rectangle", shape: Rectangle{HalfWidth: 1.2, HalfHeight: 0.6}, rotation: 0.3},
		{name: "triangle", shape: ConvexPolygon{Points: []kinematic.Vector{vec(-1, -0.5), vec(1.1, -0.4), vec(0.2, 1.3)}}, rotation: 1.1},
		{name: "capsule", shape: Capsule{Radius: 0.4, Start: vec(-1, 0), End: vec(1.3, 0.2)}, rotation: -0.7},
		{name: "compound", shape: Compound{Children: []CompoundChild{
			{Shape: Circle{Radius: 0.5}, Offset: vec(-0.9, 0.1)},
			{Shape: Rectangle{HalfWidth: 0.4, HalfHeight: 0.7}, Offset: vec(0.6, -0.2)},
		}}, rotation: 0.5},
		{name: "l shape", shape: ConcavePolygon([]kinematic.Vector{
			vec(0, 0), vec(0, 2), vec(1, 2), vec(1, 1), vec(2, 1), vec(2, 0),
		}, Clockwise), rotation: 2.2},
	}
}

var testOffsets = []kinematic.Vector{
	vec(-2.3, -1.1), vec(-2.3, 0.3), vec(-2.3, 1.65),
	vec(-0.7, -1.1), vec(-0.7, 0.3), vec(-0.7, 1.65),
	vec(0.45, -1.1), vec(0.45, 0.3), vec(0.45, 1.65),
	vec(1.9, -1.1), vec(1.9, 0.3), vec(1.9, 1.65),
	vec(3.7, 2.9), vec(-4.1, 0.2),
}

func TestOverlap_Symmetry(t *testing.T) {
	for _, sa := range testShapes() {
		for _, sb := range testShapes() {
			for _, offset := range testOffsets {
				a := NewObject(sa.shape, vec(5, -3), sa.rotation)
				b := NewObject(sb.shape, vec(5, -3).Add(offset), sb.rotation)
				name := fmt.Sprintf("%s vs %s at %s", sa.name, sb.name, offset)

				ab, tab := Overlap(a, b, true)
				ba, tba := Overlap(b, a, true)
				require.Equal(t, ab, ba, name)
				if ab {
					assertVectorInDelta(t, tab.Negate(), tba, name)
				} else {
					assert.Equal(t, kinematic.Vector{}, tab, name)
				}

				plain, zero := Overlap(a, b, false)
				assert.Equal(t, ab, plain, name)
				assert.Equal(t, kinematic.Vector{}, zero, name)

				again, tagain := Overlap(a, b, true)
				assert.Equal(t, ab, again, name)
				assert.Equal(t, tab, tagain, name)

				a.Release()
				b.Release()
			}
		}
	}
}

func TestOverlap_FalseWhenAABBsDisjoint(t *testing.T) {
	for _, sa := range testShapes() {
		for _, sb := range testShapes() {
			for _, offset := range testOffsets {
				a := NewObject(sa.shape, vec(0, 0), sa.rotation)
				b := NewObject(sb.shape, offset.Scale(3), sb.rotation)
				if a.AABB().Intersects(b.AABB()) {
					continue
				}
				ok, got := Overlap(a, b, true)
				assert.False(t, ok, "%s vs %s at %s", sa.name, sb.name, offset)
				assert.Equal(t, kinematic.Vector{}, got)
			}
		}
	}
}

// samplePoints computes points on the boundary of shape placed at position
// and rotation without going through the object cache.
func samplePoints(shape Shape, position kinematic.Vector, rotation kinematic.Radians) []kinematic.Vector {
	const steps = 32
	ring := func(center kinematic.Vector, r float64) []kinematic.Vector {
		points := make([]kinematic.Vector, 0, steps)
		for i := 0; i < steps; i++ {
			angle := 2 * math.Pi * float64(i) / steps
			points = append(points, center.Add(vec(r*math.Cos(angle), r*math.Sin(angle))))
		}
		return points
	}

	switch s := shape.(type) {
	case Circle:
		return ring(position, s.Radius)
	case Rectangle:
		var points []kinematic.Vector
		for _, corner := range []kinematic.Vector{vec(-s.HalfWidth, -s.HalfHeight), vec(s.HalfWidth, -s.HalfHeight), vec(s.HalfWidth, s.HalfHeight), vec(-s.HalfWidth, s.HalfHeight)} {
			points = append(points, position.Add(corner.Rotate(rotation)))
		}
		return points
	case ConvexPolygon:
		var points []kinematic.Vector
		for _, p := range s.Points {
			points = append(points, position.Add(s.Points[0]).Add(p.Sub(s.Points[0]).Rotate(rotation)))
		}
		return points
	case Capsule:
		start := position.Add(s.Start)
		end := start.Add(s.End.Sub(s.Start).Rotate(rotation))
		return append(ring(start, s.Radius), ring(end, s.Radius)...)
	case Compound:
		var points []kinematic.Vector
		for _, child := range s.Children {
			points = append(points, samplePoints(child.Shape, position.Add(child.Offset.Rotate(rotation)), rotation)...)
		}
		return points
	}
	return nil
}

func TestObject_AABBContainsShape(t *testing.T) {
	const epsilon = 1e-9
	for _, s := range testShapes() {
		for _, position := range testOffsets {
			obj := NewObject(s.shape, position, s.rotation)
			bounds := obj.AABB()
			bounds.Min = bounds.Min.Sub(vec(epsilon, epsilon))
			bounds.Max = bounds.Max.Add(vec(epsilon, epsilon))
			for _, p := range samplePoints(s.shape, position, s.rotation) {
				assert.True(t, bounds.Contains(p), "%s at %s: %s outside %v", s.name, position, p, obj.AABB())
			}
		}
	}
}

func TestOverlap_CompoundMatchesChildren(t *testing.T) {
	for _, s := range testShapes() {
		compound, ok := s.shape.(Compound)
		if !ok {
			continue
		}
		for _, other := range testShapes() {
			for _, offset := range testOffsets {
				obj := NewObject(compound, vec(0, 0), s.rotation)
				b := NewObject(other.shape, offset, other.rotation)

				want := false
				var sum kinematic.Vector
				for _, child := range compound.Children {
					c := NewObject(child.Shape, child.Offset.Rotate(s.rotation), s.rotation)
					if hit, tv := Overlap(c, b, true); hit {
						want = true
						sum = sum.Add(tv)
					}
				}

				got, tv := Overlap(obj, b, true)
				name := fmt.Sprintf("%s vs %s at %s", s.name, other.name, offset)
				assert.Equal(t, want, got, name)
				assertVectorInDelta(t, sum, tv, name)
			}
		}
	}
}
