package collisions

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/cbodonnell/collide/pkg/log"
)

// Orientation is the winding of a point sequence in a y-up coordinate system.
type Orientation uint8

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter_clockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// ParseOrientation parses "clockwise"/"cw" or "counter_clockwise"/"ccw".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counter_clockwise", "counterclockwise", "ccw":
		return CounterClockwise, nil
	default:
		return Collinear, fmt.Errorf("unknown orientation: %q", s)
	}
}

// OrientationOf returns the winding of the turn p -> q -> r.
func OrientationOf(p, q, r kinematic.Vector) Orientation {
	c := q.Sub(p).Cross(r.Sub(q))
	switch {
	case c > 0:
		return CounterClockwise
	case c < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// ConcavePolygon triangulates a simple polygon into a compound of triangles.
// Degenerate input is fatal: the error is logged and ConcavePolygon panics.
// Use TriangulateConcave to handle the error instead.
func ConcavePolygon(points []kinematic.Vector, orientation Orientation) Compound {
	compound, err := TriangulateConcave(points, orientation)
	if err != nil {
		log.Error("Failed to triangulate concave polygon with %d points: %v", len(points), err)
		panic(fmt.Sprintf("failed to triangulate concave polygon: %v", err))
	}
	return compound
}

// TriangulateConcave decomposes a simple polygon wound in orientation into
// convex triangles by ear clipping. Each triangle is a ConvexPolygon anchored
// at its first vertex, placed at that vertex's offset, so the compound
// rotates as one rigid body.
func TriangulateConcave(points []kinematic.Vector, orientation Orientation) (Compound, error) {
	if len(points) < 3 {
		return Compound{}, &ErrDegenerateGeometry{Reason: fmt.Sprintf("concave polygon needs at least 3 points, got %d", len(points))}
	}
	if orientation == Collinear {
		return Compound{}, &ErrDegenerateGeometry{Reason: "concave polygon orientation must be clockwise or counter-clockwise"}
	}

	remaining := make([]kinematic.Vector, len(points))
	copy(remaining, points)
	children := make([]CompoundChild, 0, len(points)-2)
	for len(remaining) > 3 {
		i, err := findEar(remaining, orientation)
		if err != nil {
			return Compound{}, err
		}
		n := len(remaining)
		children = append(children, triangleChild(remaining[(i+n-1)%n], remaining[i], remaining[(i+1)%n]))
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	switch OrientationOf(remaining[0], remaining[1], remaining[2]) {
	case Collinear:
		return Compound{}, &ErrDegenerateGeometry{Reason: "final triangle is collinear"}
	case orientation:
		children = append(children, triangleChild(remaining[0], remaining[1], remaining[2]))
	default:
		return Compound{}, &ErrDegenerateGeometry{Reason: fmt.Sprintf("final triangle is not %s", orientation)}
	}
	return Compound{Children: children}, nil
}

// findEar returns the index of the first vertex whose triangle with its
// neighbours turns in orientation and holds no other vertex of the loop.
func findEar(loop []kinematic.Vector, orientation Orientation) (int, error) {
	n := len(loop)
	for i := 0; i < n; i++ {
		prev, current, next := loop[(i+n-1)%n], loop[i], loop[(i+1)%n]
		turn := OrientationOf(prev, current, next)
		if turn == Collinear {
			return -1, &ErrDegenerateGeometry{Reason: fmt.Sprintf("collinear vertices around %v", current)}
		}
		if turn != orientation {
			continue
		}
		if triangleHoldsVertex(loop, i) {
			continue
		}
		return i, nil
	}
	return -1, &ErrDegenerateGeometry{Reason: fmt.Sprintf("no ear among %d vertices; polygon is not simple or not %s", n, orientation)}
}

// triangleHoldsVertex reports whether any vertex other than the triangle's
// own lies inside or on the triangle around loop[i].
func triangleHoldsVertex(loop []kinematic.Vector, i int) bool {
	n := len(loop)
	a, b, c := loop[(i+n-1)%n], loop[i], loop[(i+1)%n]
	for j, p := range loop {
		if j == i || j == (i+n-1)%n || j == (i+1)%n {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

// pointInTriangle includes the triangle's edges.
func pointInTriangle(p, a, b, c kinematic.Vector) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNegative := d1 < 0 || d2 < 0 || d3 < 0
	hasPositive := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNegative && hasPositive)
}

func triangleChild(a, b, c kinematic.Vector) CompoundChild {
	return CompoundChild{
		Shape: ConvexPolygon{Points: []kinematic.Vector{
			{},
			b.Sub(a),
			c.Sub(a),
		}},
		Offset: a,
	}
}
