package collisions

import (
	"math"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// separation accumulates the axis of least overlap while testing axes.
// Projections of the first shape are always passed first.
type separation struct {
	wantTranslation bool
	depth           float64
	direction       kinematic.Vector
}

func newSeparation(wantTranslation bool) *separation {
	return &separation{wantTranslation: wantTranslation, depth: math.Inf(1)}
}

// test returns false if the intervals are disjoint, which proves a and b
// are separated. Zero axes come from degenerate geometry and never separate.
func (s *separation) test(axis kinematic.Vector, a, b projection) bool {
	if axis.IsZero() {
		return true
	}
	if !a.overlaps(b) {
		return false
	}
	if !s.wantTranslation {
		return true
	}
	depth := math.Min(a.max, b.max) - math.Max(a.min, b.min)
	if depth < s.depth {
		s.depth = depth
		if a.min+a.max < b.min+b.max {
			s.direction = axis.Negate()
		} else {
			s.direction = axis
		}
	}
	return true
}

func (s *separation) translation() kinematic.Vector {
	if !s.wantTranslation || math.IsInf(s.depth, 1) {
		return kinematic.Vector{}
	}
	return s.direction.Scale(s.depth)
}

func circleProjection(center kinematic.Vector, radius float64, axis kinematic.Vector) projection {
	d := center.Dot(axis)
	return projection{min: d - radius, max: d + radius}
}

// capsuleSegment returns the world endpoints of a capsule's centerline.
func capsuleSegment(o *Object) (kinematic.Vector, kinematic.Vector) {
	capsule := o.shape.(Capsule)
	return o.position.Add(capsule.Start), o.position.Add(o.capsuleCache().endPoint)
}

func capsuleProjection(o *Object, axis kinematic.Vector) projection {
	start, end := capsuleSegment(o)
	r := o.shape.(Capsule).Radius
	s, e := start.Dot(axis), end.Dot(axis)
	return projection{min: math.Min(s, e) - r, max: math.Max(s, e) + r}
}

// polygonProjection returns the cached projection on edge axis i placed at the object's position.
func polygonProjection(o *Object, i int) projection {
	c := o.polygonCache()
	return c.projections[i].shift(o.position.Dot(c.axes[i]))
}

func closestPointOnSegment(p, start, end kinematic.Vector) kinematic.Vector {
	segment := end.Sub(start)
	lengthSquared := segment.LengthSquared()
	if lengthSquared == 0 {
		return start
	}
	t := p.Sub(start).Dot(segment) / lengthSquared
	t = math.Max(0, math.Min(1, t))
	return start.Add(segment.Scale(t))
}

// circlesOverlap tests two discs, pushing the first away from the second.
func circlesOverlap(a kinematic.Vector, ra float64, b kinematic.Vector, rb float64, wantTranslation bool) (bool, kinematic.Vector) {
	d := a.Sub(b)
	sum := ra + rb
	distanceSquared := d.LengthSquared()
	if distanceSquared > sum*sum {
		return false, kinematic.Vector{}
	}
	if !wantTranslation {
		return true, kinematic.Vector{}
	}
	distance := math.Sqrt(distanceSquared)
	if distance == 0 {
		return true, kinematic.Vector{X: sum}
	}
	return true, d.Scale((sum - distance) / distance)
}

func circleCircle(a, b *Object, wantTranslation bool) (bool, kinematic.Vector) {
	return circlesOverlap(a.position, a.shape.(Circle).Radius, b.position, b.shape.(Circle).Radius, wantTranslation)
}

func circleCapsule(circle, capsule *Object, wantTranslation bool) (bool, kinematic.Vector) {
	start, end := capsuleSegment(capsule)
	closest := closestPointOnSegment(circle.position, start, end)
	return circlesOverlap(circle.position, circle.shape.(Circle).Radius, closest, capsule.shape.(Capsule).Radius, wantTranslation)
}

// pointCapsule returns the disc a capsule reduces to when its ends coincide.
func pointCapsule(o *Object) (kinematic.Vector, float64, bool) {
	capsule := o.shape.(Capsule)
	if o.capsuleCache().endPoint != capsule.Start {
		return kinematic.Vector{}, 0, false
	}
	return o.position.Add(capsule.Start), capsule.Radius, true
}

func circlePolygon(circle, polygon *Object, wantTranslation bool) (bool, kinematic.Vector) {
	return discPolygon(circle.position, circle.shape.(Circle).Radius, polygon, wantTranslation)
}

func discPolygon(center kinematic.Vector, r float64, polygon *Object, wantTranslation bool) (bool, kinematic.Vector) {
	c := polygon.polygonCache()
	if c.axisAlignedRectangle {
		return circleBox(center, r, polygon.aabb, wantTranslation)
	}

	sep := newSeparation(wantTranslation)
	for i, axis := range c.axes {
		if !sep.test(axis, circleProjection(center, r, axis), polygonProjection(polygon, i)) {
			return false, kinematic.Vector{}
		}
	}

	// the axis toward the nearest vertex catches circles passing a corner
	nearest := polygon.position.Add(c.vertices[0])
	for _, v := range c.vertices[1:] {
		w := polygon.position.Add(v)
		if w.Sub(center).LengthSquared() < nearest.Sub(center).LengthSquared() {
			nearest = w
		}
	}
	axis := center.Sub(nearest).Normalize()
	if !sep.test(axis, circleProjection(center, r, axis), projectPoints(c.vertices, axis, polygon.position)) {
		return false, kinematic.Vector{}
	}
	return true, sep.translation()
}

// circleBox tests a circle against an axis-aligned box by clamping its center.
func circleBox(center kinematic.Vector, r float64, box AABB, wantTranslation bool) (bool, kinematic.Vector) {
	closest := kinematic.Vector{
		X: math.Max(box.Min.X, math.Min(center.X, box.Max.X)),
		Y: math.Max(box.Min.Y, math.Min(center.Y, box.Max.Y)),
	}
	d := center.Sub(closest)
	distanceSquared := d.LengthSquared()
	if distanceSquared > r*r {
		return false, kinematic.Vector{}
	}
	if !wantTranslation {
		return true, kinematic.Vector{}
	}
	if distanceSquared > 0 {
		distance := math.Sqrt(distanceSquared)
		return true, d.Scale((r - distance) / distance)
	}

	// center inside the box: leave through the nearest face
	left := center.X - box.Min.X
	right := box.Max.X - center.X
	down := center.Y - box.Min.Y
	up := box.Max.Y - center.Y
	switch math.Min(math.Min(left, right), math.Min(down, up)) {
	case left:
		return true, kinematic.Vector{X: -(left + r)}
	case right:
		return true, kinematic.Vector{X: right + r}
	case down:
		return true, kinematic.Vector{Y: -(down + r)}
	default:
		return true, kinematic.Vector{Y: up + r}
	}
}

func capsuleCapsule(a, b *Object, wantTranslation bool) (bool, kinematic.Vector) {
	// a capsule with coincident ends has no axes of its own
	if center, r, ok := pointCapsule(a); ok {
		start, end := capsuleSegment(b)
		return circlesOverlap(center, r, closestPointOnSegment(center, start, end), b.shape.(Capsule).Radius, wantTranslation)
	}
	if center, r, ok := pointCapsule(b); ok {
		start, end := capsuleSegment(a)
		return circlesOverlap(closestPointOnSegment(center, start, end), a.shape.(Capsule).Radius, center, r, wantTranslation)
	}

	ca, cb := a.capsuleCache(), b.capsuleCache()
	axes := [4]kinematic.Vector{ca.axes[0], ca.axes[1], cb.axes[0], cb.axes[1]}
	sep := newSeparation(wantTranslation)
	for _, axis := range axes {
		if !sep.test(axis, capsuleProjection(a, axis), capsuleProjection(b, axis)) {
			return false, kinematic.Vector{}
		}
	}
	return true, sep.translation()
}

func capsulePolygon(capsule, polygon *Object, wantTranslation bool) (bool, kinematic.Vector) {
	if center, r, ok := pointCapsule(capsule); ok {
		return discPolygon(center, r, polygon, wantTranslation)
	}

	c := polygon.polygonCache()
	sep := newSeparation(wantTranslation)
	for i, axis := range c.axes {
		if !sep.test(axis, capsuleProjection(capsule, axis), polygonProjection(polygon, i)) {
			return false, kinematic.Vector{}
		}
	}
	for _, axis := range capsule.capsuleCache().axes {
		if !sep.test(axis, capsuleProjection(capsule, axis), projectPoints(c.vertices, axis, polygon.position)) {
			return false, kinematic.Vector{}
		}
	}
	return true, sep.translation()
}

// polygonPolygon tests each polygon's cached edge axes against the other's vertices.
func polygonPolygon(a, b *Object, wantTranslation bool) (bool, kinematic.Vector) {
	ca, cb := a.polygonCache(), b.polygonCache()
	sep := newSeparation(wantTranslation)
	for i, axis := range ca.axes {
		if !sep.test(axis, polygonProjection(a, i), projectPoints(cb.vertices, axis, b.position)) {
			return false, kinematic.Vector{}
		}
	}
	for i, axis := range cb.axes {
		if !sep.test(axis, projectPoints(ca.vertices, axis, a.position), polygonProjection(b, i)) {
			return false, kinematic.Vector{}
		}
	}
	return true, sep.translation()
}
