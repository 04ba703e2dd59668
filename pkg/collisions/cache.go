package collisions

import (
	"fmt"
	"math"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// Ownership records whether an object or compound owns the data it references.
type Ownership uint8

const (
	// OwnershipExclusive means the holder computed the data and releases it.
	OwnershipExclusive Ownership = iota
	// OwnershipBorrowed means the data belongs to another object and is only referenced.
	OwnershipBorrowed
)

func (o Ownership) String() string {
	switch o {
	case OwnershipExclusive:
		return "exclusive"
	case OwnershipBorrowed:
		return "borrowed"
	default:
		return fmt.Sprintf("Ownership(%d)", uint8(o))
	}
}

// shapeCache is geometry derived from a shape and a rotation. It never
// depends on position. Circles have no cache.
type shapeCache interface {
	isShapeCache()
}

// projection is the scalar interval of a shape projected onto an axis.
type projection struct {
	min float64
	max float64
}

func (p projection) overlaps(other projection) bool {
	return p.max >= other.min && other.max >= p.min
}

// shift moves the interval by d, used to place a cached projection at an object's position.
func (p projection) shift(d float64) projection {
	return projection{min: p.min + d, max: p.max + d}
}

type polygonCache struct {
	// vertices are rotated about the anchor but not translated.
	vertices []kinematic.Vector
	// axes holds the normalized normal of each edge; the sign depends on winding.
	axes []kinematic.Vector
	// projections[i] is the interval of vertices on axes[i].
	projections []projection
	// axisAlignedRectangle is set for unrotated rectangles only.
	axisAlignedRectangle bool
}

type capsuleCache struct {
	endPoint kinematic.Vector
	// axes are the long axis and its perpendicular.
	axes [2]kinematic.Vector
}

type compoundCache struct {
	children  []*Object
	ownership Ownership
}

func (*polygonCache) isShapeCache()  {}
func (*capsuleCache) isShapeCache()  {}
func (*compoundCache) isShapeCache() {}

// evaluateCache derives the cache for shape at rotation.
func evaluateCache(shape Shape, rotation kinematic.Radians) shapeCache {
	switch s := shape.(type) {
	case Circle:
		return nil
	case Rectangle:
		return rectangleCache(s, rotation)
	case ConvexPolygon:
		return convexPolygonCache(s, rotation)
	case Capsule:
		endPoint := s.End.RotateAround(s.Start, rotation)
		long := endPoint.Sub(s.Start).Normalize()
		return &capsuleCache{
			endPoint: endPoint,
			axes:     [2]kinematic.Vector{long, long.Perpendicular()},
		}
	case Compound:
		children := make([]*Object, 0, len(s.Children))
		for _, child := range s.Children {
			children = append(children, NewObject(child.Shape, child.Offset.Rotate(rotation), rotation))
		}
		return &compoundCache{children: children, ownership: OwnershipExclusive}
	default:
		panic(fmt.Sprintf("collisions: unknown shape type %T", shape))
	}
}

func rectangleCache(r Rectangle, rotation kinematic.Radians) *polygonCache {
	w, h := r.HalfWidth, r.HalfHeight
	cache := &polygonCache{
		vertices: []kinematic.Vector{
			{X: -w, Y: h},
			{X: w, Y: h},
			{X: w, Y: -h},
			{X: -w, Y: -h},
		},
	}
	if rotation == 0 {
		cache.axisAlignedRectangle = true
	} else {
		for i, v := range cache.vertices {
			cache.vertices[i] = v.Rotate(rotation)
		}
	}
	cache.computeAxes()
	return cache
}

func convexPolygonCache(p ConvexPolygon, rotation kinematic.Radians) *polygonCache {
	if len(p.Points) < 2 {
		panic(fmt.Sprintf("collisions: convex polygon needs at least 2 points, got %d", len(p.Points)))
	}
	anchor := p.Points[0]
	vertices := make([]kinematic.Vector, len(p.Points))
	vertices[0] = anchor
	for i, point := range p.Points[1:] {
		vertices[i+1] = point.RotateAround(anchor, rotation)
	}
	cache := &polygonCache{vertices: vertices}
	cache.computeAxes()
	return cache
}

// computeAxes fills one axis per edge and the projection of the polygon onto it.
func (c *polygonCache) computeAxes() {
	n := len(c.vertices)
	c.axes = make([]kinematic.Vector, n)
	c.projections = make([]projection, n)
	for i := 0; i < n; i++ {
		edge := c.vertices[(i+1)%n].Sub(c.vertices[i])
		axis := edge.Perpendicular().Normalize()
		c.axes[i] = axis
		c.projections[i] = projectPoints(c.vertices, axis, kinematic.Vector{})
	}
}

// projectPoints projects points, each offset by origin, onto axis.
func projectPoints(points []kinematic.Vector, axis kinematic.Vector, origin kinematic.Vector) projection {
	p := projection{min: math.Inf(1), max: math.Inf(-1)}
	for _, point := range points {
		d := point.Add(origin).Dot(axis)
		p.min = math.Min(p.min, d)
		p.max = math.Max(p.max, d)
	}
	return p
}
