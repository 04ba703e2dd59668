package collisions

import (
	"fmt"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// ShapeKind identifies the variant held by a Shape.
type ShapeKind uint8

const (
	ShapeKindCircle ShapeKind = iota
	ShapeKindRectangle
	ShapeKindConvexPolygon
	ShapeKindCapsule
	ShapeKindCompound
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindCircle:
		return "circle"
	case ShapeKindRectangle:
		return "rectangle"
	case ShapeKindConvexPolygon:
		return "polygon"
	case ShapeKindCapsule:
		return "capsule"
	case ShapeKindCompound:
		return "compound"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape describes geometry in local, unrotated and untranslated coordinates.
// The set of implementations is closed: Circle, Rectangle, ConvexPolygon,
// Capsule and Compound.
type Shape interface {
	Kind() ShapeKind
	isShape()
}

// Circle is anchored at its center.
type Circle struct {
	Radius float64
}

// Rectangle is anchored at its center.
type Rectangle struct {
	HalfWidth  float64
	HalfHeight float64
}

// ConvexPolygon is anchored at its first point, which is also its pivot of
// rotation. Points must describe a convex hull in a consistent winding order;
// this is not validated.
type ConvexPolygon struct {
	Points []kinematic.Vector
}

// Capsule is a stadium: two caps of Radius joined along the segment Start-End.
// It is anchored at Start and rotates about it.
type Capsule struct {
	Radius float64
	Start  kinematic.Vector
	End    kinematic.Vector
}

// CompoundChild is a shape placed at Offset from the compound's origin.
type CompoundChild struct {
	Shape  Shape
	Offset kinematic.Vector
}

// Compound aggregates child shapes. It is anchored at its local origin.
//
// A compound rotates rigidly: each child takes the compound's rotation and
// its Offset is rotated by it too, so children orbit the origin rather than
// spinning in place at an unrotated offset.
type Compound struct {
	Children []CompoundChild
}

func (Circle) Kind() ShapeKind        { return ShapeKindCircle }
func (Rectangle) Kind() ShapeKind     { return ShapeKindRectangle }
func (ConvexPolygon) Kind() ShapeKind { return ShapeKindConvexPolygon }
func (Capsule) Kind() ShapeKind       { return ShapeKindCapsule }
func (Compound) Kind() ShapeKind      { return ShapeKindCompound }

func (Circle) isShape()        {}
func (Rectangle) isShape()     {}
func (ConvexPolygon) isShape() {}
func (Capsule) isShape()       {}
func (Compound) isShape()      {}

// MaxCompoundDepth bounds how deeply compounds may nest.
const MaxCompoundDepth = 32

// compoundDepth returns the nesting depth of a shape, 0 for non-compounds.
// It stops counting once limit is exceeded.
func compoundDepth(shape Shape, limit int) int {
	compound, ok := shape.(Compound)
	if !ok {
		return 0
	}
	if limit < 0 {
		return 1
	}
	deepest := 0
	for _, child := range compound.Children {
		if d := compoundDepth(child.Shape, limit-1); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
