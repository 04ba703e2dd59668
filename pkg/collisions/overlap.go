package collisions

import (
	"fmt"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// Overlap reports whether a and b overlap. Touching shapes overlap.
//
// When wantTranslation is set, the returned vector approximates the
// translation that, added to a's position, moves a out of b; Overlap(b, a)
// returns its negation. Compounds report the sum of their overlapping
// children's translations. Without wantTranslation the vector is zero and
// compounds stop at the first overlapping child.
func Overlap(a, b *Object, wantTranslation bool) (bool, kinematic.Vector) {
	if !a.aabb.Intersects(b.aabb) {
		return false, kinematic.Vector{}
	}
	if a.shape.Kind() == ShapeKindCompound {
		return overlapCompound(a, b, wantTranslation, false)
	}
	if b.shape.Kind() == ShapeKindCompound {
		return overlapCompound(b, a, wantTranslation, true)
	}
	return narrowPhase(a, b, wantTranslation)
}

// overlapCompound tests other against each child of compound. When swapped
// is set, other was the first argument of the original call and stays first
// so translations keep their sign.
func overlapCompound(compound, other *Object, wantTranslation bool, swapped bool) (bool, kinematic.Vector) {
	hit := false
	var translation kinematic.Vector
	for _, child := range compound.compoundCache().children {
		placed := NewAliasAt(child, compound.position.Add(child.position))
		if !placed.aabb.Intersects(other.aabb) {
			continue
		}

		var ok bool
		var t kinematic.Vector
		if swapped {
			ok, t = Overlap(other, placed, wantTranslation)
		} else {
			ok, t = Overlap(placed, other, wantTranslation)
		}
		if !ok {
			continue
		}
		if !wantTranslation {
			return true, kinematic.Vector{}
		}
		hit = true
		translation = translation.Add(t)
	}
	return hit, translation
}

// dispatchRank orders shape kinds so every unordered pair maps to one routine.
func dispatchRank(shape Shape) int {
	switch shape.(type) {
	case Circle:
		return 0
	case Capsule:
		return 1
	case Rectangle, ConvexPolygon:
		return 2
	default:
		panic(fmt.Sprintf("collisions: no narrow phase for shape type %T", shape))
	}
}

func narrowPhase(a, b *Object, wantTranslation bool) (bool, kinematic.Vector) {
	if dispatchRank(a.shape) > dispatchRank(b.shape) {
		ok, t := narrowPhase(b, a, wantTranslation)
		if wantTranslation {
			t = t.Negate()
		}
		return ok, t
	}

	switch a.shape.(type) {
	case Circle:
		switch b.shape.(type) {
		case Circle:
			return circleCircle(a, b, wantTranslation)
		case Capsule:
			return circleCapsule(a, b, wantTranslation)
		case Rectangle, ConvexPolygon:
			return circlePolygon(a, b, wantTranslation)
		}
	case Capsule:
		switch b.shape.(type) {
		case Capsule:
			return capsuleCapsule(a, b, wantTranslation)
		case Rectangle, ConvexPolygon:
			return capsulePolygon(a, b, wantTranslation)
		}
	case Rectangle, ConvexPolygon:
		return polygonPolygon(a, b, wantTranslation)
	}
	panic(fmt.Sprintf("collisions: no narrow phase for %s and %s", a.shape.Kind(), b.shape.Kind()))
}
