package collisions

import (
	"fmt"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// Object places a Shape in the world. It keeps the rotation-derived cache and
// the world AABB current across mutations: SetRotation and SetShape rebuild
// the cache and the AABB, SetPosition rebuilds only the AABB.
//
// Objects are not safe for concurrent mutation.
type Object struct {
	shape     Shape
	position  kinematic.Vector
	rotation  kinematic.Radians
	cache     shapeCache
	ownership Ownership
	aabb      AABB
}

// NewObject creates an object that owns a freshly computed cache.
// It panics if shape nests compounds deeper than MaxCompoundDepth or is a
// convex polygon with fewer than 2 points.
func NewObject(shape Shape, position kinematic.Vector, rotation kinematic.Radians) *Object {
	checkDepth(shape)
	o := &Object{
		shape:     shape,
		position:  position,
		rotation:  rotation,
		cache:     evaluateCache(shape, rotation),
		ownership: OwnershipExclusive,
	}
	o.aabb = o.evaluateAABB()
	return o
}

// NewAlias creates an object that borrows source's cache. An alias is valid
// only while its source is neither released nor given a new rotation or shape.
func NewAlias(source *Object) *Object {
	return NewAliasAt(source, source.position)
}

// NewAliasAt creates an object that borrows source's cache and sits at position.
// No rotation-derived data is recomputed.
func NewAliasAt(source *Object, position kinematic.Vector) *Object {
	o := &Object{
		shape:     source.shape,
		position:  position,
		rotation:  source.rotation,
		cache:     source.cache,
		ownership: OwnershipBorrowed,
	}
	o.aabb = o.evaluateAABB()
	return o
}

// NewCompoundObject creates a compound from existing objects. Each child's
// position is its offset from the compound's origin. With OwnershipExclusive
// the compound takes ownership of exactly that list and releases the children
// with itself; with OwnershipBorrowed the children are left to their owner.
func NewCompoundObject(children []*Object, position kinematic.Vector, rotation kinematic.Radians, ownership Ownership) *Object {
	shape := Compound{Children: make([]CompoundChild, 0, len(children))}
	for _, child := range children {
		shape.Children = append(shape.Children, CompoundChild{
			Shape:  child.shape,
			Offset: child.position.Rotate(-rotation),
		})
	}
	checkDepth(shape)
	o := &Object{
		shape:     shape,
		position:  position,
		rotation:  rotation,
		cache:     &compoundCache{children: children, ownership: ownership},
		ownership: OwnershipExclusive,
	}
	o.aabb = o.evaluateAABB()
	return o
}

func checkDepth(shape Shape) {
	if d := compoundDepth(shape, MaxCompoundDepth); d > MaxCompoundDepth {
		panic(fmt.Sprintf("collisions: compound nesting exceeds %d levels", MaxCompoundDepth))
	}
}

func (o *Object) Shape() Shape {
	return o.shape
}

func (o *Object) Position() kinematic.Vector {
	return o.position
}

func (o *Object) Rotation() kinematic.Radians {
	return o.rotation
}

// AABB returns the world-space bounding box for the current state.
func (o *Object) AABB() AABB {
	return o.aabb
}

// Ownership reports whether the object owns its cache.
func (o *Object) Ownership() Ownership {
	return o.ownership
}

// Children returns a compound's child objects, positioned relative to the
// compound's origin. It returns nil for other shapes.
func (o *Object) Children() []*Object {
	if c, ok := o.cache.(*compoundCache); ok {
		return c.children
	}
	return nil
}

// SetPosition moves the object. The cache is position independent and is kept.
func (o *Object) SetPosition(position kinematic.Vector) {
	o.position = position
	o.aabb = o.evaluateAABB()
}

// SetRotation rotates the object, rebuilding its cache and AABB.
func (o *Object) SetRotation(rotation kinematic.Radians) {
	o.rotation = rotation
	o.refresh()
}

// SetShape replaces the object's shape, rebuilding its cache and AABB.
func (o *Object) SetShape(shape Shape) {
	checkDepth(shape)
	o.shape = shape
	o.refresh()
}

// Release drops the object's cache. Owned compound children are released
// recursively; borrowed caches and non-owned children are left untouched.
// The object must not be used afterwards.
func (o *Object) Release() {
	o.discardCache()
}

// refresh replaces the cache with one the object owns. An alias therefore
// stops sharing its source's cache on its first rotation or shape change.
func (o *Object) refresh() {
	o.discardCache()
	o.cache = evaluateCache(o.shape, o.rotation)
	o.ownership = OwnershipExclusive
	o.aabb = o.evaluateAABB()
}

func (o *Object) discardCache() {
	if o.ownership == OwnershipExclusive {
		if c, ok := o.cache.(*compoundCache); ok && c.ownership == OwnershipExclusive {
			for _, child := range c.children {
				child.Release()
			}
			c.children = nil
		}
	}
	o.cache = nil
}

func (o *Object) evaluateAABB() AABB {
	switch s := o.shape.(type) {
	case Circle:
		r := kinematic.Vector{X: s.Radius, Y: s.Radius}
		return AABB{Min: o.position.Sub(r), Max: o.position.Add(r)}
	case Rectangle, ConvexPolygon:
		return boundsOf(o.polygonCache().vertices).Add(o.position)
	case Capsule:
		end := o.capsuleCache().endPoint
		r := kinematic.Vector{X: s.Radius, Y: s.Radius}
		return AABB{
			Min: s.Start.Min(end).Sub(r),
			Max: s.Start.Max(end).Add(r),
		}.Add(o.position)
	case Compound:
		children := o.compoundCache().children
		if len(children) == 0 {
			return AABB{Min: o.position, Max: o.position}
		}
		box := children[0].aabb
		for _, child := range children[1:] {
			box = box.Union(child.aabb)
		}
		return box.Add(o.position)
	default:
		panic(fmt.Sprintf("collisions: unknown shape type %T", o.shape))
	}
}

func (o *Object) polygonCache() *polygonCache {
	c, ok := o.cache.(*polygonCache)
	if !ok {
		panic(fmt.Sprintf("collisions: %s object has cache %T, want polygon cache", o.shape.Kind(), o.cache))
	}
	return c
}

func (o *Object) capsuleCache() *capsuleCache {
	c, ok := o.cache.(*capsuleCache)
	if !ok {
		panic(fmt.Sprintf("collisions: %s object has cache %T, want capsule cache", o.shape.Kind(), o.cache))
	}
	return c
}

func (o *Object) compoundCache() *compoundCache {
	c, ok := o.cache.(*compoundCache)
	if !ok {
		panic(fmt.Sprintf("collisions: %s object has cache %T, want compound cache", o.shape.Kind(), o.cache))
	}
	return c
}
