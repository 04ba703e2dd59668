package collisions

import "github.com/cbodonnell/collide/pkg/kinematic"

// AABB is an axis-aligned bounding box. Min is component-wise <= Max.
type AABB struct {
	Min kinematic.Vector `json:"min"`
	Max kinematic.Vector `json:"max"`
}

// Add translates the box by v.
func (a AABB) Add(v kinematic.Vector) AABB {
	return AABB{Min: a.Min.Add(v), Max: a.Max.Add(v)}
}

// Sub translates the box by -v.
func (a AABB) Sub(v kinematic.Vector) AABB {
	return AABB{Min: a.Min.Sub(v), Max: a.Max.Sub(v)}
}

// Intersects reports whether the boxes overlap. Touching boxes intersect.
func (a AABB) Intersects(other AABB) bool {
	return a.Max.X >= other.Min.X && a.Min.X <= other.Max.X &&
		a.Max.Y >= other.Min.Y && a.Min.Y <= other.Max.Y
}

// Contains reports whether p lies inside the box or on its boundary.
func (a AABB) Contains(p kinematic.Vector) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// ContainsAABB reports whether other lies entirely within a.
func (a AABB) ContainsAABB(other AABB) bool {
	return a.Contains(other.Min) && a.Contains(other.Max)
}

// Union returns the smallest box containing both boxes.
func (a AABB) Union(other AABB) AABB {
	return AABB{Min: a.Min.Min(other.Min), Max: a.Max.Max(other.Max)}
}

func (a AABB) Width() float64 {
	return a.Max.X - a.Min.X
}

func (a AABB) Height() float64 {
	return a.Max.Y - a.Min.Y
}

// boundsOf returns the box around a set of points.
func boundsOf(points []kinematic.Vector) AABB {
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}
