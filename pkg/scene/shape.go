package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/collide/pkg/collisions"
	"github.com/cbodonnell/collide/pkg/kinematic"
)

// Shape holds exactly one shape description.
type Shape struct {
	Circle    *CircleShape    `yaml:"circle,omitempty"`
	Rectangle *RectangleShape `yaml:"rectangle,omitempty"`
	Polygon   *PolygonShape   `yaml:"polygon,omitempty"`
	Capsule   *CapsuleShape   `yaml:"capsule,omitempty"`
	Concave   *ConcaveShape   `yaml:"concave,omitempty"`
	Compound  *CompoundShape  `yaml:"compound,omitempty"`
}

type CircleShape struct {
	Radius float64 `yaml:"radius"`
}

type RectangleShape struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// PolygonShape is a convex polygon; it rotates about its first point.
type PolygonShape struct {
	Points []kinematic.Vector `yaml:"points"`
}

type CapsuleShape struct {
	Radius float64          `yaml:"radius"`
	Start  kinematic.Vector `yaml:"start"`
	End    kinematic.Vector `yaml:"end"`
}

// MaxConcavePoints bounds the size of a concave shape, since ear clipping
// is cubic in the number of points.
const MaxConcavePoints = 256

// ConcaveShape is a simple polygon triangulated into a compound.
type ConcaveShape struct {
	Points      []kinematic.Vector `yaml:"points"`
	Orientation string             `yaml:"orientation"`
}

type CompoundShape struct {
	Children []Child `yaml:"children"`
}

type Child struct {
	Offset kinematic.Vector `yaml:"offset"`
	Shape  Shape            `yaml:"shape"`
}

// Kind names the description that is set, or "" when none or several are.
func (s Shape) Kind() string {
	var kinds []string
	if s.Circle != nil {
		kinds = append(kinds, "circle")
	}
	if s.Rectangle != nil {
		kinds = append(kinds, "rectangle")
	}
	if s.Polygon != nil {
		kinds = append(kinds, "polygon")
	}
	if s.Capsule != nil {
		kinds = append(kinds, "capsule")
	}
	if s.Concave != nil {
		kinds = append(kinds, "concave")
	}
	if s.Compound != nil {
		kinds = append(kinds, "compound")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// validate checks s as it would be built at the given compound depth. Concave
// shapes become compounds, so they count as a level like compounds do.
// Without triangulate, concave shapes are not ear clipped and Build reports
// degenerate geometry instead.
func (s Shape) validate(path string, depth int, triangulate bool) error {
	kind := s.Kind()
	if (kind == "compound" || kind == "concave") && depth >= collisions.MaxCompoundDepth {
		return fmt.Errorf("%s: compounds nested deeper than %d levels", path, collisions.MaxCompoundDepth)
	}
	switch kind {
	case "circle":
		if !(s.Circle.Radius > 0) || !finite(s.Circle.Radius) {
			return fmt.Errorf("%s: circle radius must be positive", path)
		}
	case "rectangle":
		r := s.Rectangle
		if !(r.HalfWidth > 0 && r.HalfHeight > 0) || !finite(r.HalfWidth, r.HalfHeight) {
			return fmt.Errorf("%s: rectangle half extents must be positive", path)
		}
	case "polygon":
		if len(s.Polygon.Points) < 2 {
			return fmt.Errorf("%s: polygon needs at least 2 points, got %d", path, len(s.Polygon.Points))
		}
		if !finitePoints(s.Polygon.Points) {
			return fmt.Errorf("%s: polygon points must be finite", path)
		}
	case "capsule":
		c := s.Capsule
		if !(c.Radius > 0) || !finite(c.Radius, c.Start.X, c.Start.Y, c.End.X, c.End.Y) {
			return fmt.Errorf("%s: capsule radius must be positive and its ends finite", path)
		}
	case "concave":
		if len(s.Concave.Points) > MaxConcavePoints {
			return fmt.Errorf("%s: concave shape has %d points, at most %d are allowed", path, len(s.Concave.Points), MaxConcavePoints)
		}
		if !finitePoints(s.Concave.Points) {
			return fmt.Errorf("%s: concave points must be finite", path)
		}
		orientation, err := collisions.ParseOrientation(s.Concave.Orientation)
		if err != nil {
			return fmt.Errorf("%s: %v", path, err)
		}
		if !triangulate {
			break
		}
		if _, err := collisions.TriangulateConcave(s.Concave.Points, orientation); err != nil {
			return fmt.Errorf("%s: %v", path, err)
		}
	case "compound":
		for i, child := range s.Compound.Children {
			if !finite(child.Offset.X, child.Offset.Y) {
				return fmt.Errorf("%s.children[%d]: offset must be finite", path, i)
			}
			if err := child.Shape.validate(fmt.Sprintf("%s.children[%d].shape", path, i), depth+1, triangulate); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%s: exactly one of circle, rectangle, polygon, capsule, concave or compound must be set", path)
	}
	return nil
}

func (s *Shape) normalize() {
	if s.Concave != nil {
		if orientation, err := collisions.ParseOrientation(s.Concave.Orientation); err == nil {
			s.Concave.Orientation = orientation.String()
		}
	}
	if s.Compound != nil {
		for i := range s.Compound.Children {
			s.Compound.Children[i].Shape.normalize()
		}
	}
}

// Build converts a validated description into a collision shape.
func (s Shape) Build() (collisions.Shape, error) {
	switch s.Kind() {
	case "circle":
		return collisions.Circle{Radius: s.Circle.Radius}, nil
	case "rectangle":
		return collisions.Rectangle{HalfWidth: s.Rectangle.HalfWidth, HalfHeight: s.Rectangle.HalfHeight}, nil
	case "polygon":
		return collisions.ConvexPolygon{Points: append([]kinematic.Vector(nil), s.Polygon.Points...)}, nil
	case "capsule":
		return collisions.Capsule{Radius: s.Capsule.Radius, Start: s.Capsule.Start, End: s.Capsule.End}, nil
	case "concave":
		orientation, err := collisions.ParseOrientation(s.Concave.Orientation)
		if err != nil {
			return nil, err
		}
		compound, err := collisions.TriangulateConcave(s.Concave.Points, orientation)
		if err != nil {
			return nil, fmt.Errorf("failed to triangulate concave shape: %w", err)
		}
		return compound, nil
	case "compound":
		compound := collisions.Compound{Children: make([]collisions.CompoundChild, 0, len(s.Compound.Children))}
		for i, child := range s.Compound.Children {
			shape, err := child.Shape.Build()
			if err != nil {
				return nil, fmt.Errorf("failed to build child %d: %w", i, err)
			}
			compound.Children = append(compound.Children, collisions.CompoundChild{Shape: shape, Offset: child.Offset})
		}
		return compound, nil
	default:
		return nil, fmt.Errorf("shape must set exactly one kind")
	}
}

func finitePoints(points []kinematic.Vector) bool {
	for _, p := range points {
		if !finite(p.X, p.Y) {
			return false
		}
	}
	return true
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (kinematic.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return kinematic.Vector{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return kinematic.Vector{}, fmt.Errorf("invalid x in %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return kinematic.Vector{}, fmt.Errorf("invalid y in %q: %v", s, err)
	}
	return kinematic.Vector{X: x, Y: y}, nil
}
