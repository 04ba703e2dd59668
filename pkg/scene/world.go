package scene

import (
	"fmt"

	"github.com/cbodonnell/collide/pkg/collisions"
	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/cbodonnell/collide/pkg/log"
)

// World is a built scene: one collision object per scene object, held in a
// collisions.Space. A World is not safe for concurrent use.
type World struct {
	name    string
	gravity float64
	space   *collisions.Space
	bodies  []*body
	names   map[collisions.Handle]string
}

type body struct {
	name     string
	handle   collisions.Handle
	object   *collisions.Object
	velocity kinematic.Vector
	static   bool
}

// Body is a snapshot of one object in a World.
type Body struct {
	Name     string           `json:"name"`
	Position kinematic.Vector `json:"position"`
	Velocity kinematic.Vector `json:"velocity"`
	Static   bool             `json:"static,omitempty"`
	AABB     collisions.AABB  `json:"aabb"`
}

// Overlap is an overlapping pair of named objects. Translation, when
// requested, moves A out of B.
type Overlap struct {
	A           string            `json:"a"`
	B           string            `json:"b"`
	Translation *kinematic.Vector `json:"translation,omitempty"`
}

// Build validates the scene and creates a collision object for every object.
// Concave shapes are triangulated once, while building.
func (s *Scene) Build() (*World, error) {
	if err := s.validate(false); err != nil {
		return nil, err
	}

	w := &World{
		name:    s.Name,
		gravity: s.Gravity,
		space:   collisions.NewSpace(),
		bodies:  make([]*body, 0, len(s.Objects)),
		names:   make(map[collisions.Handle]string, len(s.Objects)),
	}
	for i, obj := range s.Objects {
		shape, err := obj.Shape.Build()
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to build object %d: %v", i, err)
		}
		rotation := kinematic.Radians(obj.Rotation)
		if obj.RotationDegrees != 0 {
			rotation = kinematic.FromDegrees(obj.RotationDegrees)
		}
		name := obj.Name
		if name == "" {
			name = fmt.Sprintf("object-%d", i)
		}

		object := collisions.NewObject(shape, obj.Position, rotation)
		handle := w.space.Add(object)
		w.bodies = append(w.bodies, &body{
			name:     name,
			handle:   handle,
			object:   object,
			velocity: obj.Velocity,
			static:   obj.Static,
		})
		w.names[handle] = name
	}

	log.Debug("Built scene %q with %d objects", s.Name, len(w.bodies))
	return w, nil
}

func (w *World) Name() string {
	return w.name
}

func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns the objects in scene order.
func (w *World) Bodies() []Body {
	bodies := make([]Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		bodies = append(bodies, Body{
			Name:     b.name,
			Position: b.object.Position(),
			Velocity: b.velocity,
			Static:   b.static,
			AABB:     b.object.AABB(),
		})
	}
	return bodies
}

// Overlaps returns every overlapping pair, ordered by scene position.
func (w *World) Overlaps(wantTranslation bool) []Overlap {
	contacts := w.space.Pairs(wantTranslation)
	overlaps := make([]Overlap, 0, len(contacts))
	for _, c := range contacts {
		o := Overlap{
			A: w.names[c.A],
			B: w.names[c.B],
		}
		if wantTranslation {
			t := c.Translation
			o.Translation = &t
		}
		overlaps = append(overlaps, o)
	}
	return overlaps
}

// Step advances every non-static object by dt seconds under its velocity
// and the scene's gravity. Only positions change, so cached geometry is kept.
func (w *World) Step(dt float64) {
	acceleration := kinematic.Vector{Y: w.gravity}
	for _, b := range w.bodies {
		if b.static {
			continue
		}
		position, velocity := kinematic.Step(b.object.Position(), b.velocity, acceleration, dt)
		b.object.SetPosition(position)
		b.velocity = velocity
	}
	log.Trace("Stepped scene %q by %gs", w.name, dt)
}

// Close releases every object. The World must not be used afterwards.
func (w *World) Close() {
	for _, b := range w.bodies {
		w.space.Remove(b.handle)
		b.object.Release()
	}
	w.bodies = nil
	w.names = nil
}
