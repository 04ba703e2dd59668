// Package scene describes sets of collision objects in YAML and builds them
// into a World that can be stepped and checked for overlaps.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Scene struct {
	Name    string   `yaml:"name,omitempty"`
	Gravity float64  `yaml:"gravity,omitempty"`
	Objects []Object `yaml:"objects"`
}

// Object is one named shape in a scene. Static objects keep their position
// when the world is stepped and must not have a velocity.
type Object struct {
	Name            string           `yaml:"name,omitempty"`
	Position        kinematic.Vector `yaml:"position"`
	Rotation        float64          `yaml:"rotation,omitempty"`
	RotationDegrees float64          `yaml:"rotation_degrees,omitempty"`
	Velocity        kinematic.Vector `yaml:"velocity,omitempty"`
	Static          bool             `yaml:"static,omitempty"`
	Shape           Shape            `yaml:"shape"`
}

// Parse decodes a YAML scene, validates it and normalizes it.
// Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	s := &Scene{}
	if err := decoder.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene is empty")
		}
		return nil, fmt.Errorf("failed to decode scene: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %v", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %v", path, err)
	}
	return s, nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scene: %v", err)
	}
	return data, nil
}

// Validate checks every object and shape without building anything.
func (s *Scene) Validate() error {
	return s.validate(true)
}

func (s *Scene) validate(triangulate bool) error {
	if !finite(s.Gravity) {
		return fmt.Errorf("gravity must be finite")
	}
	names := make(map[string]struct{}, len(s.Objects))
	for i, obj := range s.Objects {
		path := fmt.Sprintf("objects[%d]", i)
		if obj.Name != "" {
			path = fmt.Sprintf("objects[%d] (%s)", i, obj.Name)
			if _, ok := names[obj.Name]; ok {
				return fmt.Errorf("%s: duplicate object name", path)
			}
			names[obj.Name] = struct{}{}
		}
		if !finite(obj.Position.X, obj.Position.Y, obj.Velocity.X, obj.Velocity.Y, obj.Rotation, obj.RotationDegrees) {
			return fmt.Errorf("%s: position, velocity and rotation must be finite", path)
		}
		if obj.Static && !obj.Velocity.IsZero() {
			return fmt.Errorf("%s: static objects cannot have a velocity", path)
		}
		if obj.Rotation != 0 && obj.RotationDegrees != 0 {
			return fmt.Errorf("%s: set rotation or rotation_degrees, not both", path)
		}
		if err := obj.Shape.validate(path+".shape", 0, triangulate); err != nil {
			return err
		}
	}
	return nil
}

// Normalize names unnamed objects with a uuid, folds rotation_degrees into
// rotation and spells orientations canonically. Normalizing twice is a no-op.
func (s *Scene) Normalize() {
	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.Name == "" {
			obj.Name = uuid.NewString()
		}
		if obj.RotationDegrees != 0 {
			obj.Rotation = float64(kinematic.FromDegrees(obj.RotationDegrees))
			obj.RotationDegrees = 0
		}
		obj.Shape.normalize()
	}
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
