package messages

import (
	"bytes"
	"fmt"
	"io"

	scenefb "github.com/cbodonnell/collide/flatbuffers/scene"
	"github.com/cbodonnell/collide/pkg/collisions"
	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/cbodonnell/collide/pkg/scene"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

func SerializeScene(s *scene.Scene) ([]byte, error) {
	b, err := SerializeSceneFlatbuffer(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize scene: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress scene: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeScene(data []byte) (*scene.Scene, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(MaxSnapshotSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed scene: %v", err)
	}

	s, err := DeserializeSceneFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize scene: %v", err)
	}

	return s, nil
}

func SerializeSceneFlatbuffer(s *scene.Scene) ([]byte, error) {
	builder := flatbuffers.NewBuilder(1024)

	objects := make([]flatbuffers.UOffsetT, 0, len(s.Objects))
	for i, obj := range s.Objects {
		object, err := SerializeObjectFlatbuffer(builder, &obj)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize object %d: %v", i, err)
		}
		objects = append(objects, object)
	}
	scenefb.SceneStartObjectsVector(builder, len(objects))
	for i := len(objects) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(objects[i])
	}
	objectsVector := builder.EndVector(len(objects))

	name := builder.CreateString(s.Name)

	scenefb.SceneStart(builder)
	scenefb.SceneAddName(builder, name)
	scenefb.SceneAddGravity(builder, s.Gravity)
	scenefb.SceneAddObjects(builder, objectsVector)
	sceneOffset := scenefb.SceneEnd(builder)
	builder.Finish(sceneOffset)

	return builder.FinishedBytes(), nil
}

func SerializeObjectFlatbuffer(builder *flatbuffers.Builder, obj *scene.Object) (flatbuffers.UOffsetT, error) {
	shape, err := SerializeShapeFlatbuffer(builder, &obj.Shape)
	if err != nil {
		return 0, err
	}
	name := builder.CreateString(obj.Name)
	position := serializeVec2(builder, obj.Position)
	velocity := serializeVec2(builder, obj.Velocity)

	rotation := obj.Rotation
	if obj.RotationDegrees != 0 {
		rotation = float64(kinematic.FromDegrees(obj.RotationDegrees))
	}

	scenefb.ObjectStart(builder)
	scenefb.ObjectAddName(builder, name)
	scenefb.ObjectAddShape(builder, shape)
	scenefb.ObjectAddPosition(builder, position)
	scenefb.ObjectAddRotation(builder, rotation)
	scenefb.ObjectAddVelocity(builder, velocity)
	scenefb.ObjectAddStatic(builder, obj.Static)
	return scenefb.ObjectEnd(builder), nil
}

// SerializeShapeFlatbuffer writes the shape and, for compounds, its children
// depth first. Nested tables must be finished before their parent starts.
func SerializeShapeFlatbuffer(builder *flatbuffers.Builder, s *scene.Shape) (flatbuffers.UOffsetT, error) {
	var points, start, end, children flatbuffers.UOffsetT
	kind := scenefb.ShapeKindNone
	orientation := scenefb.WindingUnknown

	switch s.Kind() {
	case "circle":
		kind = scenefb.ShapeKindCircle
	case "rectangle":
		kind = scenefb.ShapeKindRectangle
	case "polygon":
		kind = scenefb.ShapeKindPolygon
		points = serializePoints(builder, s.Polygon.Points)
	case "capsule":
		kind = scenefb.ShapeKindCapsule
		start = serializeVec2(builder, s.Capsule.Start)
		end = serializeVec2(builder, s.Capsule.End)
	case "concave":
		kind = scenefb.ShapeKindConcave
		points = serializePoints(builder, s.Concave.Points)
		o, err := collisions.ParseOrientation(s.Concave.Orientation)
		if err != nil {
			return 0, err
		}
		orientation = windingFromOrientation(o)
	case "compound":
		kind = scenefb.ShapeKindCompound
		offsets := make([]flatbuffers.UOffsetT, 0, len(s.Compound.Children))
		for i := range s.Compound.Children {
			child := &s.Compound.Children[i]
			childShape, err := SerializeShapeFlatbuffer(builder, &child.Shape)
			if err != nil {
				return 0, fmt.Errorf("failed to serialize child %d: %v", i, err)
			}
			offset := serializeVec2(builder, child.Offset)

			scenefb.ChildStart(builder)
			scenefb.ChildAddShape(builder, childShape)
			scenefb.ChildAddOffset(builder, offset)
			offsets = append(offsets, scenefb.ChildEnd(builder))
		}
		scenefb.ShapeStartChildrenVector(builder, len(offsets))
		for i := len(offsets) - 1; i >= 0; i-- {
			builder.PrependUOffsetT(offsets[i])
		}
		children = builder.EndVector(len(offsets))
	default:
		return 0, fmt.Errorf("shape must set exactly one kind")
	}

	scenefb.ShapeStart(builder)
	scenefb.ShapeAddKind(builder, kind)
	switch kind {
	case scenefb.ShapeKindCircle:
		scenefb.ShapeAddRadius(builder, s.Circle.Radius)
	case scenefb.ShapeKindRectangle:
		scenefb.ShapeAddHalfWidth(builder, s.Rectangle.HalfWidth)
		scenefb.ShapeAddHalfHeight(builder, s.Rectangle.HalfHeight)
	case scenefb.ShapeKindPolygon:
		scenefb.ShapeAddPoints(builder, points)
	case scenefb.ShapeKindCapsule:
		scenefb.ShapeAddRadius(builder, s.Capsule.Radius)
		scenefb.ShapeAddStart(builder, start)
		scenefb.ShapeAddEnd(builder, end)
	case scenefb.ShapeKindConcave:
		scenefb.ShapeAddPoints(builder, points)
		scenefb.ShapeAddOrientation(builder, orientation)
	case scenefb.ShapeKindCompound:
		scenefb.ShapeAddChildren(builder, children)
	}
	return scenefb.ShapeEnd(builder), nil
}

func serializeVec2(builder *flatbuffers.Builder, v kinematic.Vector) flatbuffers.UOffsetT {
	scenefb.Vec2Start(builder)
	scenefb.Vec2AddX(builder, v.X)
	scenefb.Vec2AddY(builder, v.Y)
	return scenefb.Vec2End(builder)
}

func serializePoints(builder *flatbuffers.Builder, points []kinematic.Vector) flatbuffers.UOffsetT {
	offsets := make([]flatbuffers.UOffsetT, 0, len(points))
	for _, p := range points {
		offsets = append(offsets, serializeVec2(builder, p))
	}
	scenefb.ShapeStartPointsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	return builder.EndVector(len(offsets))
}

// DeserializeSceneFlatbuffer decodes a snapshot. Malformed buffers make the
// flatbuffers accessors panic; that is reported as an error.
func DeserializeSceneFlatbuffer(b []byte) (s *scene.Scene, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("malformed scene flatbuffer: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("scene flatbuffer too short: %d bytes", len(b))
	}

	sceneFlatbuffer := scenefb.GetRootAsScene(b, 0)
	s = &scene.Scene{
		Name:    string(sceneFlatbuffer.Name()),
		Gravity: sceneFlatbuffer.Gravity(),
		Objects: make([]scene.Object, 0, sceneFlatbuffer.ObjectsLength()),
	}
	for i := 0; i < sceneFlatbuffer.ObjectsLength(); i++ {
		objectFlatbuffer := &scenefb.Object{}
		if !sceneFlatbuffer.Objects(objectFlatbuffer, i) {
			return nil, fmt.Errorf("failed to get object at index %d", i)
		}
		obj, err := ObjectFlatbufferToObject(objectFlatbuffer)
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize object %d: %v", i, err)
		}
		s.Objects = append(s.Objects, *obj)
	}

	return s, nil
}

func ObjectFlatbufferToObject(fb *scenefb.Object) (*scene.Object, error) {
	shapeFlatbuffer := fb.Shape(nil)
	if shapeFlatbuffer == nil {
		return nil, fmt.Errorf("object has no shape")
	}
	shape, err := ShapeFlatbufferToShape(shapeFlatbuffer)
	if err != nil {
		return nil, err
	}

	return &scene.Object{
		Name:     string(fb.Name()),
		Position: vec2ToVector(fb.Position(nil)),
		Rotation: fb.Rotation(),
		Velocity: vec2ToVector(fb.Velocity(nil)),
		Static:   fb.Static(),
		Shape:    *shape,
	}, nil
}

func ShapeFlatbufferToShape(fb *scenefb.Shape) (*scene.Shape, error) {
	shape := &scene.Shape{}
	switch fb.Kind() {
	case scenefb.ShapeKindCircle:
		shape.Circle = &scene.CircleShape{Radius: fb.Radius()}
	case scenefb.ShapeKindRectangle:
		shape.Rectangle = &scene.RectangleShape{HalfWidth: fb.HalfWidth(), HalfHeight: fb.HalfHeight()}
	case scenefb.ShapeKindPolygon:
		shape.Polygon = &scene.PolygonShape{Points: pointsFlatbufferToPoints(fb)}
	case scenefb.ShapeKindCapsule:
		shape.Capsule = &scene.CapsuleShape{
			Radius: fb.Radius(),
			Start:  vec2ToVector(fb.Start(nil)),
			End:    vec2ToVector(fb.End(nil)),
		}
	case scenefb.ShapeKindConcave:
		orientation, err := orientationFromWinding(fb.Orientation())
		if err != nil {
			return nil, err
		}
		shape.Concave = &scene.ConcaveShape{
			Points:      pointsFlatbufferToPoints(fb),
			Orientation: orientation.String(),
		}
	case scenefb.ShapeKindCompound:
		children := make([]scene.Child, 0, fb.ChildrenLength())
		for i := 0; i < fb.ChildrenLength(); i++ {
			childFlatbuffer := &scenefb.Child{}
			if !fb.Children(childFlatbuffer, i) {
				return nil, fmt.Errorf("failed to get child at index %d", i)
			}
			childShapeFlatbuffer := childFlatbuffer.Shape(nil)
			if childShapeFlatbuffer == nil {
				return nil, fmt.Errorf("child %d has no shape", i)
			}
			childShape, err := ShapeFlatbufferToShape(childShapeFlatbuffer)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize child %d: %v", i, err)
			}
			children = append(children, scene.Child{
				Offset: vec2ToVector(childFlatbuffer.Offset(nil)),
				Shape:  *childShape,
			})
		}
		shape.Compound = &scene.CompoundShape{Children: children}
	default:
		return nil, fmt.Errorf("unknown shape kind %s", fb.Kind())
	}
	return shape, nil
}

func vec2ToVector(fb *scenefb.Vec2) kinematic.Vector {
	if fb == nil {
		return kinematic.Vector{}
	}
	return kinematic.Vector{X: fb.X(), Y: fb.Y()}
}

func pointsFlatbufferToPoints(fb *scenefb.Shape) []kinematic.Vector {
	points := make([]kinematic.Vector, 0, fb.PointsLength())
	for i := 0; i < fb.PointsLength(); i++ {
		p := &scenefb.Vec2{}
		if fb.Points(p, i) {
			points = append(points, vec2ToVector(p))
		}
	}
	return points
}

func windingFromOrientation(o collisions.Orientation) scenefb.Winding {
	switch o {
	case collisions.Clockwise:
		return scenefb.WindingClockwise
	case collisions.CounterClockwise:
		return scenefb.WindingCounterClockwise
	default:
		return scenefb.WindingUnknown
	}
}

func orientationFromWinding(w scenefb.Winding) (collisions.Orientation, error) {
	switch w {
	case scenefb.WindingClockwise:
		return collisions.Clockwise, nil
	case scenefb.WindingCounterClockwise:
		return collisions.CounterClockwise, nil
	default:
		return collisions.Collinear, fmt.Errorf("unknown winding %s", w)
	}
}
