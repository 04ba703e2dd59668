package messages

import (
	"testing"

	"github.com/cbodonnell/collide/pkg/kinematic"
	"github.com/cbodonnell/collide/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeScene(t *testing.T) {
	demo, err := scene.Load("../scene/testdata/demo.yaml")
	require.NoError(t, err)

	tests := []struct {
		name  string
		scene *scene.Scene
	}{
		{
			name:  "demo scene",
			scene: demo,
		},
		{
			name: "every shape kind",
			scene: &scene.Scene{
				Name:    "kinds",
				Gravity: -1.5,
				Objects: []scene.Object{
					{
						Name:     "c",
						Position: kinematic.Vector{X: 1, Y: 2},
						Velocity: kinematic.Vector{X: -3, Y: 0.25},
						Shape:    scene.Shape{Circle: &scene.CircleShape{Radius: 2}},
					},
					{
						Name:     "r",
						Rotation: 0.5,
						Static:   true,
						Shape:    scene.Shape{Rectangle: &scene.RectangleShape{HalfWidth: 1, HalfHeight: 3}},
					},
					{
						Name: "p",
						Shape: scene.Shape{Polygon: &scene.PolygonShape{Points: []kinematic.Vector{
							{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
						}}},
					},
					{
						Name: "cap",
						Shape: scene.Shape{Capsule: &scene.CapsuleShape{
							Radius: 0.5,
							Start:  kinematic.Vector{X: -1, Y: 0},
							End:    kinematic.Vector{X: 1, Y: 0},
						}},
					},
					{
						Name: "concave",
						Shape: scene.Shape{Concave: &scene.ConcaveShape{
							Orientation: "counter_clockwise",
							Points: []kinematic.Vector{
								{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}, {X: 2, Y: 4},
							},
						}},
					},
					{
						Name: "nested",
						Shape: scene.Shape{Compound: &scene.CompoundShape{Children: []scene.Child{
							{
								Offset: kinematic.Vector{X: 1, Y: 1},
								Shape: scene.Shape{Compound: &scene.CompoundShape{Children: []scene.Child{
									{Offset: kinematic.Vector{X: -1}, Shape: scene.Shape{Circle: &scene.CircleShape{Radius: 0.5}}},
								}}},
							},
							{Shape: scene.Shape{Rectangle: &scene.RectangleShape{HalfWidth: 2, HalfHeight: 0.1}}},
						}}},
					},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeScene(tt.scene)
			require.NoError(t, err)

			got, err := DeserializeScene(b)
			require.NoError(t, err)
			assert.Equal(t, tt.scene, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestSerializeScene_FoldsRotationDegrees(t *testing.T) {
	s := &scene.Scene{Objects: []scene.Object{{
		Name:            "r",
		RotationDegrees: 90,
		Shape:           scene.Shape{Circle: &scene.CircleShape{Radius: 1}},
	}}}

	b, err := SerializeScene(s)
	require.NoError(t, err)
	got, err := DeserializeScene(b)
	require.NoError(t, err)

	assert.InDelta(t, float64(kinematic.Up), got.Objects[0].Rotation, 1e-12)
	assert.Zero(t, got.Objects[0].RotationDegrees)
}

func TestSerializeScene_RejectsInvalidShape(t *testing.T) {
	s := &scene.Scene{Objects: []scene.Object{{Name: "empty"}}}
	_, err := SerializeScene(s)
	assert.Error(t, err)

	s.Objects[0].Shape = scene.Shape{Concave: &scene.ConcaveShape{Orientation: "sideways"}}
	_, err = SerializeScene(s)
	assert.Error(t, err)
}

func TestDeserializeScene_Errors(t *testing.T) {
	_, err := DeserializeScene([]byte("definitely not zstd"))
	assert.Error(t, err)

	_, err = DeserializeSceneFlatbuffer([]byte{1})
	assert.Error(t, err)

	_, err = DeserializeSceneFlatbuffer([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	assert.Error(t, err)
}
