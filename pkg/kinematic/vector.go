package kinematic

import (
	"fmt"
	"math"
)

// Vector is a 2D vector of float64 components.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies component-wise.
func (v Vector) Mul(other Vector) Vector {
	return Vector{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div divides component-wise.
func (v Vector) Div(other Vector) Vector {
	return Vector{X: v.X / other.X, Y: v.Y / other.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) DivScalar(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// YX returns the vector with its components swapped.
func (v Vector) YX() Vector {
	return Vector{X: v.Y, Y: v.X}
}

// Perpendicular returns v rotated by -90 degrees.
func (v Vector) Perpendicular() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// Rotate rotates v about the origin.
func (v Vector) Rotate(angle Radians) Vector {
	sin, cos := math.Sincos(float64(angle))
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAround rotates v about pivot.
func (v Vector) RotateAround(pivot Vector, angle Radians) Vector {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// Min returns the component-wise minimum.
func (v Vector) Min(other Vector) Vector {
	return Vector{X: math.Min(v.X, other.X), Y: math.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vector) Max(other Vector) Vector {
	return Vector{X: math.Max(v.X, other.X), Y: math.Max(v.Y, other.Y)}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
