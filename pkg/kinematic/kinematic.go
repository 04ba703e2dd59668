package kinematic

// This package includes the 2D vector and angle primitives used by the
// collision engine, and the kinematic equations used to step scenes.

import (
	"math"
)

const (
	Gravity float64 = -9.8
)

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// FinalVelocity returns the final velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

// Step advances a position and velocity by time under a constant acceleration,
// applying Displacement and FinalVelocity per axis.
func Step(position Vector, velocity Vector, acceleration Vector, time float64) (Vector, Vector) {
	return Vector{
			X: position.X + Displacement(velocity.X, time, acceleration.X),
			Y: position.Y + Displacement(velocity.Y, time, acceleration.Y),
		}, Vector{
			X: FinalVelocity(velocity.X, time, acceleration.X),
			Y: FinalVelocity(velocity.Y, time, acceleration.Y),
		}
}
