package kinematic

import "math"

// Radians is an angle in radians. Any value is valid; no range normalization is applied.
type Radians float64

const (
	Right Radians = 0
	Up    Radians = math.Pi / 2
	Left  Radians = math.Pi
	Down  Radians = 3 * math.Pi / 2
)

// FromDegrees converts an angle in degrees to Radians.
func FromDegrees(degrees float64) Radians {
	return Radians(degrees * math.Pi / 180)
}

// Degrees returns the angle in degrees.
func (r Radians) Degrees() float64 {
	return float64(r) * 180 / math.Pi
}
