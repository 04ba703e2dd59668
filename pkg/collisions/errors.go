package collisions

import "errors"

// ErrDegenerateGeometry is returned when input geometry cannot produce a
// meaningful shape, such as a concave polygon with collinear vertices.
type ErrDegenerateGeometry struct {
	Reason string
}

func (e *ErrDegenerateGeometry) Error() string {
	return "degenerate geometry: " + e.Reason
}

func IsDegenerateGeometry(err error) bool {
	var target *ErrDegenerateGeometry
	return errors.As(err, &target)
}
