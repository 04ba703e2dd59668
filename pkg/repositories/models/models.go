package models

import "time"

// Scene is a stored scene snapshot. Data holds the compressed flatbuffer
// encoding and is left out of listings.
type Scene struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
