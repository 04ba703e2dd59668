package collisions

import (
	"slices"

	"github.com/cbodonnell/collide/pkg/kinematic"
)

// Handle identifies an object in a Space. Handles are never reused; zero is invalid.
type Handle uint32

// Contact is an overlapping pair. Translation moves A out of B when requested.
type Contact struct {
	A           Handle
	B           Handle
	Translation kinematic.Vector
}

// Hit is an object overlapping a query.
type Hit struct {
	Handle      Handle
	Translation kinematic.Vector
}

// Space holds objects by handle and answers pairwise overlap queries.
// Every pair is culled by AABB before the narrow phase; there is no spatial
// partitioning. Space is not safe for concurrent use.
type Space struct {
	objects map[Handle]*Object
	next    Handle
}

func NewSpace() *Space {
	return &Space{
		objects: make(map[Handle]*Object),
	}
}

// Add stores obj and returns its handle.
func (s *Space) Add(obj *Object) Handle {
	s.next++
	s.objects[s.next] = obj
	return s.next
}

// Remove deletes the object from the space and returns it, or nil if absent.
func (s *Space) Remove(h Handle) *Object {
	obj, ok := s.objects[h]
	if !ok {
		return nil
	}
	delete(s.objects, h)
	return obj
}

func (s *Space) Get(h Handle) (*Object, bool) {
	obj, ok := s.objects[h]
	return obj, ok
}

func (s *Space) Len() int {
	return len(s.objects)
}

// Handles returns all handles in ascending order.
func (s *Space) Handles() []Handle {
	handles := make([]Handle, 0, len(s.objects))
	for h := range s.objects {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	return handles
}

// Query returns the objects overlapping obj in ascending handle order.
// obj need not be in the space; if it is, it is not reported against itself.
func (s *Space) Query(obj *Object, wantTranslation bool) []Hit {
	var hits []Hit
	for _, h := range s.Handles() {
		other := s.objects[h]
		if other == obj {
			continue
		}
		if ok, t := Overlap(obj, other, wantTranslation); ok {
			hits = append(hits, Hit{Handle: h, Translation: t})
		}
	}
	return hits
}

// Pairs returns every overlapping unordered pair with A < B.
func (s *Space) Pairs(wantTranslation bool) []Contact {
	handles := s.Handles()
	var contacts []Contact
	for i, a := range handles {
		for _, b := range handles[i+1:] {
			if ok, t := Overlap(s.objects[a], s.objects[b], wantTranslation); ok {
				contacts = append(contacts, Contact{A: a, B: b, Translation: t})
			}
		}
	}
	return contacts
}
