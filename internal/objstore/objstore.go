// Package objstore tracks the protocol objects belonging to a single
// connection.
package objstore

import (
	"deedles.dev/wldnd/wire"
	"golang.org/x/exp/slices"
)

type Store struct {
	objects map[uint32]wire.Object
	nextID  uint32
}

// New returns a store that allocates IDs starting at start for
// objects that are added without one.
func New(start uint32) *Store {
	return &Store{
		objects: make(map[uint32]wire.Object),
		nextID:  start,
	}
}

func (s *Store) Add(obj wire.Object) {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
		s.nextID++
	}

	s.objects[id] = obj
}

func (s *Store) Get(id uint32) wire.Object {
	return s.objects[id]
}

// Delete removes the object with the given ID and calls its Delete
// method. It returns the removed object, if any.
func (s *Store) Delete(id uint32) wire.Object {
	obj := s.objects[id]
	delete(s.objects, id)
	if obj != nil {
		obj.Delete()
	}
	return obj
}

// Clear deletes every object in the store. Objects are deleted in
// descending ID order so that objects created later go first.
func (s *Store) Clear() {
	ids := make([]uint32, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for i := len(ids) - 1; i >= 0; i-- {
		s.Delete(ids[i])
	}
}

func (s *Store) Len() int {
	return len(s.objects)
}
