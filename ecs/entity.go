package ecs

import "strconv"

// Entity is an opaque handle packing a 32-bit id and a generation so
// recycled ids don't alias destroyed entities.
type Entity uint64

const entityIDBits = 32

func makeEntity(id uint32, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

// Valid reports whether e could refer to an entity. It does not check
// liveness; use World.IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() != 0
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// entityStore tracks entity generations and recycles freed ids.
type entityStore struct {
	nextID uint32
	gens   []uint32
	free   []uint32
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gens = append(s.gens, 0)
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if id > uint32(len(s.gens)) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

// entityFor returns the live handle for a raw id, if any.
func (s *entityStore) entityFor(id int) (Entity, bool) {
	if s == nil || id <= 0 || id > len(s.gens) {
		return 0, false
	}
	e := makeEntity(uint32(id), s.gens[id-1])
	return e, true
}
