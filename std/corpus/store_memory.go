package corpus

import (
	"maps"
	"slices"
	"sync"
)

// MemoryStore is a Store held in memory.
type MemoryStore struct {
	db *memoryDB

	// pending writes of a transaction, nil outside one.
	// A nil value marks a removal.
	tx map[Key][]byte
}

type memoryDB struct {
	// stored units
	units map[Key][]byte
	// thread safety
	mutex sync.RWMutex
	// one write transaction at a time
	txMutex sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: &memoryDB{units: make(map[Key][]byte)}}
}

func (s *MemoryStore) String() string {
	return "memory-store"
}

func (s *MemoryStore) Get(key Key) ([]byte, error) {
	if s.tx != nil {
		if wire, ok := s.tx[key]; ok {
			return wire, nil
		}
	}

	s.db.mutex.RLock()
	defer s.db.mutex.RUnlock()
	return s.db.units[key], nil
}

func (s *MemoryStore) Put(wire []byte) (Key, error) {
	key := KeyOf(wire)
	wire = slices.Clone(wire)
	if wire == nil {
		wire = []byte{}
	}

	if s.tx != nil {
		s.tx[key] = wire
		return key, nil
	}

	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	s.db.units[key] = wire
	return key, nil
}

func (s *MemoryStore) Remove(key Key) error {
	if s.tx != nil {
		s.tx[key] = nil
		return nil
	}

	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	delete(s.db.units, key)
	return nil
}

// keys returns the visible keys in ascending order.
func (s *MemoryStore) keys() []Key {
	s.db.mutex.RLock()
	set := maps.Clone(s.db.units)
	s.db.mutex.RUnlock()

	for key, wire := range s.tx {
		if wire == nil {
			delete(set, key)
		} else {
			set[key] = wire
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func (s *MemoryStore) Walk(fn func(key Key, wire []byte) error) error {
	for _, key := range s.keys() {
		wire, _ := s.Get(key)
		if wire == nil {
			continue // removed meanwhile
		}
		if err := fn(key, wire); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Len() (int, error) {
	if s.tx == nil {
		s.db.mutex.RLock()
		defer s.db.mutex.RUnlock()
		return len(s.db.units), nil
	}
	return len(s.keys()), nil
}

func (s *MemoryStore) Begin() (Store, error) {
	if s.tx != nil {
		panic("Begin() called within a write transaction")
	}
	s.db.txMutex.Lock()
	return &MemoryStore{db: s.db, tx: make(map[Key][]byte)}, nil
}

func (s *MemoryStore) Commit() error {
	if s.tx == nil {
		panic("Commit() called without a write transaction")
	}
	defer s.db.txMutex.Unlock()

	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	for key, wire := range s.tx {
		if wire == nil {
			delete(s.db.units, key)
		} else {
			s.db.units[key] = wire
		}
	}
	s.tx = nil
	return nil
}

func (s *MemoryStore) Rollback() error {
	if s.tx == nil {
		panic("Rollback() called without a write transaction")
	}
	defer s.db.txMutex.Unlock()
	s.tx = nil
	return nil
}

// MemSize returns the total size of the stored units.
func (s *MemoryStore) MemSize() int {
	s.db.mutex.RLock()
	defer s.db.mutex.RUnlock()
	size := 0
	for _, wire := range s.db.units {
		size += len(wire)
	}
	return size
}

func (s *MemoryStore) Close() error {
	return nil
}
