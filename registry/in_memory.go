package registry

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hupe1980/shipwright/core"
)

type vesselSpec struct {
	Name string `validate:"required,max=64"`
}

// InMemoryStore is a volatile VesselStore keeping vessels in a process local
// map. It is safe for concurrent access and returns the stored *Vessel
// itself, so a transaction opened through one lookup is visible to the next.
// Creation order is preserved for List.
type InMemoryStore struct {
	mu       sync.RWMutex
	vessels  map[uuid.UUID]*core.Vessel
	order    []uuid.UUID
	validate *validator.Validate
}

// NewInMemoryStore constructs an empty in-memory vessel store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		vessels:  make(map[uuid.UUID]*core.Vessel),
		validate: validator.New(),
	}
}

// Create registers a new empty vessel. Names must be non-empty and at most
// 64 characters.
func (s *InMemoryStore) Create(name string) (*core.Vessel, error) {
	if err := s.validate.Struct(vesselSpec{Name: name}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v := core.NewVessel(name)
	s.vessels[v.ID()] = v
	s.order = append(s.order, v.ID())
	return v, nil
}

// Get returns the vessel registered under id or ErrNotFound.
func (s *InMemoryStore) Get(id uuid.UUID) (*core.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vessels[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// List returns every registered vessel in creation order. The slice is a
// snapshot and safe for caller mutation.
func (s *InMemoryStore) List() ([]*core.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Vessel, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.vessels[id])
	}
	return out, nil
}

// Delete unregisters a vessel. Vessels with an open transaction cannot be removed.
func (s *InMemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vessels[id]
	if !ok {
		return ErrNotFound
	}
	if v.InTransaction() {
		return ErrInTransaction
	}
	delete(s.vessels, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
