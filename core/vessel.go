package core

import (
	"sync"

	"github.com/google/uuid"
)

// Vessel is the persistent, already paid for collection of installed parts.
// Its part sequence only changes through a successful Builder commit, which
// appends all staged parts at once.
//
// Contract:
//   - ID is generated once and stable for the vessel lifetime
//   - Parts are kept in installation order
//   - Iteration increments every time a Builder is opened
//   - At most one Builder is outstanding at a time
//   - Reads are safe while another goroutine commits a Builder
type Vessel struct {
	id        uuid.UUID
	name      string
	parts     []Part
	iteration uint16

	mu     sync.Mutex
	locked bool
}

// NewVessel creates an empty vessel with a fresh id and iteration zero.
func NewVessel(name string) *Vessel {
	return &Vessel{id: uuid.New(), name: name, parts: []Part{}}
}

// ID returns the vessel identifier.
func (v *Vessel) ID() uuid.UUID { return v.id }

// Name returns the display name.
func (v *Vessel) Name() string { return v.name }

// Iteration returns how many transactions have been opened against the vessel.
func (v *Vessel) Iteration() uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.iteration
}

// Len returns the number of installed parts.
func (v *Vessel) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.parts)
}

// Parts returns a defensive copy of the installed parts in installation order.
func (v *Vessel) Parts() []Part {
	v.mu.Lock()
	defer v.mu.Unlock()

	parts := make([]Part, len(v.parts))
	copy(parts, v.parts)
	return parts
}

// TotalSize returns the summed size of all installed parts.
func (v *Vessel) TotalSize() uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()

	var size uint16
	for _, p := range v.parts {
		size += p.size
	}
	return size
}

// InTransaction reports whether a Builder currently holds the vessel.
func (v *Vessel) InTransaction() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.locked
}

// acquire takes the transaction lock and bumps the iteration.
func (v *Vessel) acquire() (uint16, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.locked {
		return 0, ErrTransactionOpen
	}
	v.locked = true
	v.iteration++

	return v.iteration, nil
}

func (v *Vessel) release() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.locked = false
}

// appendAll installs parts in the order given. Only a committing Builder calls it.
func (v *Vessel) appendAll(parts []Part) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.parts = append(v.parts, parts...)
}
