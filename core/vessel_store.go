package core

import "github.com/google/uuid"

// VesselStore keeps vessels addressable by id. Implementations must be safe
// for concurrent use and must hand out the same *Vessel for an id, since the
// transaction lock lives on the vessel itself. Short method names mirror the
// other store style in this module.
type VesselStore interface {
	Create(name string) (*Vessel, error)
	Get(id uuid.UUID) (*Vessel, error)
	List() ([]*Vessel, error)
	Delete(id uuid.UUID) error
}
