package core

import (
	"fmt"

	"github.com/google/uuid"
)

// PartType carries the kind specific attributes of a part. Concrete variants
// implement the unexported isPartType marker enabling a closed set.
type PartType interface {
	isPartType()
	Kind() Kind
}

// Hull plates the vessel and provides protection.
type Hull struct {
	Protection float32
}

func (Hull) isPartType() {}

// Kind returns KindHull.
func (Hull) Kind() Kind { return KindHull }

// Cargo is a storage bay.
type Cargo struct {
	Capacity uint16
}

func (Cargo) isPartType() {}

// Kind returns KindCargo.
func (Cargo) Kind() Kind { return KindCargo }

// Cockpit has no extra attributes.
type Cockpit struct{}

func (Cockpit) isPartType() {}

// Kind returns KindCockpit.
func (Cockpit) Kind() Kind { return KindCockpit }

// SolarPanels generate electricity and have no extra attributes.
type SolarPanels struct{}

func (SolarPanels) isPartType() {}

// Kind returns KindSolarPanels.
func (SolarPanels) Kind() Kind { return KindSolarPanels }

// LivingQuarters house the crew.
type LivingQuarters struct {
	Capacity uint16
}

func (LivingQuarters) isPartType() {}

// Kind returns KindLivingQuarters.
func (LivingQuarters) Kind() Kind { return KindLivingQuarters }

// AsHull returns the hull attributes if t is a Hull.
func AsHull(t PartType) (Hull, bool) {
	h, ok := t.(Hull)
	return h, ok
}

// AsCargo returns the cargo attributes if t is a Cargo bay.
func AsCargo(t PartType) (Cargo, bool) {
	c, ok := t.(Cargo)
	return c, ok
}

// AsLivingQuarters returns the living quarters attributes if t is LivingQuarters.
func AsLivingQuarters(t PartType) (LivingQuarters, bool) {
	lq, ok := t.(LivingQuarters)
	return lq, ok
}

// IsCargo reports whether t is a Cargo bay.
func IsCargo(t PartType) bool {
	_, ok := t.(Cargo)
	return ok
}

// Part is an immutable priced component. Health, electricity and cost are
// derived once from (kind, size, level) at construction and never recomputed.
// Electricity is signed: generating kinds are positive, consumers negative.
type Part struct {
	id    uuid.UUID
	typ   PartType
	size  uint16
	level uint16

	health      float32
	cost        float32
	electricity float32
}

// ID returns the unique part identifier.
func (p Part) ID() uuid.UUID { return p.id }

// Type returns the kind specific attributes.
func (p Part) Type() PartType { return p.typ }

// Kind returns the part kind.
func (p Part) Kind() Kind { return p.typ.Kind() }

// Size returns the part size.
func (p Part) Size() uint16 { return p.size }

// Level returns the part tier.
func (p Part) Level() uint16 { return p.level }

// Health returns the derived health capacity.
func (p Part) Health() float32 { return p.health }

// Cost returns the derived monetary cost of the part alone.
func (p Part) Cost() float32 { return p.cost }

// Electricity returns the derived net electricity contribution.
func (p Part) Electricity() float32 { return p.electricity }

// NewPart derives a part with a fresh identifier.
func NewPart(kind Kind, size, level uint16) Part {
	return DerivePart(kind, size, level, uuid.New())
}

// DerivePart computes a part from its kind, size and level. Sizes and levels
// are not range checked; zero values simply yield zero derived stats. It
// panics on a kind outside the enumerated set.
func DerivePart(kind Kind, size, level uint16, id uuid.UUID) Part {
	fsize := float32(size)
	flevel := float32(level)

	p := Part{id: id, size: size, level: level}

	switch kind {
	case KindHull:
		p.typ = Hull{Protection: fsize * 0.6 * flevel * 0.4}
		p.health = 0.4 * fsize * flevel
		p.electricity = -0.1 * fsize * flevel
		p.cost = 100 + 0.02*fsize + 50*flevel
	case KindCargo:
		p.typ = Cargo{Capacity: size + 10*level}
		p.health = 0.1 * fsize * flevel
		p.electricity = -0.2 * fsize * flevel
		p.cost = 50 + 0.08*fsize + 100*flevel
	case KindCockpit:
		p.typ = Cockpit{}
		p.health = 0.8 * fsize * flevel
		p.electricity = -0.8 * fsize * flevel
		p.cost = 100 + 0.1*fsize + 100*flevel
	case KindSolarPanels:
		p.typ = SolarPanels{}
		p.health = 0.8 * fsize * flevel
		p.electricity = 1.2 * fsize * flevel
		p.cost = 100 + 0.1*fsize + 100*flevel
	case KindLivingQuarters:
		p.typ = LivingQuarters{Capacity: size + 10*level}
		p.health = 0.8 * fsize * flevel
		p.electricity = -0.8 * fsize * flevel
		p.cost = 100 + 0.1*fsize + 100*flevel
	default:
		panic(fmt.Sprintf("core: unknown part kind %d", int(kind)))
	}

	return p
}
