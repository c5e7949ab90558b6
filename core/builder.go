package core

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/hupe1980/shipwright/logging"
)

const (
	// BaseCost is the fixed overhead of every transaction before scaling.
	BaseCost float32 = 1000.0
	// IterationSurcharge scales BaseCost per transaction opened on the vessel.
	IterationSurcharge float32 = 0.01
	// SizeSurcharge is charged per unit of total size already present when a
	// part is staged.
	SizeSurcharge float32 = 0.01
)

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	// Logger receives stage, unstage and finalize records. Defaults to a no-op logger.
	Logger logging.Logger
}

// Builder is a single use staging transaction bound to one Vessel. It
// accumulates candidate parts with a running cost and resolves through
// Finalize to either a commit into the vessel or a *PurchaseError that hands
// the Builder back untouched.
//
// Marginal cost of a part is its own cost plus SizeSurcharge times the total
// size present at the time (installed plus staged), so the running cost
// depends on staging order.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	vessel    *Vessel
	iteration uint16
	cost      float32
	parts     []Part
	closed    bool
	log       *loggerAdapter
}

// Open starts a transaction on v. It increments the vessel iteration and seeds
// the running cost with BaseCost scaled by that iteration. It fails with
// ErrTransactionOpen if another Builder is still outstanding on v.
func Open(v *Vessel, optFns ...func(o *BuilderOptions)) (*Builder, error) {
	opts := BuilderOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	iteration, err := v.acquire()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		vessel:    v,
		iteration: iteration,
		cost:      BaseCost * (1 + IterationSurcharge*float32(iteration)),
		parts:     []Part{},
		log:       newLoggerAdapter(opts.Logger),
	}

	b.log.LogDebug("transaction opened", "vessel_id", v.id.String(), "iteration", iteration, "cost", b.cost)

	return b, nil
}

// Vessel returns the bound vessel.
func (b *Builder) Vessel() *Vessel { return b.vessel }

// Iteration returns the vessel iteration snapshotted at open time.
func (b *Builder) Iteration() uint16 { return b.iteration }

// Cost returns the running total: scaled base cost plus every staged part's
// marginal cost.
func (b *Builder) Cost() float32 { return b.cost }

// Closed reports whether the transaction has been committed or discarded.
func (b *Builder) Closed() bool { return b.closed }

// Len returns the number of staged parts.
func (b *Builder) Len() int { return len(b.parts) }

// Size returns the installed size of the vessel plus the size of all staged parts.
func (b *Builder) Size() uint16 {
	size := b.vessel.TotalSize()
	for _, p := range b.parts {
		size += p.size
	}
	return size
}

// QuoteAddCost returns the marginal cost AddPart would charge right now for
// such a part, without staging anything.
func (b *Builder) QuoteAddCost(kind Kind, size, level uint16) float32 {
	return b.marginalCost(DerivePart(kind, size, level, uuid.Nil))
}

// AddPart derives a part with a fresh id, charges its marginal cost and stages it.
func (b *Builder) AddPart(kind Kind, size, level uint16) Part {
	p := NewPart(kind, size, level)
	b.InsertPart(p)
	return p
}

// InsertPart charges the marginal cost of an already derived part and stages it.
func (b *Builder) InsertPart(p Part) {
	marginal := b.marginalCost(p)
	b.cost += marginal
	b.parts = append(b.parts, p)

	b.log.LogDebug("part staged", "part_id", p.id.String(), "kind", p.Kind().String(), "marginal_cost", marginal, "cost", b.cost)
}

// PopLast unstages the most recently staged part. The marginal cost is
// recomputed after removal, which makes AddPart followed by PopLast restore
// the previous running cost up to float32 rounding. It returns false if
// nothing is staged.
func (b *Builder) PopLast() (Part, bool) {
	if len(b.parts) == 0 {
		return Part{}, false
	}

	last := len(b.parts) - 1
	p := b.parts[last]
	b.parts = b.parts[:last]
	b.unstaged(p)

	return p, true
}

// RemoveByID unstages the first staged part with the given id. The marginal
// cost is recomputed after removal against the remaining total size. It
// returns false if no staged part matches.
func (b *Builder) RemoveByID(id uuid.UUID) (Part, bool) {
	i := slices.IndexFunc(b.parts, func(p Part) bool { return p.id == id })
	if i < 0 {
		return Part{}, false
	}

	p := b.parts[i]
	b.parts = slices.Delete(b.parts, i, i+1)
	b.unstaged(p)

	return p, true
}

// Parts yields the staged parts in staging order. Each range reads the live
// staging state, so the sequence may be ranged repeatedly.
func (b *Builder) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for _, p := range b.parts {
			if !yield(p) {
				return
			}
		}
	}
}

// Finalize resolves the transaction against the available funds.
//
// If *funds exceeds Cost, the cost is deducted from *funds, every staged part
// is drained into the vessel last staged first, and the vessel lock is
// released. Otherwise Finalize returns a *PurchaseError carrying this Builder
// with staged parts, cost and *funds left unchanged.
//
// funds must not be nil.
func (b *Builder) Finalize(funds *float32) error {
	if b.closed {
		return ErrTransactionClosed
	}

	if *funds <= b.cost {
		b.log.LogDebug("transaction rejected", "vessel_id", b.vessel.id.String(), "reason", TooLittleFunds{}.String(), "funds", *funds, "cost", b.cost)
		return &PurchaseError{Builder: b, Reason: TooLittleFunds{}}
	}

	*funds -= b.cost

	drained := make([]Part, 0, len(b.parts))
	for len(b.parts) > 0 {
		last := len(b.parts) - 1
		drained = append(drained, b.parts[last])
		b.parts = b.parts[:last]
	}
	b.vessel.appendAll(drained)

	b.close()
	b.log.LogDebug("transaction committed", "vessel_id", b.vessel.id.String(), "iteration", b.iteration, "parts", len(drained), "cost", b.cost, "funds_left", *funds)

	return nil
}

// Discard abandons the transaction, leaving the vessel untouched and
// releasing its lock. Discarding a closed Builder is a no-op.
func (b *Builder) Discard() {
	if b.closed {
		return
	}

	b.parts = b.parts[:0]
	b.close()
	b.log.LogDebug("transaction discarded", "vessel_id", b.vessel.id.String(), "iteration", b.iteration)
}

func (b *Builder) close() {
	b.closed = true
	b.vessel.release()
}

func (b *Builder) marginalCost(p Part) float32 {
	return p.cost + SizeSurcharge*float32(b.Size())
}

func (b *Builder) unstaged(p Part) {
	marginal := b.marginalCost(p)
	b.cost -= marginal

	b.log.LogDebug("part unstaged", "part_id", p.id.String(), "kind", p.Kind().String(), "marginal_cost", marginal, "cost", b.cost)
}
