// Package shipwright provides a high-level façade over the core costing
// engine, composing a vessel store, a logger and optional Prometheus metrics.
// Most applications interact with this package by:
//  1. Creating a Shipyard via New() (optionally overriding the in-memory store)
//  2. Registering vessels with CreateVessel
//  3. Opening a transaction with Open, staging parts on the returned Builder
//     (directly or through ApplyBlueprint)
//  4. Resolving it with Finalize, or abandoning it with Discard
//
// A rejected Finalize returns a *core.PurchaseError whose Builder is still
// open; pass it back to Finalize after unstaging parts, or Discard it.
package shipwright

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/shipwright/blueprint"
	"github.com/hupe1980/shipwright/core"
	"github.com/hupe1980/shipwright/logging"
	"github.com/hupe1980/shipwright/metrics"
	"github.com/hupe1980/shipwright/registry"
)

// Options configures the Shipyard instance.
type Options struct {
	// Store keeps vessels addressable by id (defaults to an in-memory store).
	Store core.VesselStore

	// Logger (defaults to NoOp logger if nil). Builders opened through the
	// shipyard log through it as well.
	Logger logging.Logger

	// Metrics records transaction outcomes. Nil disables metrics.
	Metrics *metrics.Collector
}

// Shipyard is the façade aggregating the vessel store with logging and metrics.
type Shipyard struct {
	opts Options
}

// New creates a new Shipyard with optional overrides.
func New(optFns ...func(o *Options)) *Shipyard {
	opts := Options{
		Store:  registry.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Shipyard{opts: opts}
}

// CreateVessel registers a new empty vessel.
func (y *Shipyard) CreateVessel(name string) (*core.Vessel, error) {
	v, err := y.opts.Store.Create(name)
	if err != nil {
		return nil, err
	}
	y.opts.Logger.Info("vessel created", "vessel_id", v.ID().String(), "name", name)
	return v, nil
}

// Vessel returns a registered vessel.
func (y *Shipyard) Vessel(id uuid.UUID) (*core.Vessel, error) {
	return y.opts.Store.Get(id)
}

// Vessels lists every registered vessel.
func (y *Shipyard) Vessels() ([]*core.Vessel, error) {
	return y.opts.Store.List()
}

// Open starts a transaction on the vessel with the given id.
func (y *Shipyard) Open(id uuid.UUID) (*core.Builder, error) {
	v, err := y.opts.Store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("open vessel %s: %w", id, err)
	}

	b, err := core.Open(v, func(o *core.BuilderOptions) { o.Logger = y.opts.Logger })
	if err != nil {
		return nil, fmt.Errorf("open vessel %s: %w", id, err)
	}

	if y.opts.Metrics != nil {
		y.opts.Metrics.RecordOpen()
	}

	return b, nil
}

// ApplyBlueprint stages every blueprint entry into b.
func (y *Shipyard) ApplyBlueprint(b *core.Builder, bp *blueprint.Blueprint) []core.Part {
	parts := bp.Apply(b)
	y.opts.Logger.Debug("blueprint applied", "vessel_id", b.Vessel().ID().String(), "blueprint", bp.Name, "parts", len(parts), "cost", b.Cost())
	return parts
}

// Finalize resolves b against funds, recording the outcome. See core.Builder.Finalize.
func (y *Shipyard) Finalize(b *core.Builder, funds *float32) error {
	staged := make([]core.Part, 0, b.Len())
	for p := range b.Parts() {
		staged = append(staged, p)
	}
	cost := b.Cost()
	start := time.Now()

	err := b.Finalize(funds)
	if errors.Is(err, core.ErrTransactionClosed) {
		return err
	}

	attrs := []any{"vessel_id", b.Vessel().ID().String(), "iteration", b.Iteration(), "part_count", len(staged), "cost", cost, "funds", *funds, "duration", time.Since(start)}
	if err != nil {
		y.opts.Logger.Warn("purchase rejected", append(attrs, "error", err.Error())...)
		if y.opts.Metrics != nil {
			y.opts.Metrics.RecordFailure(err)
		}
		return err
	}

	y.opts.Logger.Info("purchase committed", attrs...)
	if y.opts.Metrics != nil {
		y.opts.Metrics.RecordCommit(cost, staged)
	}
	return nil
}

// Discard abandons b, leaving its vessel untouched.
func (y *Shipyard) Discard(b *core.Builder) {
	if b.Closed() {
		return
	}
	b.Discard()
	if y.opts.Metrics != nil {
		y.opts.Metrics.RecordDiscard()
	}
}
