package testutil

import (
	"testing"

	"github.com/hupe1980/shipwright/core"
)

// UnlimitedFunds comfortably covers any fixture purchase.
const UnlimitedFunds float32 = 1e9

// PartSpec is a (kind, size, level) request used by fixtures.
type PartSpec struct {
	Kind  core.Kind
	Size  uint16
	Level uint16
}

// CommitParts stages specs on v in order and commits them with unlimited
// funds, failing the test on any error. It returns the committed cost.
func CommitParts(tb testing.TB, v *core.Vessel, specs ...PartSpec) float32 {
	tb.Helper()
	b, err := core.Open(v)
	if err != nil {
		tb.Fatalf("open vessel: %v", err)
	}
	for _, s := range specs {
		b.AddPart(s.Kind, s.Size, s.Level)
	}
	cost := b.Cost()
	funds := UnlimitedFunds
	if err := b.Finalize(&funds); err != nil {
		tb.Fatalf("finalize: %v", err)
	}
	return cost
}
