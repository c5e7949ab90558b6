package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransactionOpen is returned by Open while another Builder holds the vessel.
	ErrTransactionOpen = errors.New("vessel already has an open transaction")
	// ErrTransactionClosed is returned when a committed or discarded Builder is finalized again.
	ErrTransactionClosed = errors.New("transaction already closed")

	// ErrTooLittleFunds is the sentinel behind TooLittleFunds failures.
	ErrTooLittleFunds = errors.New("too little funds")
	// ErrMissingParts is the sentinel behind MissingParts failures.
	ErrMissingParts = errors.New("missing required parts")
	// ErrElectricityDeficit is the sentinel behind ElectricityDeficit failures.
	ErrElectricityDeficit = errors.New("electricity deficit")
	// ErrNotEnoughProtection is the sentinel behind NotEnoughProtection failures.
	ErrNotEnoughProtection = errors.New("not enough protection")
)

// FailureReason explains why a purchase was rejected. Concrete reasons
// implement the unexported isFailureReason marker enabling a closed set.
//
// Only TooLittleFunds is produced today. MissingParts, ElectricityDeficit and
// NotEnoughProtection are reserved so callers can already switch over them.
type FailureReason interface {
	isFailureReason()
	sentinel() error
	String() string
}

// TooLittleFunds means the available funds did not exceed the transaction cost.
type TooLittleFunds struct{}

func (TooLittleFunds) isFailureReason() {}
func (TooLittleFunds) sentinel() error  { return ErrTooLittleFunds }
func (TooLittleFunds) String() string   { return ErrTooLittleFunds.Error() }

// MissingParts lists required kinds absent from the vessel.
type MissingParts struct {
	Kinds []Kind
}

func (MissingParts) isFailureReason() {}
func (MissingParts) sentinel() error  { return ErrMissingParts }

func (m MissingParts) String() string {
	names := make([]string, 0, len(m.Kinds))
	for _, k := range m.Kinds {
		names = append(names, k.String())
	}
	return fmt.Sprintf("%s: [%s]", ErrMissingParts, strings.Join(names, ", "))
}

// ElectricityDeficit means the vessel would consume more than it generates.
type ElectricityDeficit struct{}

func (ElectricityDeficit) isFailureReason() {}
func (ElectricityDeficit) sentinel() error  { return ErrElectricityDeficit }
func (ElectricityDeficit) String() string   { return ErrElectricityDeficit.Error() }

// NotEnoughProtection means the hull would not sufficiently protect the vessel.
type NotEnoughProtection struct{}

func (NotEnoughProtection) isFailureReason() {}
func (NotEnoughProtection) sentinel() error  { return ErrNotEnoughProtection }
func (NotEnoughProtection) String() string   { return ErrNotEnoughProtection.Error() }

// PurchaseError is returned by Builder.Finalize when the purchase is rejected.
// It owns the still open Builder with its staged parts and running cost
// untouched, so the caller can unstage parts and retry, or Discard it.
type PurchaseError struct {
	Builder *Builder
	Reason  FailureReason
}

// Error implements error.
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase failed: %s", e.Reason)
}

// Unwrap exposes the sentinel matching the reason for errors.Is.
func (e *PurchaseError) Unwrap() error { return e.Reason.sentinel() }
