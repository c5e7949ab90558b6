// Package core provides the domain types of the shipwright costing engine:
//
//   - Part (immutable, priced component with kind specific derived stats)
//   - Vessel (persistent aggregate of already paid for parts)
//   - Builder (single use staging transaction bound to one vessel)
//   - FailureReason / PurchaseError (typed outcome of a failed purchase)
//
// A Builder is the only mutation path into a Vessel. While a Builder is
// outstanding its vessel refuses to open a second one; the lock is released
// on a successful Finalize or an explicit Discard. A failed Finalize hands the
// still open Builder back inside a *PurchaseError so the caller can inspect,
// unstage parts or retry with more funds.
//
// The package is single threaded per vessel and has no external dependencies
// besides identifiers and the logging interface.
package core
