// Package registry contains concrete implementations of core.VesselStore.
//
// The canonical VesselStore interface lives in the core package next to the
// Vessel type. Implementations here only decide where vessels are kept; the
// transaction rules stay in core.
package registry
