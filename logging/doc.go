// Package logging provides a minimal logging interface and adapters for shipwright.
//
// The Logger interface defines the levelled methods (Debug, Info, Warn, Error)
// that builders, the registry and the shipyard façade use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping an existing *slog.Logger
//   - ShipLogger with vessel / transaction context helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	yard := shipwright.New(func(o *shipwright.Options) { o.Logger = logger })
package logging
