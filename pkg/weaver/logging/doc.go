// Package logging provides the logging facade used across weaver.
//
// Logger wraps the subset of log/slog the runtime needs. Every component that
// logs (the closure bridge, the orchestrator, profile loading) accepts a
// Logger so that integrators can route runtime diagnostics into their own
// handler, or silence them:
//
//	logger := logging.New(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//	b := bridge.New(bridge.WithLogger(logger))
//
// Passing nil to New binds to slog.Default(). Nop discards everything and is
// what tests use. NewZerolog adapts a zerolog.Logger for programs that already
// log through zerolog; the weaver-go command uses it with a console writer.
//
// Keys shared by several components are exported as constants so log
// queries stay stable: KeyEntity, KeyGroup, KeySlot.
package logging
