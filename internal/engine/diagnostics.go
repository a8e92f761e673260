package engine

// Diagnostics is the kernel's only window onto the outside world. It is
// declared here, not implemented here, so that the single-threaded,
// lock-free kernel never has to import zap (or anything else with its own
// opinions about concurrency). internal/diagnostics supplies the real,
// zap-backed sink; tests can pass a no-op or recording stub.
type Diagnostics interface {
	// Info logs a normal state transition: phase change, outcome achieved,
	// game end.
	Info(msg string, kv ...any)
	// Warn logs a veto or another recoverable anomaly (limit reached,
	// constraint violation, handler returned something odd).
	Warn(msg string, kv ...any)
	// Error logs a handler or action failure captured into history.
	Error(msg string, kv ...any)
}

// noopDiagnostics discards everything. Used when a Game is constructed
// without an explicit Diagnostics sink (tests, scratch games).
type noopDiagnostics struct{}

func (noopDiagnostics) Info(string, ...any)  {}
func (noopDiagnostics) Warn(string, ...any)  {}
func (noopDiagnostics) Error(string, ...any) {}

// NoopDiagnostics returns a Diagnostics sink that discards everything.
func NoopDiagnostics() Diagnostics { return noopDiagnostics{} }
