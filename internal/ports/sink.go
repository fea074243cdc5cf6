package ports

import "github.com/MichaelRFairhurst/package-config/internal/types"

// DiagnosticSink receives recoverable defects encountered during a
// single parse, write, or resolution call. Implementations may
// collect, log, or escalate; the reporting operation always continues
// after Report returns. A sink is created by the caller, used for one
// call, and discarded.
type DiagnosticSink interface {
	Report(d types.Diagnostic)
}
