package types

import "fmt"

// DiagnosticSeverity classifies how a reported defect affected the
// operation that reported it.
type DiagnosticSeverity string

const (
	// SeverityError marks a defect that dropped a line or entry.
	SeverityError DiagnosticSeverity = "error"

	// SeverityWarning marks a defect the operation recovered from
	// without dropping anything (e.g. a sibling probe that failed
	// to load before falling back).
	SeverityWarning DiagnosticSeverity = "warning"
)

// DiagnosticCode names a defect category.
type DiagnosticCode string

const (
	DiagMissingName      DiagnosticCode = "missing-package-name"
	DiagMissingSeparator DiagnosticCode = "missing-separator"
	DiagInvalidName      DiagnosticCode = "invalid-package-name"
	DiagQueryFragment    DiagnosticCode = "query-or-fragment"
	DiagBadReference     DiagnosticCode = "bad-location-reference"
	DiagPackageScheme    DiagnosticCode = "package-scheme-location"
	DiagDuplicateName    DiagnosticCode = "duplicate-package-name"
	DiagBadArgument      DiagnosticCode = "bad-argument"
	DiagLoadFailed       DiagnosticCode = "load-failed"
	DiagBadFormat        DiagnosticCode = "bad-format"
	DiagBadVersion       DiagnosticCode = "bad-version"
)

// Diagnostic is the value delivered to a DiagnosticSink when a parse
// or resolution step encounters a defect it can report and recover
// from. Offset is a byte offset into the buffer being scanned, or -1
// when no buffer position applies (argument and I/O failures).
type Diagnostic struct {
	Severity DiagnosticSeverity
	Code     DiagnosticCode
	Message  string
	Offset   int
}

func (d Diagnostic) String() string {
	if d.Offset < 0 {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s at offset %d: %s", d.Severity, d.Code, d.Offset, d.Message)
}
