package adapters

import (
	"github.com/rs/zerolog"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// CollectSink accumulates every reported diagnostic for later
// inspection. The zero value is ready to use.
type CollectSink struct {
	Diagnostics []types.Diagnostic
}

func (s *CollectSink) Report(d types.Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// Errors returns only the error-severity diagnostics.
func (s *CollectSink) Errors() []types.Diagnostic {
	var out []types.Diagnostic
	for _, d := range s.Diagnostics {
		if d.Severity == types.SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// LogSink forwards diagnostics to a zerolog logger, mapping severity
// to log level.
type LogSink struct {
	Logger zerolog.Logger
}

func NewLogSink(logger zerolog.Logger) LogSink {
	return LogSink{Logger: logger}
}

func (s LogSink) Report(d types.Diagnostic) {
	event := s.Logger.Error()
	if d.Severity == types.SeverityWarning {
		event = s.Logger.Warn()
	}
	if d.Offset >= 0 {
		event = event.Int("offset", d.Offset)
	}
	event.Str("code", string(d.Code)).Msg(d.Message)
}

var (
	_ ports.DiagnosticSink = (*CollectSink)(nil)
	_ ports.DiagnosticSink = LogSink{}
)
