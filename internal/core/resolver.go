package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// ReadConfig loads and parses a package configuration, choosing the
// on-disk format by sniffing the loaded bytes.
//
// When the requested file turns out to be a legacy .packages file and
// preferNewest is set, the canonical sibling package_config.json is
// probed first: if it exists and loads, it is parsed instead and the
// requested bytes are never parsed. An absent sibling falls back to
// the legacy bytes silently; a sibling that exists but fails to load
// is reported through the sink before falling back. Both cases
// converge on the same result but are deliberately distinguishable
// for monitoring.
//
// A failure to load the requested file itself is reported through the
// sink and yields an empty configuration, never an error: downstream
// tooling degrades to "no mapping" instead of crashing. The only
// error return is the up-front argument check on the requested
// location's scheme.
func ReadConfig(ctx context.Context, requested *url.URL, preferNewest bool, loader ports.ByteLoader, sink ports.DiagnosticSink) (*types.PackageConfig, error) {
	if requested.Scheme == "package" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requested location must not be a package: URI")
	}

	source, err := loader.Load(ctx, requested)
	if err != nil {
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagLoadFailed,
			Message:  fmt.Sprintf("cannot load %s: %v", requested, err),
			Offset:   -1,
		})
		return &types.PackageConfig{Version: types.FormatVersionLegacy}, nil
	}

	if DetectFormat(source) == FormatJSON {
		return ParseJSON(source, requested, sink), nil
	}

	if preferNewest {
		sibling := shared.SiblingConfig(requested)
		siblingSource, err := loader.Load(ctx, sibling)
		switch {
		case err == nil:
			return ParseJSON(siblingSource, sibling, sink), nil
		case errors.Is(err, ports.ErrNotFound):
			log.Debug().Stringer("sibling", sibling).Msg("no structured config next to legacy file")
		default:
			sink.Report(types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagLoadFailed,
				Message:  fmt.Sprintf("cannot load sibling config %s: %v", sibling, err),
				Offset:   -1,
			})
		}
	}
	return ParseLegacy(source, requested, sink), nil
}
