package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// LegacyConfigName is the file name of the legacy format.
const LegacyConfigName = ".packages"

// FindConfig walks up from a directory looking for a package
// configuration: in each directory the structured
// .dart_tool/package_config.json is preferred over a legacy .packages
// file. Returns the location that was parsed alongside the parsed
// configuration, or a not-found error when the walk reaches the root
// without a hit.
func FindConfig(ctx context.Context, dir *url.URL, loader ports.ByteLoader, sink ports.DiagnosticSink) (*url.URL, *types.PackageConfig, error) {
	current := shared.EnsureDirectory(dir)
	for {
		structured := current.ResolveReference(&url.URL{Path: shared.SiblingConfigPath})
		if source, err := loader.Load(ctx, structured); err == nil {
			return structured, ParseJSON(source, structured, sink), nil
		} else if !errors.Is(err, ports.ErrNotFound) {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagLoadFailed,
				Message:  fmt.Sprintf("cannot load %s: %v", structured, err),
				Offset:   -1,
			})
		}

		legacy := current.ResolveReference(&url.URL{Path: LegacyConfigName})
		if source, err := loader.Load(ctx, legacy); err == nil {
			return legacy, ParseLegacy(source, legacy, sink), nil
		} else if !errors.Is(err, ports.ErrNotFound) {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityWarning,
				Code:     types.DiagLoadFailed,
				Message:  fmt.Sprintf("cannot load %s: %v", legacy, err),
				Offset:   -1,
			})
		}

		parent := parentDir(current)
		if parent == nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("no package configuration found above %s", dir))
		}
		current = parent
	}
}

// parentDir returns the parent directory of a directory-form URL, or
// nil at the filesystem root.
func parentDir(dir *url.URL) *url.URL {
	trimmed := strings.TrimSuffix(dir.Path, "/")
	if trimmed == "" {
		return nil
	}
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return nil
	}
	parent := *dir
	parent.Path = trimmed[:idx+1]
	return &parent
}
