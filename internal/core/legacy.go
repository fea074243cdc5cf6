package core

import (
	"fmt"
	"net/url"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// ParseLegacy scans a legacy .packages buffer and returns the
// configuration it describes. Relative location references are
// resolved against base (typically the file's own location).
//
// The scan is a single left-to-right pass. Malformed lines are
// reported through the sink at their exact byte offset and skipped;
// scanning always continues to the end of the buffer. The one fatal
// case is a package-scheme base, which reports an argument defect and
// returns an empty configuration without scanning.
func ParseLegacy(source []byte, base *url.URL, sink ports.DiagnosticSink) *types.PackageConfig {
	config := &types.PackageConfig{Version: types.FormatVersionLegacy}
	if base != nil && base.Scheme == "package" {
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagBadArgument,
			Message:  "base location must not be a package: URI",
			Offset:   -1,
		})
		return config
	}

	seen := map[string]struct{}{}
	i := 0
	for i < len(source) {
		lineStart := i
		switch source[i] {
		case '\n', '\r':
			i++
			continue
		case '#':
			i = skipLine(source, i)
			continue
		case ':':
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagMissingName,
				Message:  "line starts with separator, missing package name",
				Offset:   lineStart,
			})
			i = skipLine(source, i)
			continue
		}

		// Scan the rest of the line, remembering the first separator
		// and any query/fragment markers in the location text.
		separator := -1
		query := -1
		fragment := -1
		for i < len(source) && source[i] != '\n' && source[i] != '\r' {
			switch c := source[i]; {
			case c == ':' && separator < 0:
				separator = i
			case c == '?' && query < 0 && fragment < 0:
				query = i
			case c == '#' && fragment < 0:
				fragment = i
			}
			i++
		}
		lineEnd := i

		if separator < 0 {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagMissingSeparator,
				Message:  "no ':' separator on line",
				Offset:   lineStart,
			})
			continue
		}

		name := string(source[lineStart:separator])
		if offset := CheckPackageName(name); offset >= 0 {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagInvalidName,
				Message:  fmt.Sprintf("invalid package name %q", name),
				Offset:   lineStart + offset,
			})
			continue
		}

		// A query or fragment after the separator is an error, but a
		// recoverable one: truncate the location text at the marker
		// and keep the entry.
		end := lineEnd
		marker := -1
		if fragment > separator {
			marker = fragment
		}
		if query > separator && (marker < 0 || query < marker) {
			marker = query
		}
		if marker >= 0 {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagQueryFragment,
				Message:  "location must not have a query or fragment",
				Offset:   marker,
			})
			end = marker
		}

		text := string(source[separator+1 : end])
		reference, err := url.Parse(text)
		if err != nil {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagBadReference,
				Message:  fmt.Sprintf("cannot parse location %q", text),
				Offset:   separator + 1,
			})
			continue
		}
		root := reference
		if base != nil {
			root = base.ResolveReference(reference)
		}
		if root.Scheme == "package" {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagPackageScheme,
				Message:  fmt.Sprintf("location of package %q must not be a package: URI", name),
				Offset:   separator + 1,
			})
			continue
		}
		root = shared.EnsureDirectory(root)

		if _, duplicate := seen[name]; duplicate {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagDuplicateName,
				Message:  fmt.Sprintf("duplicate package name %q", name),
				Offset:   lineStart,
			})
			continue
		}
		seen[name] = struct{}{}
		config.Entries = append(config.Entries, types.PackageEntry{Name: name, Root: root})
	}
	return config
}

// skipLine advances past the current line's terminator without
// consuming the next line's first byte.
func skipLine(source []byte, i int) int {
	for i < len(source) && source[i] != '\n' && source[i] != '\r' {
		i++
	}
	return i
}
