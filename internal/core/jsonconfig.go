package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// jsonConfig mirrors the on-disk package_config.json structure.
type jsonConfig struct {
	ConfigVersion    int           `json:"configVersion"`
	Packages         []jsonPackage `json:"packages"`
	Generated        string        `json:"generated,omitempty"`
	Generator        string        `json:"generator,omitempty"`
	GeneratorVersion string        `json:"generatorVersion,omitempty"`
}

type jsonPackage struct {
	Name            string `json:"name"`
	RootURI         string `json:"rootUri"`
	PackageURI      string `json:"packageUri,omitempty"`
	LanguageVersion string `json:"languageVersion,omitempty"`
}

// ParseJSON parses a package_config.json buffer. Relative rootUri
// values are resolved against base. Defective package entries are
// reported through the sink and skipped; the remaining entries still
// form a usable configuration. A buffer that is not JSON at all, or
// carries an unsupported configVersion, yields an empty configuration
// plus one report.
func ParseJSON(source []byte, base *url.URL, sink ports.DiagnosticSink) *types.PackageConfig {
	config := &types.PackageConfig{Version: types.FormatVersionJSON}
	if base != nil && base.Scheme == "package" {
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagBadArgument,
			Message:  "base location must not be a package: URI",
			Offset:   -1,
		})
		return config
	}

	var raw jsonConfig
	if err := json.Unmarshal(source, &raw); err != nil {
		offset := -1
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset = int(syntaxErr.Offset)
		}
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagBadFormat,
			Message:  fmt.Sprintf("cannot parse structured config: %v", err),
			Offset:   offset,
		})
		return config
	}
	if raw.ConfigVersion != int(types.FormatVersionJSON) {
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     types.DiagBadVersion,
			Message:  fmt.Sprintf("unsupported configVersion %d", raw.ConfigVersion),
			Offset:   -1,
		})
		return config
	}
	config.Generated = raw.Generated
	config.Generator = raw.Generator
	config.GeneratorVersion = raw.GeneratorVersion

	seen := map[string]struct{}{}
	for _, pkg := range raw.Packages {
		entry, ok := buildJSONEntry(pkg, base, sink)
		if !ok {
			continue
		}
		if _, duplicate := seen[entry.Name]; duplicate {
			sink.Report(types.Diagnostic{
				Severity: types.SeverityError,
				Code:     types.DiagDuplicateName,
				Message:  fmt.Sprintf("duplicate package name %q", entry.Name),
				Offset:   -1,
			})
			continue
		}
		seen[entry.Name] = struct{}{}
		config.Entries = append(config.Entries, entry)
	}
	return config
}

// buildJSONEntry validates one packages[] element. Every defect is
// reported and drops just this element.
func buildJSONEntry(pkg jsonPackage, base *url.URL, sink ports.DiagnosticSink) (types.PackageEntry, bool) {
	report := func(code types.DiagnosticCode, msg string) (types.PackageEntry, bool) {
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Code:     code,
			Message:  msg,
			Offset:   -1,
		})
		return types.PackageEntry{}, false
	}
	if offset := CheckPackageName(pkg.Name); offset >= 0 {
		return report(types.DiagInvalidName, fmt.Sprintf("invalid package name %q", pkg.Name))
	}
	rootRef, err := url.Parse(pkg.RootURI)
	if err != nil {
		return report(types.DiagBadReference, fmt.Sprintf("package %q: cannot parse rootUri %q", pkg.Name, pkg.RootURI))
	}
	if rootRef.RawQuery != "" || rootRef.Fragment != "" {
		return report(types.DiagQueryFragment, fmt.Sprintf("package %q: rootUri must not have a query or fragment", pkg.Name))
	}
	root := rootRef
	if base != nil {
		root = base.ResolveReference(rootRef)
	}
	if root.Scheme == "package" {
		return report(types.DiagPackageScheme, fmt.Sprintf("package %q: rootUri must not be a package: URI", pkg.Name))
	}
	root = shared.EnsureDirectory(root)

	entry := types.PackageEntry{Name: pkg.Name, Root: root}
	if pkg.PackageURI != "" {
		packageRef, err := url.Parse(pkg.PackageURI)
		if err != nil || packageRef.IsAbs() || strings.HasPrefix(packageRef.Path, "/") {
			return report(types.DiagBadReference, fmt.Sprintf("package %q: packageUri must be a relative reference", pkg.Name))
		}
		packageRef = shared.EnsureDirectory(packageRef)
		resolved := root.ResolveReference(packageRef)
		if !strings.HasPrefix(resolved.Path, root.Path) {
			return report(types.DiagBadReference, fmt.Sprintf("package %q: packageUri must stay inside rootUri", pkg.Name))
		}
		entry.PackageURI = packageRef
	}
	if pkg.LanguageVersion != "" {
		version, err := types.ParseLanguageVersion(pkg.LanguageVersion)
		if err != nil {
			return report(types.DiagBadVersion, fmt.Sprintf("package %q: %v", pkg.Name, err))
		}
		entry.LanguageVersion = &version
	}
	return entry, true
}

// WriteJSON serializes a configuration to package_config.json form,
// relativizing roots against base when one is supplied. The same
// caller contract as WriteLegacy applies: malformed output data fails
// the whole call.
func WriteJSON(w io.Writer, config *types.PackageConfig, base *url.URL, now func() time.Time) error {
	if base != nil {
		if base.Scheme == "package" {
			return argumentError("base location must not be a package: URI")
		}
		if !base.IsAbs() {
			return argumentError("base location must be absolute")
		}
	}
	if now == nil {
		now = time.Now
	}
	out := jsonConfig{
		ConfigVersion:    int(types.FormatVersionJSON),
		Packages:         []jsonPackage{},
		Generated:        now().UTC().Format(time.RFC3339),
		Generator:        config.Generator,
		GeneratorVersion: config.GeneratorVersion,
	}
	if out.Generator == "" {
		out.Generator = "package-config"
	}
	for _, entry := range config.Entries {
		if offset := CheckPackageName(entry.Name); offset >= 0 {
			return argumentError(fmt.Sprintf("invalid package name %q", entry.Name))
		}
		if entry.Root == nil || entry.Root.Scheme == "package" {
			return argumentError(fmt.Sprintf("location of package %q must be a non-package: URI", entry.Name))
		}
		location := entry.Root
		if base != nil {
			location = shared.Relativize(location, base)
		}
		location = shared.EnsureDirectory(location)
		pkg := jsonPackage{Name: entry.Name, RootURI: location.String()}
		if entry.PackageURI != nil {
			pkg.PackageURI = entry.PackageURI.String()
		}
		if entry.LanguageVersion != nil {
			pkg.LanguageVersion = entry.LanguageVersion.String()
		}
		out.Packages = append(out.Packages, pkg)
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(encoded); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
