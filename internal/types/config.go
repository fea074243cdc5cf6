package types

import (
	"net/url"
	"strings"
)

// FormatVersion identifies which on-disk format a configuration was
// read from or will be written to.
type FormatVersion int

const (
	// FormatVersionLegacy is the line-oriented .packages format.
	FormatVersionLegacy FormatVersion = 1

	// FormatVersionJSON is the structured package_config.json format.
	FormatVersionJSON FormatVersion = 2
)

// PackageEntry maps a package name to the base location holding that
// package's source. Root is always an absolute, directory-form URI
// (path ends in "/") and never uses the package scheme.
//
// PackageURI and LanguageVersion can only be expressed by the JSON
// format; entries read from a legacy file leave them unset.
type PackageEntry struct {
	// Name is the short package name used in package: references.
	Name string

	// Root is the package's base location.
	Root *url.URL

	// PackageURI is an optional root-relative directory (commonly
	// "lib/") that package: URIs resolve under. Nil means the root
	// itself is the package URI root.
	PackageURI *url.URL

	// LanguageVersion is the optional default language version for
	// files in this package.
	LanguageVersion *LanguageVersion
}

// PackageRoot returns the directory that package:<name>/ references
// resolve against: Root combined with PackageURI when present.
func (e PackageEntry) PackageRoot() *url.URL {
	if e.PackageURI == nil {
		return e.Root
	}
	return e.Root.ResolveReference(e.PackageURI)
}

// PackageConfig is an ordered collection of package entries plus the
// format version it was read from and optional generation metadata.
// Entries appear in first-occurrence order of the source; names are
// pairwise distinct.
type PackageConfig struct {
	Version          FormatVersion
	Entries          []PackageEntry
	Generated        string
	Generator        string
	GeneratorVersion string
}

// Entry returns the entry with the given name, or false when the
// configuration has no such package.
func (c *PackageConfig) Entry(name string) (PackageEntry, bool) {
	for _, entry := range c.Entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return PackageEntry{}, false
}

// PackageOf returns the entry whose root contains the given file
// location. When several roots nest, the longest (most specific)
// root wins.
func (c *PackageConfig) PackageOf(file *url.URL) (PackageEntry, bool) {
	var best PackageEntry
	bestLen := -1
	for _, entry := range c.Entries {
		if entry.Root.Scheme != file.Scheme || entry.Root.Host != file.Host {
			continue
		}
		if !strings.HasPrefix(file.Path, entry.Root.Path) {
			continue
		}
		if len(entry.Root.Path) > bestLen {
			best = entry
			bestLen = len(entry.Root.Path)
		}
	}
	return best, bestLen >= 0
}

// ResolvePackageURI resolves a package:<name>/<path> URI to a concrete
// file location using this configuration, or false when the named
// package is unknown or the URI is not a valid package URI.
func (c *PackageConfig) ResolvePackageURI(pkg *url.URL) (*url.URL, bool) {
	if pkg.Scheme != "package" {
		return nil, false
	}
	text := pkg.Opaque
	if text == "" {
		text = strings.TrimPrefix(pkg.Path, "/")
	}
	name, rest, found := strings.Cut(text, "/")
	if !found || name == "" {
		return nil, false
	}
	entry, ok := c.Entry(name)
	if !ok {
		return nil, false
	}
	return entry.PackageRoot().ResolveReference(&url.URL{Path: rest}), true
}
