// Package shared provides URI helpers used across the parsing,
// writing, and resolution packages.
package shared

import (
	"net/url"
	"path/filepath"
	"strings"
)

// SiblingConfigPath is the canonical location of the structured
// config file, relative to the directory of a legacy .packages file.
const SiblingConfigPath = ".dart_tool/package_config.json"

// EnsureDirectory returns a copy of u in directory form: its path
// ends with "/". A location already in directory form is returned
// unchanged.
func EnsureDirectory(u *url.URL) *url.URL {
	if strings.HasSuffix(u.Path, "/") {
		return u
	}
	dir := *u
	dir.Path += "/"
	if dir.RawPath != "" {
		dir.RawPath += "/"
	}
	return &dir
}

// DirOf returns the directory containing u: everything up to and
// including the final "/" of the path.
func DirOf(u *url.URL) *url.URL {
	dir := *u
	idx := strings.LastIndex(dir.Path, "/")
	if idx < 0 {
		dir.Path = ""
	} else {
		dir.Path = dir.Path[:idx+1]
	}
	dir.RawPath = ""
	dir.RawQuery = ""
	dir.Fragment = ""
	return &dir
}

// SiblingConfig derives the canonical structured-config location
// adjacent to a requested legacy file.
func SiblingConfig(requested *url.URL) *url.URL {
	return DirOf(requested).ResolveReference(&url.URL{Path: SiblingConfigPath})
}

// Relativize returns target expressed relative to base when both
// share a scheme and host and target's path sits under base's
// directory, walking up through at most a few parent segments.
// When no reasonable relative form exists it returns target as-is.
func Relativize(target *url.URL, base *url.URL) *url.URL {
	if target.Scheme != base.Scheme || target.Host != base.Host {
		return target
	}
	basePath := base.Path
	if !strings.HasSuffix(basePath, "/") {
		idx := strings.LastIndex(basePath, "/")
		if idx < 0 {
			return target
		}
		basePath = basePath[:idx+1]
	}
	prefix := basePath
	up := ""
	for !strings.HasPrefix(target.Path, prefix) {
		trimmed := strings.TrimSuffix(prefix, "/")
		idx := strings.LastIndex(trimmed, "/")
		if idx < 0 {
			return target
		}
		prefix = trimmed[:idx+1]
		up += "../"
		if len(up) > len("../../../") {
			return target
		}
	}
	rel := up + strings.TrimPrefix(target.Path, prefix)
	if rel == "" {
		rel = "./"
	}
	return &url.URL{Path: rel}
}

// FileURL converts an absolute filesystem path to a file: URL.
func FileURL(path string) *url.URL {
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
}

// FilePath converts a file: URL back to a filesystem path.
func FilePath(u *url.URL) string {
	return filepath.FromSlash(u.Path)
}
