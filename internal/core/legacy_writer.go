package core

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// WriteLegacy serializes a configuration to the legacy .packages line
// format. When base is non-nil, entry locations are relativized
// against it for compact output; base must then be absolute. Entries
// are written in input order.
//
// Unlike parsing, malformed output data is a caller contract
// violation: an invalid name, a package-scheme location, or a
// non-absolute base fails the whole call with an invalid-argument
// error. Writing a malformed mapping is strictly worse than failing
// loudly here.
func WriteLegacy(w io.Writer, config *types.PackageConfig, base *url.URL, comment string, now func() time.Time) error {
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
	if comment == "" {
		comment = fmt.Sprintf("generated by package-config at %s", now().UTC().Format(time.RFC3339))
	}
	for _, line := range strings.Split(comment, "\n") {
		if _, err := fmt.Fprintf(w, "# %s\n", line); err != nil {
			return err
		}
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
		if _, err := fmt.Fprintf(w, "%s:%s\n", entry.Name, location.String()); err != nil {
			return err
		}
	}
	return nil
}

func argumentError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
