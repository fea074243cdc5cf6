package app

import (
	"context"
	"fmt"
	"net/url"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/core"
)

// Lookup resolves a package: URI to a concrete file location through
// the named configuration file.
func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	assert.NotEmpty(ctx, req.PackageURI, "package URI must be set")

	pkg, err := url.Parse(req.PackageURI)
	if err != nil || pkg.Scheme != "package" {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("not a package: URI: %q", req.PackageURI))
	}
	requested, err := fileURLFromPath(req.Path)
	if err != nil {
		return LookupResult{}, err
	}
	sink := &adapters.CollectSink{}
	config, err := core.ReadConfig(ctx, requested, req.PreferNewest, s.Loader, sink)
	if err != nil {
		return LookupResult{}, err
	}
	resolved, ok := config.ResolvePackageURI(pkg)
	if !ok {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot resolve %q", req.PackageURI))
	}
	return LookupResult{Location: resolved.String()}, nil
}
