package app

import (
	"context"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/core"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
)

// Discover walks up from a directory until it finds a package
// configuration, preferring the structured format in each directory.
func (s Service) Discover(ctx context.Context, req DiscoverRequest) (DiscoverResult, error) {
	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return DiscoverResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot make directory absolute").
			WithCause(err)
	}
	sink := &adapters.CollectSink{}
	found, config, err := core.FindConfig(ctx, shared.FileURL(abs), s.Loader, sink)
	if err != nil {
		return DiscoverResult{}, err
	}
	return DiscoverResult{
		ConfigPath:  shared.FilePath(found),
		Format:      config.Version,
		EntryCount:  len(config.Entries),
		Diagnostics: sink.Diagnostics,
	}, nil
}
