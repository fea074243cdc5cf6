package app

import (
	"context"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/core"
)

// Inspect reads a configuration file and returns the parsed result
// for rendering.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	requested, err := fileURLFromPath(req.Path)
	if err != nil {
		return InspectResult{}, err
	}
	sink := &adapters.CollectSink{}
	config, err := core.ReadConfig(ctx, requested, req.PreferNewest, s.Loader, sink)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{Config: config, Diagnostics: sink.Diagnostics}, nil
}
