package app

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/core"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
)

// Validate reads a configuration file and reports every defect the
// parse encountered. Defects do not fail the call; argument
// violations do.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	requested, err := fileURLFromPath(req.Path)
	if err != nil {
		return ValidateResult{}, err
	}
	sink := &adapters.CollectSink{}
	config, err := core.ReadConfig(ctx, requested, req.PreferNewest, s.Loader, sink)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Path:        req.Path,
		Format:      config.Version,
		EntryCount:  len(config.Entries),
		Diagnostics: sink.Diagnostics,
	}, nil
}

// fileURLFromPath converts a filesystem path into an absolute file:
// URL usable as a load reference and resolution base.
func fileURLFromPath(path string) (*url.URL, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("config file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot make config file path absolute").
			WithCause(err)
	}
	return shared.FileURL(abs), nil
}
