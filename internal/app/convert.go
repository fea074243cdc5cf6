package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/core"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// Convert reads a configuration in either format and writes it back
// out in the format implied by the output file name: a file named
// package_config.json (or any *.json) gets the structured format,
// anything else the legacy line format. Entries that survive the
// read convert; read defects are carried in the result.
func (s Service) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	assert.NotEmpty(ctx, req.InputPath, "input path must be set")
	assert.NotEmpty(ctx, req.OutputPath, "output path must be set")

	requested, err := fileURLFromPath(req.InputPath)
	if err != nil {
		return ConvertResult{}, err
	}
	sink := &adapters.CollectSink{}
	config, err := core.ReadConfig(ctx, requested, false, s.Loader, sink)
	if err != nil {
		return ConvertResult{}, err
	}
	if len(sink.Errors()) > 0 && len(config.Entries) == 0 {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("input configuration produced no entries")
	}

	outputAbs, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot make output path absolute").
			WithCause(err)
	}
	base := shared.FileURL(outputAbs)

	out, err := os.Create(outputAbs)
	if err != nil {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("cannot create output file").
			WithCause(err)
	}
	defer out.Close()

	format := types.FormatVersionLegacy
	if strings.HasSuffix(outputAbs, ".json") {
		format = types.FormatVersionJSON
		err = core.WriteJSON(out, config, base, s.Clock)
	} else {
		err = core.WriteLegacy(out, config, base, req.Comment, s.Clock)
	}
	if err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{
		OutputPath:  outputAbs,
		Format:      format,
		EntryCount:  len(config.Entries),
		Diagnostics: sink.Diagnostics,
	}, nil
}
