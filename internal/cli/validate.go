package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MichaelRFairhurst/package-config/internal/app"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

type validateOptions struct {
	File         string
	PreferNewest bool
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a package configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Config file path")
	cmd.Flags().BoolVar(&opts.PreferNewest, "prefer-newest", false, "Prefer an adjacent structured config over a legacy file")
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("prefer_newest", cmd.Flags().Lookup("prefer-newest"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		Path:         resolveString(cmd, opts.File, "file", "file"),
		PreferNewest: resolveBool(cmd, opts.PreferNewest, "prefer_newest", "prefer-newest"),
	})
	if err != nil {
		return err
	}
	reportDiagnostics(result.Diagnostics)

	defects := 0
	for _, d := range result.Diagnostics {
		if d.Severity == types.SeverityError {
			defects++
		}
	}
	if defects > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s: %d defects, %d entries kept", result.Path, defects, result.EntryCount))
	}
	fmt.Printf("validated: %s (format %d, %d entries)\n", result.Path, result.Format, result.EntryCount)
	return nil
}
