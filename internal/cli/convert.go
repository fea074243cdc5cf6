package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MichaelRFairhurst/package-config/internal/app"
)

type convertOptions struct {
	Input   string
	Output  string
	Comment string
}

func newConvertCommand() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between the legacy and structured formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Input config file path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output config file path")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "Leading comment for legacy output")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runConvert(ctx context.Context, cmd *cobra.Command, opts convertOptions) error {
	service := newAppService()
	result, err := service.Convert(ctx, app.ConvertRequest{
		InputPath:  resolveString(cmd, opts.Input, "input", "input"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
		Comment:    opts.Comment,
	})
	if err != nil {
		return err
	}
	reportDiagnostics(result.Diagnostics)
	fmt.Printf("wrote %s (format %d, %d entries)\n", result.OutputPath, result.Format, result.EntryCount)
	return nil
}
