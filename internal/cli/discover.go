package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MichaelRFairhurst/package-config/internal/app"
)

type discoverOptions struct {
	Dir string
}

func newDiscoverCommand() *cobra.Command {
	opts := discoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find the package configuration governing a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Directory to start from")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	return cmd
}

func runDiscover(ctx context.Context, cmd *cobra.Command, opts discoverOptions) error {
	service := newAppService()
	result, err := service.Discover(ctx, app.DiscoverRequest{
		Dir: resolveString(cmd, opts.Dir, "dir", "dir"),
	})
	if err != nil {
		return err
	}
	reportDiagnostics(result.Diagnostics)
	fmt.Printf("%s (format %d, %d entries)\n", result.ConfigPath, result.Format, result.EntryCount)
	return nil
}
