package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MichaelRFairhurst/package-config/internal/app"
)

type lookupOptions struct {
	File         string
	PreferNewest bool
}

func newLookupCommand() *cobra.Command {
	opts := lookupOptions{}
	cmd := &cobra.Command{
		Use:   "lookup <package-uri>",
		Short: "Resolve a package: URI to a file location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Config file path")
	cmd.Flags().BoolVar(&opts.PreferNewest, "prefer-newest", false, "Prefer an adjacent structured config over a legacy file")
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("prefer_newest", cmd.Flags().Lookup("prefer-newest"))
	return cmd
}

func runLookup(ctx context.Context, cmd *cobra.Command, opts lookupOptions, packageURI string) error {
	service := newAppService()
	result, err := service.Lookup(ctx, app.LookupRequest{
		Path:         resolveString(cmd, opts.File, "file", "file"),
		PreferNewest: resolveBool(cmd, opts.PreferNewest, "prefer_newest", "prefer-newest"),
		PackageURI:   packageURI,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Location)
	return nil
}
