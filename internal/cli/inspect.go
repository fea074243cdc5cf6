package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/MichaelRFairhurst/package-config/internal/app"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

type inspectOptions struct {
	File         string
	PreferNewest bool
	Format       string
}

// inspectEntry is the render shape for one package entry.
type inspectEntry struct {
	Name            string `json:"name" yaml:"name"`
	Root            string `json:"root" yaml:"root"`
	PackageURI      string `json:"packageUri,omitempty" yaml:"packageUri,omitempty"`
	LanguageVersion string `json:"languageVersion,omitempty" yaml:"languageVersion,omitempty"`
}

type inspectReport struct {
	Format   int            `json:"format" yaml:"format"`
	Packages []inspectEntry `json:"packages" yaml:"packages"`
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the entries of a package configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Config file path")
	cmd.Flags().BoolVar(&opts.PreferNewest, "prefer-newest", false, "Prefer an adjacent structured config over a legacy file")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text, json, or yaml")
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("prefer_newest", cmd.Flags().Lookup("prefer-newest"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		Path:         resolveString(cmd, opts.File, "file", "file"),
		PreferNewest: resolveBool(cmd, opts.PreferNewest, "prefer_newest", "prefer-newest"),
	})
	if err != nil {
		return err
	}
	reportDiagnostics(result.Diagnostics)
	return renderConfig(result.Config, opts.Format)
}

func renderConfig(config *types.PackageConfig, format string) error {
	report := inspectReport{Format: int(config.Version)}
	for _, entry := range config.Entries {
		rendered := inspectEntry{Name: entry.Name, Root: entry.Root.String()}
		if entry.PackageURI != nil {
			rendered.PackageURI = entry.PackageURI.String()
		}
		if entry.LanguageVersion != nil {
			rendered.LanguageVersion = entry.LanguageVersion.String()
		}
		report.Packages = append(report.Packages, rendered)
	}
	switch format {
	case "text":
		fmt.Printf("format: %d\n", report.Format)
		for _, pkg := range report.Packages {
			fmt.Printf("%s -> %s\n", pkg.Name, pkg.Root)
		}
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(report)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format %q", format))
	}
}
