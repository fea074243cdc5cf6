package app

import "github.com/MichaelRFairhurst/package-config/internal/types"

type ValidateRequest struct {
	Path         string
	PreferNewest bool
}

type ValidateResult struct {
	Path        string
	Format      types.FormatVersion
	EntryCount  int
	Diagnostics []types.Diagnostic
}

type InspectRequest struct {
	Path         string
	PreferNewest bool
}

type InspectResult struct {
	Config      *types.PackageConfig
	Diagnostics []types.Diagnostic
}

type ConvertRequest struct {
	InputPath  string
	OutputPath string
	Comment    string
}

type ConvertResult struct {
	OutputPath  string
	Format      types.FormatVersion
	EntryCount  int
	Diagnostics []types.Diagnostic
}

type LookupRequest struct {
	Path         string
	PreferNewest bool
	PackageURI   string
}

type LookupResult struct {
	Location string
}

type DiscoverRequest struct {
	Dir string
}

type DiscoverResult struct {
	ConfigPath  string
	Format      types.FormatVersion
	EntryCount  int
	Diagnostics []types.Diagnostic
}
