package core

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

// memLoader serves bytes from a map keyed by URL string. URLs in
// failing are present but unloadable.
type memLoader struct {
	files   map[string]string
	failing map[string]bool
	loaded  []string
}

func (l *memLoader) Load(_ context.Context, ref *url.URL) ([]byte, error) {
	key := ref.String()
	l.loaded = append(l.loaded, key)
	if l.failing[key] {
		return nil, errors.New("permission denied")
	}
	content, ok := l.files[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return []byte(content), nil
}

const (
	requestedKey = "file:///ws/.packages"
	siblingKey   = "file:///ws/.dart_tool/package_config.json"
)

func TestReadConfigRequestedIsJSON(t *testing.T) {
	loader := &memLoader{files: map[string]string{
		"file:///ws/custom.json": `{"configVersion":2,"packages":[{"name":"foo","rootUri":"foo/"}]}`,
	}}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, "file:///ws/custom.json"), true, loader, sink)

	require.NoError(t, err)
	require.Empty(t, sink.Diagnostics)
	assert.Equal(t, types.FormatVersionJSON, config.Version)
	require.Len(t, config.Entries, 1)
	// JSON requests never probe for a sibling.
	assert.Equal(t, []string{"file:///ws/custom.json"}, loader.loaded)
}

func TestReadConfigLegacyWithoutPreference(t *testing.T) {
	loader := &memLoader{files: map[string]string{
		requestedKey: "foo:pkg/foo/\n",
		siblingKey:   `{"configVersion":2,"packages":[]}`,
	}}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, requestedKey), false, loader, sink)

	require.NoError(t, err)
	assert.Equal(t, types.FormatVersionLegacy, config.Version)
	require.Len(t, config.Entries, 1)
	assert.Equal(t, []string{requestedKey}, loader.loaded)
}

func TestReadConfigPrefersSibling(t *testing.T) {
	loader := &memLoader{files: map[string]string{
		requestedKey: "legacy_only:pkg/legacy/\n",
		siblingKey:   `{"configVersion":2,"packages":[{"name":"newer","rootUri":"../pkg/newer/"}]}`,
	}}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, requestedKey), true, loader, sink)

	require.NoError(t, err)
	require.Empty(t, sink.Diagnostics)
	assert.Equal(t, types.FormatVersionJSON, config.Version)
	require.Len(t, config.Entries, 1)
	assert.Equal(t, "newer", config.Entries[0].Name)
	assert.Equal(t, "file:///ws/pkg/newer/", config.Entries[0].Root.String())
	assert.Equal(t, []string{requestedKey, siblingKey}, loader.loaded)
}

func TestReadConfigSiblingAbsentFallsBackSilently(t *testing.T) {
	loader := &memLoader{files: map[string]string{
		requestedKey: "foo:pkg/foo/\n",
	}}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, requestedKey), true, loader, sink)

	require.NoError(t, err)
	assert.Empty(t, sink.Diagnostics)
	assert.Equal(t, types.FormatVersionLegacy, config.Version)
	require.Len(t, config.Entries, 1)
	assert.Equal(t, "foo", config.Entries[0].Name)
}

func TestReadConfigSiblingUnloadableIsReportedThenFallsBack(t *testing.T) {
	loader := &memLoader{
		files:   map[string]string{requestedKey: "foo:pkg/foo/\n"},
		failing: map[string]bool{siblingKey: true},
	}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, requestedKey), true, loader, sink)

	require.NoError(t, err)
	assert.Equal(t, types.FormatVersionLegacy, config.Version)
	require.Len(t, config.Entries, 1)

	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, types.DiagLoadFailed, sink.Diagnostics[0].Code)
	assert.Equal(t, types.SeverityWarning, sink.Diagnostics[0].Severity)
}

func TestReadConfigMissingRequestedYieldsEmptyConfig(t *testing.T) {
	loader := &memLoader{}
	sink := &adapters.CollectSink{}
	config, err := ReadConfig(context.Background(), mustURL(t, requestedKey), true, loader, sink)

	require.NoError(t, err)
	assert.Empty(t, config.Entries)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, types.DiagLoadFailed, sink.Diagnostics[0].Code)
	assert.Equal(t, types.SeverityError, sink.Diagnostics[0].Severity)
}

func TestReadConfigPackageSchemeRequestIsArgumentError(t *testing.T) {
	loader := &memLoader{}
	sink := &adapters.CollectSink{}
	_, err := ReadConfig(context.Background(), mustURL(t, "package:foo/.packages"), true, loader, sink)

	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Empty(t, sink.Diagnostics)
	assert.Empty(t, loader.loaded)
}
