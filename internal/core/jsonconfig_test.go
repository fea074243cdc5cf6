package core

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelRFairhurst/package-config/internal/adapters"
	"github.com/MichaelRFairhurst/package-config/internal/types"
)

const sampleJSONConfig = `{
  "configVersion": 2,
  "packages": [
    {
      "name": "foo",
      "rootUri": "../pkg/foo",
      "packageUri": "lib/",
      "languageVersion": "3.2"
    },
    {
      "name": "bar",
      "rootUri": "file:///elsewhere/bar/"
    }
  ],
  "generated": "2026-07-01T00:00:00Z",
  "generator": "pub",
  "generatorVersion": "3.2.0"
}`

func TestParseJSONSample(t *testing.T) {
	base := mustURL(t, "file:///ws/.dart_tool/package_config.json")
	sink := &adapters.CollectSink{}
	config := ParseJSON([]byte(sampleJSONConfig), base, sink)

	require.Empty(t, sink.Diagnostics)
	assert.Equal(t, types.FormatVersionJSON, config.Version)
	assert.Equal(t, "pub", config.Generator)
	assert.Equal(t, "3.2.0", config.GeneratorVersion)

	require.Len(t, config.Entries, 2)
	foo := config.Entries[0]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, "file:///ws/pkg/foo/", foo.Root.String())
	require.NotNil(t, foo.PackageURI)
	assert.Equal(t, "lib/", foo.PackageURI.String())
	require.NotNil(t, foo.LanguageVersion)
	assert.Equal(t, "3.2", foo.LanguageVersion.String())
	assert.Equal(t, "file:///ws/pkg/foo/lib/", foo.PackageRoot().String())

	bar := config.Entries[1]
	assert.Nil(t, bar.PackageURI)
	assert.Equal(t, "file:///elsewhere/bar/", bar.Root.String())
}

func TestParseJSONNotJSON(t *testing.T) {
	sink := &adapters.CollectSink{}
	config := ParseJSON([]byte("{not json"), mustURL(t, "file:///ws/x.json"), sink)

	assert.Empty(t, config.Entries)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, types.DiagBadFormat, sink.Diagnostics[0].Code)
	assert.Greater(t, sink.Diagnostics[0].Offset, 0)
}

func TestParseJSONWrongVersion(t *testing.T) {
	sink := &adapters.CollectSink{}
	config := ParseJSON([]byte(`{"configVersion":7,"packages":[]}`), mustURL(t, "file:///ws/x.json"), sink)

	assert.Empty(t, config.Entries)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, types.DiagBadVersion, sink.Diagnostics[0].Code)
}

func TestParseJSONDefectivePackagesSkipped(t *testing.T) {
	source := `{
  "configVersion": 2,
  "packages": [
    {"name": "ok", "rootUri": "ok/"},
    {"name": "bad name", "rootUri": "x/"},
    {"name": "pkg_scheme", "rootUri": "package:nope/"},
    {"name": "escapes", "rootUri": "e/", "packageUri": "../out/"},
    {"name": "badver", "rootUri": "v/", "languageVersion": "3.x"},
    {"name": "ok", "rootUri": "dup/"}
  ]
}`
	base := mustURL(t, "file:///ws/.dart_tool/package_config.json")
	sink := &adapters.CollectSink{}
	config := ParseJSON([]byte(source), base, sink)

	require.Len(t, config.Entries, 1)
	assert.Equal(t, "ok", config.Entries[0].Name)
	assert.Equal(t, "file:///ws/.dart_tool/ok/", config.Entries[0].Root.String())

	codes := make([]types.DiagnosticCode, 0, len(sink.Diagnostics))
	for _, d := range sink.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []types.DiagnosticCode{
		types.DiagInvalidName,
		types.DiagPackageScheme,
		types.DiagBadReference,
		types.DiagBadVersion,
		types.DiagDuplicateName,
	}, codes)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	base := mustURL(t, "file:///ws/.dart_tool/package_config.json")
	sink := &adapters.CollectSink{}
	config := ParseJSON([]byte(sampleJSONConfig), base, sink)
	require.Empty(t, sink.Diagnostics)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, config, base, fixedClock))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.EqualValues(t, 2, raw["configVersion"])
	assert.Equal(t, "2026-08-01T12:00:00Z", raw["generated"])

	second := ParseJSON(buf.Bytes(), base, &adapters.CollectSink{})
	require.Equal(t, len(config.Entries), len(second.Entries))
	for i := range config.Entries {
		assert.Equal(t, config.Entries[i].Name, second.Entries[i].Name)
		assert.Equal(t, config.Entries[i].Root.String(), second.Entries[i].Root.String())
	}
}

func TestWriteJSONRejectsPackageScheme(t *testing.T) {
	bad := &types.PackageConfig{
		Version: types.FormatVersionJSON,
		Entries: []types.PackageEntry{{Name: "x", Root: mustURL(t, "package:x/")}},
	}
	assert.Error(t, WriteJSON(&bytes.Buffer{}, bad, nil, fixedClock))
}
