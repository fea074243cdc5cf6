package shared

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, text string) *url.URL {
	t.Helper()
	u, err := url.Parse(text)
	require.NoError(t, err)
	return u
}

func TestEnsureDirectory(t *testing.T) {
	assert.Equal(t, "file:///a/b/", EnsureDirectory(mustURL(t, "file:///a/b")).String())
	assert.Equal(t, "file:///a/b/", EnsureDirectory(mustURL(t, "file:///a/b/")).String())
	assert.Equal(t, "rel/path/", EnsureDirectory(mustURL(t, "rel/path")).String())
}

func TestEnsureDirectoryDoesNotMutateInput(t *testing.T) {
	input := mustURL(t, "file:///a/b")
	_ = EnsureDirectory(input)
	assert.Equal(t, "file:///a/b", input.String())
}

func TestDirOf(t *testing.T) {
	assert.Equal(t, "file:///a/b/", DirOf(mustURL(t, "file:///a/b/.packages")).String())
	assert.Equal(t, "file:///a/b/", DirOf(mustURL(t, "file:///a/b/")).String())
	assert.Equal(t, "file:///", DirOf(mustURL(t, "file:///top")).String())
}

func TestSiblingConfig(t *testing.T) {
	sibling := SiblingConfig(mustURL(t, "file:///ws/.packages"))
	assert.Equal(t, "file:///ws/.dart_tool/package_config.json", sibling.String())
}

func TestRelativize(t *testing.T) {
	base := mustURL(t, "file:///ws/.packages")
	cases := []struct {
		name   string
		target string
		want   string
	}{
		{"under base dir", "file:///ws/pkg/foo/", "pkg/foo/"},
		{"base dir itself", "file:///ws/", "./"},
		{"one level up", "file:///other/x/", "../other/x/"},
		{"different scheme", "https://example.com/x/", "https://example.com/x/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Relativize(mustURL(t, tc.target), base)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestRelativizeRoundTripsThroughResolve(t *testing.T) {
	base := mustURL(t, "file:///ws/sub/.packages")
	targets := []string{
		"file:///ws/sub/pkg/a/",
		"file:///ws/other/b/",
		"file:///c/",
	}
	for _, target := range targets {
		rel := Relativize(mustURL(t, target), base)
		resolved := base.ResolveReference(rel)
		assert.Equal(t, target, resolved.String(), "target %s via %s", target, rel)
	}
}

func TestFileURLAndBack(t *testing.T) {
	u := FileURL("/some/abs/path")
	assert.Equal(t, "file:///some/abs/path", u.String())
	assert.Equal(t, "/some/abs/path", FilePath(u))
}
