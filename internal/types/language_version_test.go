package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguageVersion(t *testing.T) {
	valid := []struct {
		text  string
		major int
		minor int
	}{
		{"2.12", 2, 12},
		{"3.0", 3, 0},
		{"0.1", 0, 1},
		{"10.20", 10, 20},
	}
	for _, tc := range valid {
		t.Run(tc.text, func(t *testing.T) {
			v, err := ParseLanguageVersion(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.major, v.Major)
			assert.Equal(t, tc.minor, v.Minor)
			assert.Equal(t, tc.text, v.String())
		})
	}

	invalid := []string{"", "2", "2.", ".5", "2.12.1", "02.1", "2.01", "-1.0", "a.b", "2 .1"}
	for _, text := range invalid {
		t.Run("invalid "+text, func(t *testing.T) {
			_, err := ParseLanguageVersion(text)
			assert.Error(t, err)
		})
	}
}
