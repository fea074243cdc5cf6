package types

import (
	"fmt"
	"strconv"
	"strings"
)

// LanguageVersion is a "major.minor" language version as carried by
// the JSON format. Both parts are non-negative decimal integers with
// no leading zeros (other than the number zero itself).
type LanguageVersion struct {
	Major int
	Minor int
}

// ParseLanguageVersion parses "major.minor" text.
func ParseLanguageVersion(text string) (LanguageVersion, error) {
	major, minor, found := strings.Cut(text, ".")
	if !found {
		return LanguageVersion{}, fmt.Errorf("language version %q missing '.'", text)
	}
	majorNum, err := parseVersionPart(major)
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("language version %q: %w", text, err)
	}
	minorNum, err := parseVersionPart(minor)
	if err != nil {
		return LanguageVersion{}, fmt.Errorf("language version %q: %w", text, err)
	}
	return LanguageVersion{Major: majorNum, Minor: minorNum}, nil
}

func parseVersionPart(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("empty version part")
	}
	if len(part) > 1 && part[0] == '0' {
		return 0, fmt.Errorf("leading zero in %q", part)
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return 0, fmt.Errorf("non-digit in %q", part)
		}
	}
	value, err := strconv.Atoi(part)
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (v LanguageVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
