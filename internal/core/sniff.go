package core

// Format is the result of sniffing a loaded buffer.
type Format int

const (
	FormatLegacy Format = iota
	FormatJSON
)

// DetectFormat inspects the first non-whitespace byte of a buffer: a
// '{' means the structured JSON format, anything else (including an
// empty buffer) means the legacy line format.
func DetectFormat(source []byte) Format {
	for _, c := range source {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return FormatJSON
		default:
			return FormatLegacy
		}
	}
	return FormatLegacy
}
