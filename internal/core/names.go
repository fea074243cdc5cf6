// Package core implements the format-level algorithms: package name
// validation, the legacy .packages tokenizer and writer, the JSON
// config codec, format sniffing, and the dual-format read strategy.
// Everything here is synchronous and operates on fully materialized
// buffers; loading bytes is the loader port's job.
package core

// CheckPackageName returns the byte offset of the first grammar
// violation in a candidate package name, or -1 when the name is
// valid. Names are nonempty sequences of ASCII letters, digits, and
// '_', and must not start with a digit.
func CheckPackageName(name string) int {
	if name == "" {
		return 0
	}
	if name[0] >= '0' && name[0] <= '9' {
		return 0
	}
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return i
		}
	}
	return -1
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}
