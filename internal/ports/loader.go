package ports

import (
	"context"
	"errors"
	"net/url"
)

// ErrNotFound is returned by a ByteLoader when the referenced file
// does not exist. Callers use it to distinguish "absent" from
// "present but unreadable" during sibling-config probing.
var ErrNotFound = errors.New("file not found")

// ByteLoader loads the raw bytes of a referenced file. Loading is the
// only suspension point in a parse; everything downstream operates on
// the fully materialized buffer.
type ByteLoader interface {
	Load(ctx context.Context, ref *url.URL) ([]byte, error)
}
