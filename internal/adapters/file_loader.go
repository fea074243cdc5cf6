package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/MichaelRFairhurst/package-config/internal/ports"
	"github.com/MichaelRFairhurst/package-config/internal/shared"
)

// FileLoaderAdapter loads bytes from file: URLs via the local
// filesystem.
type FileLoaderAdapter struct{}

func NewFileLoaderAdapter() FileLoaderAdapter {
	return FileLoaderAdapter{}
}

func (a FileLoaderAdapter) Load(ctx context.Context, ref *url.URL) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref.Scheme != "" && ref.Scheme != "file" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported location scheme %q", ref.Scheme))
	}
	content, err := os.ReadFile(shared.FilePath(ref))
	if err != nil {
		// A probe through a path component that is a regular file
		// reads as "absent", same as a missing file.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, fmt.Errorf("%s: %w", ref, ports.ErrNotFound)
		}
		return nil, err
	}
	return content, nil
}

var _ ports.ByteLoader = FileLoaderAdapter{}
