package ports

import (
	"context"
	"io"
	"time"
)

// StoredFile is an opened regular file from the site root
type StoredFile struct {
	Content io.ReadSeekCloser
	Size    int64
	ModTime time.Time
}

// AssetStore opens files below a fixed root directory.
//
// name is a cleaned, slash-separated path relative to the root. Implementations
// must return a NotFound AppError for anything that does not resolve to a
// regular file inside the root, and a ReadFailure AppError when the file
// exists but cannot be read.
type AssetStore interface {
	Open(ctx context.Context, name string) (*StoredFile, error)
	Root() string
}
