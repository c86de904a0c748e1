package infrastructure

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lotteryfrontend.app/internal/ports"
	apperrors "lotteryfrontend.app/pkg/errors"
)

// DirectoryAssetStore serves regular files from a directory on the local disk
type DirectoryAssetStore struct {
	root string
}

// NewDirectoryAssetStore creates a store rooted at root, which should be absolute
func NewDirectoryAssetStore(root string) *DirectoryAssetStore {
	return &DirectoryAssetStore{root: filepath.Clean(root)}
}

// Root returns the configured root directory
func (s *DirectoryAssetStore) Root() string {
	return s.root
}

// Open resolves name below the root, following symlinks, and refuses anything
// whose real location is outside the real root.
func (s *DirectoryAssetStore) Open(ctx context.Context, name string) (*ports.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || !within(".", cleaned) {
		return nil, apperrors.NewNotFoundError("file not found")
	}

	realRoot, err := filepath.EvalSymlinks(s.root)
	if err != nil {
		return nil, classifyFSError(err)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Join(s.root, cleaned))
	if err != nil {
		return nil, classifyFSError(err)
	}

	if !within(realRoot, resolved) {
		return nil, apperrors.NewNotFoundError("file not found")
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, classifyFSError(err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, classifyFSError(err)
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, apperrors.NewNotFoundError("file not found")
	}

	return &ports.StoredFile{
		Content: file,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// classifyFSError maps missing paths to NotFound and everything else to ReadFailure
func classifyFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), isNotDir(err):
		return apperrors.NewNotFoundError("file not found")
	case errors.Is(err, fs.ErrPermission):
		return apperrors.NewReadFailureError("permission denied", err)
	default:
		return apperrors.NewReadFailureError("cannot read file", err)
	}
}
