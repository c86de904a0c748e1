package site

import (
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"
)

// DefaultContentType is used when the extension maps to no known type
const DefaultContentType = "application/octet-stream"

// IndexDocument is served for the site root
const IndexDocument = "index.html"

// AssetsDir is the subdirectory behind the /assets route
const AssetsDir = "assets"

// AssetRequest asks for a file relative to Base, which is itself relative to
// the site root ("" for the root, "assets" for the assets route).
type AssetRequest struct {
	Base string
	Path string
}

// Asset is a file ready to be streamed to a client
type Asset struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	Content     io.ReadSeekCloser
}

// Close releases the underlying file
func (a *Asset) Close() error {
	if a.Content == nil {
		return nil
	}
	return a.Content.Close()
}

// IsValid rejects request paths that could leave Base.
func (r *AssetRequest) IsValid() error {
	if strings.ContainsRune(r.Path, 0) {
		return fmt.Errorf("path contains NUL byte")
	}
	if strings.ContainsRune(r.Path, '\\') {
		return fmt.Errorf("path contains backslash")
	}
	for _, segment := range strings.Split(r.Path, "/") {
		if segment == ".." {
			return fmt.Errorf("path contains parent directory segment")
		}
	}
	return nil
}

// Name returns the cleaned slash path of the requested file relative to the
// site root. It is only meaningful after IsValid has passed.
func (r *AssetRequest) Name() string {
	rel := strings.TrimPrefix(path.Clean("/"+r.Path), "/")
	if rel == "" {
		return ""
	}
	if r.Base == "" {
		return rel
	}
	return path.Join(r.Base, rel)
}

// ContentTypeFor infers a content type from the file extension
func ContentTypeFor(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return DefaultContentType
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return DefaultContentType
}
