package parser

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Resolver opens catalog sources for reading. Implementations return the
// content reader and the resolved path recorded as the catalog source.
type Resolver interface {
	Resolve(source string, basePath string) (io.ReadCloser, string, error)
}

// FileResolver resolves sources from the local filesystem.
type FileResolver struct{}

// Resolve opens a local file relative to basePath and returns its reader and
// absolute path.
func (*FileResolver) Resolve(source string, basePath string) (io.ReadCloser, string, error) {
	abs := source
	if !filepath.IsAbs(source) {
		abs = filepath.Join(basePath, source)
	}
	abs, err := filepath.Abs(abs)
	if err != nil {
		return nil, "", fmt.Errorf("resolving %q from %q: %w", source, basePath, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, "", fmt.Errorf("opening %q: %w", abs, err)
	}
	return f, abs, nil
}

// FSResolver resolves sources inside an fs.FS, such as an embedded catalog
// bundle. Paths use forward slashes.
type FSResolver struct {
	FS fs.FS
}

// Resolve opens source relative to basePath within the filesystem.
func (r *FSResolver) Resolve(source string, basePath string) (io.ReadCloser, string, error) {
	name := path.Clean(path.Join(basePath, source))
	f, err := r.FS.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("opening %q: %w", name, err)
	}
	return f, name, nil
}
