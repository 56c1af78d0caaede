package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader reads templates from {dir}/templates. Reads go through
// os.Root, so names and symlinks cannot reach files outside dir.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader checks that dir is an existing directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, abs)
	}
	return &FilesystemLoader{dir: abs}, nil
}

// LoadTemplate reads {dir}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	root, err := os.OpenRoot(f.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	return readTemplate(name, func(path string) ([]byte, error) {
		return root.ReadFile(filepath.FromSlash(path))
	})
}

var _ AssetLoader = (*FilesystemLoader)(nil)
