package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrTemplateNotFound reports a template absent from a loader.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName reports a template name that is empty or holds
	// separators, dots or NUL bytes.
	ErrInvalidAssetName = errors.New("invalid template name")

	// ErrInvalidBasePath reports a templates directory that cannot be used.
	ErrInvalidBasePath = errors.New("invalid templates directory")

	// ErrAssetRead reports a template that exists but could not be read,
	// including symlinks leading out of the templates directory.
	ErrAssetRead = errors.New("failed to read template")
)

// AssetLoader loads template sources by name.
type AssetLoader interface {
	// LoadTemplate returns the source of templates/{name}.html.
	LoadTemplate(name string) (string, error)
}

// templatePath validates name and returns its slash-separated location.
func templatePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return "templates/" + name + ".html", nil
}

// readTemplate loads name with read, mapping a missing file to
// ErrTemplateNotFound and any other failure to ErrAssetRead.
func readTemplate(name string, read func(path string) ([]byte, error)) (string, error) {
	path, err := templatePath(name)
	if err != nil {
		return "", err
	}

	data, err := read(path)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	default:
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, name, err)
	}
}
