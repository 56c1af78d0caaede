package assets

import "embed"

//go:embed templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the templates compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate returns a built-in template.
func (EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readTemplate(name, builtin.ReadFile)
}

var _ AssetLoader = EmbeddedLoader{}
