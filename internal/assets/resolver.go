package assets

import "errors"

// AssetResolver looks a template up in a site directory first and falls
// back to the built-in copy, so a site can override one template only.
type AssetResolver struct {
	layers []AssetLoader // highest priority first
}

// NewAssetResolver creates a resolver over the built-in templates, topped by
// dir when it is not empty.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if dir != "" {
		site, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, site)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

// LoadTemplate returns the first layer holding name. Only a missing
// template moves on to the next layer; other errors stop the lookup.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		content, err = layer.LoadTemplate(name)
		if !errors.Is(err, ErrTemplateNotFound) {
			return content, err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a site directory is layered over the
// built-in templates.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
