package assets

import "fmt"

// Template names.
const (
	NoteTemplate       = "note"
	CardTemplate       = "card"
	InlineCardTemplate = "inline_card"
	IndexTemplate      = "index"
)

// TemplateSet holds the template sources for one site.
type TemplateSet struct {
	Note       string // Per-note document
	Card       string // Index entry linking to a note
	InlineCard string // Index entry embedding a note
	Index      string // Bootstrap index page
}

// LoadTemplateSet loads every template the generator needs from loader.
// A missing template is an error: the resolver already falls back to the
// embedded copy, so a miss means the loader has no default.
func LoadTemplateSet(loader AssetLoader) (*TemplateSet, error) {
	ts := &TemplateSet{}
	targets := []struct {
		name string
		dst  *string
	}{
		{NoteTemplate, &ts.Note},
		{CardTemplate, &ts.Card},
		{InlineCardTemplate, &ts.InlineCard},
		{IndexTemplate, &ts.Index},
	}

	for _, t := range targets {
		content, err := loader.LoadTemplate(t.name)
		if err != nil {
			return nil, fmt.Errorf("loading %s template: %w", t.name, err)
		}
		*t.dst = content
	}

	return ts, nil
}

// DefaultTemplateSet returns the embedded templates.
func DefaultTemplateSet() *TemplateSet {
	ts, err := LoadTemplateSet(NewEmbeddedLoader())
	if err != nil {
		// Embedded files are fixed at compile time.
		panic("assets: embedded templates missing: " + err.Error())
	}
	return ts
}
