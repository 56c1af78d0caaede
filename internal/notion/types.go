package notion

import (
	"encoding/json"
)

// listResponse is the envelope shared by database queries and block children.
type listResponse[T any] struct {
	Object     string `json:"object"`
	Results    []T    `json:"results"`
	NextCursor string `json:"next_cursor"`
	HasMore    bool   `json:"has_more"`
}

// errorResponse is the body Notion sends with non-2xx statuses.
type errorResponse struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Page is a database row.
type Page struct {
	ID             string              `json:"id"`
	LastEditedTime string              `json:"last_edited_time"`
	Properties     map[string]Property `json:"properties"`
}

// Property is a page property. Only title properties carry data here.
type Property struct {
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Title []RichText `json:"title"`
}

// TitleProperty returns the property named name. A database whose title
// column has another name is not guessed at: ok is false.
func (p Page) TitleProperty(name string) (Property, bool) {
	prop, ok := p.Properties[name]
	return prop, ok
}

// RichText is one styled run of text.
type RichText struct {
	Type        string          `json:"type"`
	PlainText   string          `json:"plain_text"`
	Href        string          `json:"href"`
	Annotations json.RawMessage `json:"annotations"`
}

// Annotations are the style flags of a rich text run.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// Styles decodes the run's annotations. Missing or malformed annotations
// yield all flags false.
func (r RichText) Styles() Annotations {
	var a Annotations
	if len(r.Annotations) == 0 {
		return a
	}
	if err := json.Unmarshal(r.Annotations, &a); err != nil {
		return Annotations{}
	}
	return a
}

// Block is a content block. The type-specific payload lives under a key
// named after the type, so decoding keeps the raw payload and exposes the
// fields the renderer needs through accessors.
type Block struct {
	ID          string
	Type        string
	HasChildren bool

	payload blockPayload
}

type blockPayload struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
	Icon     *struct {
		Type  string `json:"type"`
		Emoji string `json:"emoji"`
	} `json:"icon"`
	File *struct {
		URL string `json:"url"`
	} `json:"file"`
	External *struct {
		URL string `json:"url"`
	} `json:"external"`
}

// UnmarshalJSON decodes the common block fields and the payload keyed by the
// block type. A payload of an unexpected shape decodes to an empty payload.
func (b *Block) UnmarshalJSON(data []byte) error {
	var head struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		HasChildren bool   `json:"has_children"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	b.ID = head.ID
	b.Type = head.Type
	b.HasChildren = head.HasChildren
	b.payload = blockPayload{}

	raw, ok := fields[head.Type]
	if !ok || len(raw) == 0 {
		return nil
	}
	var p blockPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	b.payload = p
	return nil
}

// RichText returns the block's text runs, nil when the type has none.
func (b Block) RichText() []RichText {
	return b.payload.RichText
}

// Language returns a code block's language.
func (b Block) Language() string {
	return b.payload.Language
}

// Emoji returns a callout's emoji icon, empty when the icon is missing or is
// not an emoji.
func (b Block) Emoji() string {
	if b.payload.Icon == nil {
		return ""
	}
	return b.payload.Icon.Emoji
}

// ImageURL returns the URL of a Notion-hosted image file, falling back to an
// external image URL.
func (b Block) ImageURL() string {
	if b.payload.File != nil && b.payload.File.URL != "" {
		return b.payload.File.URL
	}
	if b.payload.External != nil {
		return b.payload.External.URL
	}
	return ""
}
