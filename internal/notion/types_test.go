package notion

import (
	"encoding/json"
	"testing"
)

func decodeBlock(t *testing.T, raw string) Block {
	t.Helper()
	var b Block
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal block: %v", err)
	}
	return b
}

func TestBlock_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		raw          string
		wantType     string
		wantRuns     int
		wantURL      string
		wantEmoji    string
		wantLanguage string
	}{
		{
			name:     "paragraph",
			raw:      `{"id":"1","type":"paragraph","paragraph":{"rich_text":[{"plain_text":"a"},{"plain_text":"b"}]}}`,
			wantType: "paragraph",
			wantRuns: 2,
		},
		{
			name:     "missing payload",
			raw:      `{"id":"1","type":"quote"}`,
			wantType: "quote",
		},
		{
			name:     "payload of wrong shape",
			raw:      `{"id":"1","type":"paragraph","paragraph":"oops"}`,
			wantType: "paragraph",
		},
		{
			name:     "hosted image",
			raw:      `{"type":"image","image":{"type":"file","file":{"url":"https://s3/x.png"}}}`,
			wantType: "image",
			wantURL:  "https://s3/x.png",
		},
		{
			name:     "external image",
			raw:      `{"type":"image","image":{"type":"external","external":{"url":"https://cdn/y.png"}}}`,
			wantType: "image",
			wantURL:  "https://cdn/y.png",
		},
		{
			name:     "image without file",
			raw:      `{"type":"image","image":{}}`,
			wantType: "image",
		},
		{
			name:      "callout emoji",
			raw:       `{"type":"callout","callout":{"rich_text":[{"plain_text":"Note"}],"icon":{"type":"emoji","emoji":"⚠️"}}}`,
			wantType:  "callout",
			wantRuns:  1,
			wantEmoji: "⚠️",
		},
		{
			name:     "callout without icon",
			raw:      `{"type":"callout","callout":{"rich_text":[]}}`,
			wantType: "callout",
		},
		{
			name:         "code language",
			raw:          `{"type":"code","code":{"rich_text":[{"plain_text":"x := 1"}],"language":"go"}}`,
			wantType:     "code",
			wantRuns:     1,
			wantLanguage: "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := decodeBlock(t, tt.raw)
			if b.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", b.Type, tt.wantType)
			}
			if got := len(b.RichText()); got != tt.wantRuns {
				t.Errorf("len(RichText()) = %d, want %d", got, tt.wantRuns)
			}
			if got := b.ImageURL(); got != tt.wantURL {
				t.Errorf("ImageURL() = %q, want %q", got, tt.wantURL)
			}
			if got := b.Emoji(); got != tt.wantEmoji {
				t.Errorf("Emoji() = %q, want %q", got, tt.wantEmoji)
			}
			if got := b.Language(); got != tt.wantLanguage {
				t.Errorf("Language() = %q, want %q", got, tt.wantLanguage)
			}
		})
	}
}

func TestRichText_Styles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Annotations
	}{
		{
			name: "all flags",
			raw:  `{"plain_text":"x","annotations":{"bold":true,"italic":true,"strikethrough":true,"underline":true,"code":true,"color":"red"}}`,
			want: Annotations{Bold: true, Italic: true, Strikethrough: true, Underline: true, Code: true, Color: "red"},
		},
		{
			name: "missing annotations",
			raw:  `{"plain_text":"x"}`,
			want: Annotations{},
		},
		{
			name: "malformed annotations",
			raw:  `{"plain_text":"x","annotations":"bold"}`,
			want: Annotations{},
		},
		{
			name: "wrong flag type",
			raw:  `{"plain_text":"x","annotations":{"bold":"yes"}}`,
			want: Annotations{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var r RichText
			if err := json.Unmarshal([]byte(tt.raw), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := r.Styles(); got != tt.want {
				t.Errorf("Styles() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPage_TitleProperty(t *testing.T) {
	t.Parallel()

	page := Page{Properties: map[string]Property{
		"Tags":  {Type: "multi_select"},
		"Title": {Type: "title", Title: []RichText{{PlainText: "Other"}}},
		"Name":  {Type: "rich_text"},
	}}

	prop, ok := page.TitleProperty("Name")
	if !ok || prop.Type != "rich_text" {
		t.Errorf("TitleProperty(Name) = %+v, %v; want the Name property", prop, ok)
	}

	if _, ok := page.TitleProperty("Headline"); ok {
		t.Error("TitleProperty(Headline) = ok, want no guess at the title-typed property")
	}

	if _, ok := (Page{}).TitleProperty("Name"); ok {
		t.Error("TitleProperty on empty page: ok = true, want false")
	}
}
