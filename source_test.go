package notesite

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alnah/go-notesite/internal/notion"
)

// fakeNotionAPI returns canned wire objects.
type fakeNotionAPI struct {
	pages     []notion.Page
	blocks    map[string][]notion.Block
	queryErr  error
	blocksErr error
	gotDB     string
}

func (f *fakeNotionAPI) QueryDatabase(_ context.Context, databaseID string) ([]notion.Page, error) {
	f.gotDB = databaseID
	return f.pages, f.queryErr
}

func (f *fakeNotionAPI) BlockChildren(_ context.Context, blockID string) ([]notion.Block, error) {
	return f.blocks[blockID], f.blocksErr
}

func mustDecode[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func TestNotionSource_ListPages(t *testing.T) {
	t.Parallel()

	api := &fakeNotionAPI{pages: []notion.Page{
		mustDecode[notion.Page](t, `{"id":"p1","last_edited_time":"2024-01-05T10:00:00.000Z",
			"properties":{"Name":{"type":"title","title":[{"plain_text":"My Note!"},{"plain_text":" ignored"}]}}}`),
		mustDecode[notion.Page](t, `{"id":"p2","last_edited_time":"2024-02-01T00:00:00.000Z",
			"properties":{"Name":{"type":"title","title":[{"plain_text":"Second"}]}}}`),
	}}

	pages, err := NewNotionSource(api, "db-1", "").ListPages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.gotDB != "db-1" {
		t.Errorf("queried database %q, want db-1", api.gotDB)
	}

	want := []Page{
		{ID: "p1", Title: "My Note!", LastEdited: "2024-01-05T10:00:00.000Z"},
		{ID: "p2", Title: "Second", LastEdited: "2024-02-01T00:00:00.000Z"},
	}
	if len(pages) != len(want) {
		t.Fatalf("len(pages) = %d, want %d", len(pages), len(want))
	}
	for i := range want {
		if pages[i].ID != want[i].ID || pages[i].Title != want[i].Title || pages[i].LastEdited != want[i].LastEdited {
			t.Errorf("pages[%d] = %+v, want %+v", i, pages[i], want[i])
		}
	}
}

func TestNotionSource_ListPages_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()

		api := &fakeNotionAPI{pages: []notion.Page{
			mustDecode[notion.Page](t, `{"id":"p1","properties":{"Name":{"type":"title","title":[]}}}`),
		}}
		_, err := NewNotionSource(api, "db", "Name").ListPages(context.Background())
		if !errors.Is(err, ErrMissingTitle) {
			t.Errorf("error = %v, want ErrMissingTitle", err)
		}
	})

	t.Run("no title property", func(t *testing.T) {
		t.Parallel()

		api := &fakeNotionAPI{pages: []notion.Page{
			mustDecode[notion.Page](t, `{"id":"p1","properties":{}}`),
		}}
		_, err := NewNotionSource(api, "db", "Name").ListPages(context.Background())
		if !errors.Is(err, ErrMissingTitle) {
			t.Errorf("error = %v, want ErrMissingTitle", err)
		}
	})

	t.Run("title column under another name", func(t *testing.T) {
		t.Parallel()

		api := &fakeNotionAPI{pages: []notion.Page{
			mustDecode[notion.Page](t, `{"id":"p1",
				"properties":{"Title":{"type":"title","title":[{"plain_text":"Renamed column"}]}}}`),
		}}
		_, err := NewNotionSource(api, "db", "Name").ListPages(context.Background())
		if !errors.Is(err, ErrMissingTitle) {
			t.Errorf("error = %v, want ErrMissingTitle", err)
		}

		pages, err := NewNotionSource(api, "db", "Title").ListPages(context.Background())
		if err != nil {
			t.Fatalf("ListPages(Title) error: %v", err)
		}
		if len(pages) != 1 || pages[0].Title != "Renamed column" {
			t.Errorf("ListPages(Title) = %+v", pages)
		}
	})

	t.Run("api error propagates", func(t *testing.T) {
		t.Parallel()

		api := &fakeNotionAPI{queryErr: &notion.APIError{Status: 404}}
		_, err := NewNotionSource(api, "db", "Name").ListPages(context.Background())
		if !errors.Is(err, notion.ErrAPIResponse) {
			t.Errorf("error = %v, want notion.ErrAPIResponse", err)
		}
	})
}

func TestNotionSource_ListBlocks(t *testing.T) {
	t.Parallel()

	api := &fakeNotionAPI{blocks: map[string][]notion.Block{
		"p1": {
			mustDecode[notion.Block](t, `{"type":"paragraph","paragraph":{"rich_text":[
				{"plain_text":"Hello","annotations":{"bold":true,"code":true}},
				{"plain_text":" there","annotations":"broken"}]}}`),
			mustDecode[notion.Block](t, `{"type":"image","image":{"external":{"url":"https://cdn/x.png"}}}`),
			mustDecode[notion.Block](t, `{"type":"callout","callout":{"rich_text":[],"icon":{"emoji":"🔥"}}}`),
			mustDecode[notion.Block](t, `{"type":"code","code":{"rich_text":[{"plain_text":"x"}],"language":"go"}}`),
			mustDecode[notion.Block](t, `{"type":"table","table":{"table_width":2}}`),
		},
	}}

	blocks, err := NewNotionSource(api, "db", "").ListBlocks(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 5 {
		t.Fatalf("len(blocks) = %d, want 5", len(blocks))
	}

	p := blocks[0]
	if p.Kind != KindParagraph || len(p.Text) != 2 {
		t.Fatalf("paragraph = %+v", p)
	}
	if want := (Annotations{Bold: true, Code: true}); p.Text[0].Annotations != want {
		t.Errorf("run 0 annotations = %+v, want %+v", p.Text[0].Annotations, want)
	}
	if p.Text[1].Annotations != (Annotations{}) {
		t.Errorf("malformed annotations = %+v, want all false", p.Text[1].Annotations)
	}
	if blocks[1].URL != "https://cdn/x.png" {
		t.Errorf("image URL = %q", blocks[1].URL)
	}
	if blocks[2].Icon != "🔥" || len(blocks[2].Text) != 0 {
		t.Errorf("callout = %+v", blocks[2])
	}
	if blocks[3].Language != "go" {
		t.Errorf("code language = %q, want go", blocks[3].Language)
	}
	if blocks[4].Kind != "table" {
		t.Errorf("unknown kind = %q, want table", blocks[4].Kind)
	}
}

func TestNotionSource_ListBlocks_Empty(t *testing.T) {
	t.Parallel()

	blocks, err := NewNotionSource(&fakeNotionAPI{}, "db", "").ListBlocks(context.Background(), "none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("len(blocks) = %d, want 0", len(blocks))
	}
}
