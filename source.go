package notesite

import (
	"context"
	"fmt"

	"github.com/alnah/go-notesite/internal/notion"
)

// DefaultTitleProperty is the database property holding page titles.
const DefaultTitleProperty = "Name"

// Source supplies pages and their blocks. Pages come back without Blocks;
// ListBlocks fetches them per page.
type Source interface {
	ListPages(ctx context.Context) ([]Page, error)
	ListBlocks(ctx context.Context, pageID string) ([]Block, error)
}

// NotionAPI is the subset of the Notion client a NotionSource calls.
type NotionAPI interface {
	QueryDatabase(ctx context.Context, databaseID string) ([]notion.Page, error)
	BlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// NotionSource reads pages from a Notion database.
type NotionSource struct {
	api           NotionAPI
	databaseID    string
	titleProperty string
}

// NewNotionSource creates a Source over a database. An empty titleProperty
// uses DefaultTitleProperty.
func NewNotionSource(api NotionAPI, databaseID, titleProperty string) *NotionSource {
	if titleProperty == "" {
		titleProperty = DefaultTitleProperty
	}
	return &NotionSource{api: api, databaseID: databaseID, titleProperty: titleProperty}
}

// ListPages queries the database. Every page must carry a title under the
// configured property; the first page without one fails the whole listing
// with ErrMissingTitle. Other title-typed properties are not consulted.
func (s *NotionSource) ListPages(ctx context.Context) ([]Page, error) {
	raw, err := s.api.QueryDatabase(ctx, s.databaseID)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(raw))
	for _, p := range raw {
		page, err := pageFromNotion(p, s.titleProperty)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// ListBlocks fetches a page's top-level blocks.
func (s *NotionSource) ListBlocks(ctx context.Context, pageID string) ([]Block, error) {
	raw, err := s.api.BlockChildren(ctx, pageID)
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, len(raw))
	for i, b := range raw {
		blocks[i] = blockFromNotion(b)
	}
	return blocks, nil
}

func pageFromNotion(p notion.Page, titleProperty string) (Page, error) {
	prop, ok := p.TitleProperty(titleProperty)
	if !ok || len(prop.Title) == 0 {
		return Page{}, fmt.Errorf("%w: page %s (property %q)", ErrMissingTitle, p.ID, titleProperty)
	}
	return Page{
		ID:         p.ID,
		Title:      prop.Title[0].PlainText,
		LastEdited: p.LastEditedTime,
	}, nil
}

func blockFromNotion(b notion.Block) Block {
	block := Block{
		Kind:     BlockKind(b.Type),
		URL:      b.ImageURL(),
		Language: b.Language(),
		Icon:     b.Emoji(),
	}
	if rich := b.RichText(); len(rich) > 0 {
		block.Text = make([]TextRun, len(rich))
		for i, rt := range rich {
			a := rt.Styles()
			block.Text[i] = TextRun{
				Text: rt.PlainText,
				Annotations: Annotations{
					Bold:          a.Bold,
					Italic:        a.Italic,
					Underline:     a.Underline,
					Strikethrough: a.Strikethrough,
					Code:          a.Code,
				},
			}
		}
	}
	return block
}

// Compile-time interface checks.
var (
	_ Source    = (*NotionSource)(nil)
	_ NotionAPI = (*notion.Client)(nil)
)
