package notesite

import "fmt"

// BlockKind names a content block type as the source reports it.
// Kinds outside the declared constants render as a visible placeholder.
type BlockKind string

// Supported block kinds.
const (
	KindParagraph        BlockKind = "paragraph"
	KindHeading1         BlockKind = "heading_1"
	KindHeading2         BlockKind = "heading_2"
	KindQuote            BlockKind = "quote"
	KindCallout          BlockKind = "callout"
	KindCode             BlockKind = "code"
	KindBulletedListItem BlockKind = "bulleted_list_item"
	KindNumberedListItem BlockKind = "numbered_list_item"
	KindImage            BlockKind = "image"
	KindDivider          BlockKind = "divider"
)

// Annotations are the inline style flags of a text run.
type Annotations struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
}

// TextRun is a span of text with uniform styling.
type TextRun struct {
	Text        string
	Annotations Annotations
}

// Block is one content unit of a page. Only the fields relevant to Kind are
// set: Text for textual kinds, URL for images, Language for code and Icon
// for callouts.
type Block struct {
	Kind     BlockKind
	Text     []TextRun
	URL      string
	Language string
	Icon     string
}

// Page is a note as read from the source.
type Page struct {
	ID         string
	Title      string
	LastEdited string // ISO-8601 timestamp
	Blocks     []Block
}

// Layout selects where note documents are written and how the index links
// to them.
type Layout string

// Layouts.
const (
	LayoutInline Layout = "inline" // Index cards embed the whole note
	LayoutFlat   Layout = "flat"   // Note files next to the index
	LayoutNested Layout = "nested" // Note files in a subdirectory
)

// Validate checks that l is a known layout.
func (l Layout) Validate() error {
	switch l {
	case LayoutInline, LayoutFlat, LayoutNested:
		return nil
	}
	return fmt.Errorf("%w: %q (must be inline, flat, or nested)", ErrInvalidLayout, string(l))
}

// SiteOptions holds document-level presentation settings shared by every
// generated page.
type SiteOptions struct {
	Title       string // Index heading, note back-link text
	Lang        string // <html lang>
	Dir         string // <html dir>
	Stylesheet  string // Script or stylesheet URL
	BylineLabel string // Text before the date
	DateFormat  string // dateutil format; empty keeps the date part of the timestamp
}

// DefaultSiteOptions returns an Arabic right-to-left page styled with the
// Tailwind CDN.
func DefaultSiteOptions() SiteOptions {
	return SiteOptions{
		Title:       "Personal Newsletter",
		Lang:        "ar",
		Dir:         "rtl",
		Stylesheet:  "https://cdn.tailwindcss.com",
		BylineLabel: "نشرت في:",
	}
}
