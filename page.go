package notesite

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/dateutil"
)

// PageAssembler builds note documents and index entries from templates.
// Templates use text/template: titles and fragments are inserted verbatim,
// the same way block fragments are.
type PageAssembler struct {
	site       SiteOptions
	note       *template.Template
	card       *template.Template
	inlineCard *template.Template
	index      *template.Template
}

type noteData struct {
	Lang        string
	Dir         string
	Title       string
	Stylesheet  string
	ExtraCSS    string
	IndexHref   string
	SiteTitle   string
	BylineLabel string
	Date        string
	Content     string
}

type cardData struct {
	Href        string
	Title       string
	BylineLabel string
	Date        string
	Content     string
}

type indexData struct {
	Lang       string
	Dir        string
	Title      string
	Stylesheet string
	ExtraCSS   string
	Intro      string
}

var templateFuncs = template.FuncMap{
	"stylesheet": stylesheetTag,
}

// NewPageAssembler parses the template set. A nil set uses the embedded
// templates.
func NewPageAssembler(ts *assets.TemplateSet, site SiteOptions) (*PageAssembler, error) {
	if ts == nil {
		ts = assets.DefaultTemplateSet()
	}
	if site.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(site.DateFormat); err != nil {
			return nil, err
		}
	}

	a := &PageAssembler{site: site}
	targets := []struct {
		name string
		src  string
		dst  **template.Template
	}{
		{assets.NoteTemplate, ts.Note, &a.note},
		{assets.CardTemplate, ts.Card, &a.card},
		{assets.InlineCardTemplate, ts.InlineCard, &a.inlineCard},
		{assets.IndexTemplate, ts.Index, &a.index},
	}
	for _, t := range targets {
		tmpl, err := template.New(t.name).Funcs(templateFuncs).Parse(t.src)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, t.name, err)
		}
		*t.dst = tmpl
	}
	return a, nil
}

// AssembleNote renders the standalone document for p. fragments are the
// rendered blocks, indexHref links back to the index and extraCSS is
// inlined in the head when non-empty.
func (a *PageAssembler) AssembleNote(p Page, fragments []string, indexHref, extraCSS string) (string, error) {
	return execute(a.note, noteData{
		Lang:        a.site.Lang,
		Dir:         a.site.Dir,
		Title:       p.Title,
		Stylesheet:  a.site.Stylesheet,
		ExtraCSS:    extraCSS,
		IndexHref:   indexHref,
		SiteTitle:   a.site.Title,
		BylineLabel: a.site.BylineLabel,
		Date:        a.FormatDate(p.LastEdited),
		Content:     strings.Join(fragments, ""),
	})
}

// BuildIndexEntry renders the index card linking to a note at href.
func (a *PageAssembler) BuildIndexEntry(p Page, href string) (string, error) {
	return execute(a.card, cardData{
		Href:        href,
		Title:       p.Title,
		BylineLabel: a.site.BylineLabel,
		Date:        a.FormatDate(p.LastEdited),
	})
}

// BuildInlineEntry renders an index card that embeds the note content.
func (a *PageAssembler) BuildInlineEntry(p Page, fragments []string) (string, error) {
	return execute(a.inlineCard, cardData{
		Title:       p.Title,
		BylineLabel: a.site.BylineLabel,
		Date:        a.FormatDate(p.LastEdited),
		Content:     strings.Join(fragments, ""),
	})
}

// AssembleIndex renders a fresh index document holding an empty notes
// section. intro is an HTML fragment placed above the notes.
func (a *PageAssembler) AssembleIndex(intro, extraCSS string) (string, error) {
	return execute(a.index, indexData{
		Lang:       a.site.Lang,
		Dir:        a.site.Dir,
		Title:      a.site.Title,
		Stylesheet: a.site.Stylesheet,
		ExtraCSS:   extraCSS,
		Intro:      intro,
	})
}

// FormatDate returns the display date for a last-edited timestamp.
func (a *PageAssembler) FormatDate(lastEdited string) string {
	if a.site.DateFormat == "" {
		return DatePart(lastEdited)
	}
	// Format was validated in NewPageAssembler; a parse failure on the
	// timestamp already falls back to the date part.
	s, _ := dateutil.FormatTimestamp(lastEdited, a.site.DateFormat)
	return s
}

func execute(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, t.Name(), err)
	}
	return sb.String(), nil
}

// stylesheetTag references a .css URL with a link tag and anything else,
// such as the Tailwind CDN, with a script tag.
func stylesheetTag(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(url), ".css") {
		return `<link rel="stylesheet" href="` + url + `">`
	}
	return `<script src="` + url + `"></script>`
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title and collapses each run of characters outside
// [a-z0-9] into a single hyphen. Distinct titles may share a slug.
func Slugify(title string) string {
	return slugUnsafe.ReplaceAllString(strings.ToLower(title), "-")
}

// DatePart returns the part of an ISO-8601 timestamp before "T".
func DatePart(timestamp string) string {
	return dateutil.DatePart(timestamp)
}
