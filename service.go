package notesite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/fileutil"
	"github.com/alnah/go-notesite/internal/hints"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Service fetches pages from a Source and writes the site.
type Service struct {
	cfg            serviceConfig
	source         Source
	renderer       *Renderer
	assembler      *PageAssembler
	introConverter pipeline.MarkdownConverter
	pdf            pdfConverter
	extraCSS       string
	logger         *slog.Logger
}

type serviceConfig struct {
	indexPath      string
	notesDir       string
	layout         Layout
	site           SiteOptions
	templates      *assets.TemplateSet
	calloutIcon    string
	highlight      bool
	highlightStyle string
	intro          string
	pdf            bool
	pdfTimeout     time.Duration
}

// Report summarizes a Generate run.
type Report struct {
	Notes        []NoteResult
	IndexPath    string
	IndexCreated bool // The index did not exist and was bootstrapped
	IndexUpdated bool // The notes section was found and replaced
}

// NoteResult describes one generated note.
type NoteResult struct {
	Title string
	Slug  string
	Path  string // Empty for the inline layout
	PDF   string // Empty unless PDF export is on
}

// New creates a Service reading from source.
// Close must be called to release the browser when PDF export is on.
func New(source Source, opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			indexPath:  DefaultIndexPath,
			notesDir:   DefaultNotesDir,
			layout:     LayoutNested,
			site:       DefaultSiteOptions(),
			pdfTimeout: DefaultPDFTimeout,
		},
		source: source,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.cfg.layout.Validate(); err != nil {
		return nil, err
	}

	rendererOpts := []RendererOption{
		WithCalloutIcon(s.cfg.calloutIcon),
		WithRendererLogger(s.logger),
	}
	if s.cfg.highlight {
		h := NewHighlighter(s.cfg.highlightStyle)
		css, err := h.CSS()
		if err != nil {
			return nil, err
		}
		s.extraCSS = css
		rendererOpts = append(rendererOpts, WithHighlighter(h))
	}
	s.renderer = NewRenderer(rendererOpts...)

	assembler, err := NewPageAssembler(s.cfg.templates, s.cfg.site)
	if err != nil {
		return nil, err
	}
	s.assembler = assembler

	if s.introConverter == nil {
		style := s.cfg.highlightStyle
		if style == "" {
			style = "github"
		}
		s.introConverter = pipeline.NewGoldmarkConverter(style)
	}

	if s.cfg.pdf && s.cfg.layout == LayoutInline {
		return nil, fmt.Errorf("%w: PDF export needs note files (flat or nested layout)", ErrInvalidLayout)
	}
	if s.cfg.pdf && s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.pdfTimeout)
	}

	return s, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// Generate runs one full pass: list pages, render each, write note files,
// then rewrite the notes section of the index. Runs are sequential and
// stop at the first source, render or write error. Note files written
// before an error are left in place.
func (s *Service) Generate(ctx context.Context) (*Report, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	pages, err := s.source.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	s.logger.Info("fetched pages", "count", len(pages))

	report := &Report{IndexPath: s.cfg.indexPath}
	var entries strings.Builder

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, result, err := s.generateNote(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("note %q: %w", page.Title, err)
		}
		entries.WriteString(entry)
		report.Notes = append(report.Notes, result)
	}

	created, updated, err := s.updateIndex(ctx, entries.String())
	if err != nil {
		return nil, err
	}
	report.IndexCreated = created
	report.IndexUpdated = updated

	return report, nil
}

// generateNote renders one page and returns its index entry.
func (s *Service) generateNote(ctx context.Context, page Page) (string, NoteResult, error) {
	blocks, err := s.source.ListBlocks(ctx, page.ID)
	if err != nil {
		return "", NoteResult{}, fmt.Errorf("listing blocks: %w", err)
	}
	page.Blocks = blocks
	fragments := s.renderer.RenderBlocks(blocks)

	result := NoteResult{Title: page.Title, Slug: Slugify(page.Title)}
	log := s.logger.With("title", page.Title, "blocks", len(blocks))

	if s.cfg.layout == LayoutInline {
		entry, err := s.assembler.BuildInlineEntry(page, fragments)
		if err != nil {
			return "", result, err
		}
		log.Debug("rendered inline note")
		return entry, result, nil
	}

	notePath, href, indexHref := s.notePaths(result.Slug)
	doc, err := s.assembler.AssembleNote(page, fragments, indexHref, s.extraCSS)
	if err != nil {
		return "", result, err
	}
	if err := fileutil.WriteFile(notePath, doc); err != nil {
		return "", result, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Path = notePath
	log.Debug("wrote note", "path", notePath)

	if s.pdf != nil {
		pdfPath, err := s.writePDF(ctx, page, doc, notePath)
		if err != nil {
			return "", result, err
		}
		result.PDF = pdfPath
		log.Debug("wrote pdf", "path", pdfPath)
	}

	entry, err := s.assembler.BuildIndexEntry(page, href)
	if err != nil {
		return "", result, err
	}
	return entry, result, nil
}

// notePaths returns the note file path, its link from the index and the
// link back to the index from the note.
func (s *Service) notePaths(slug string) (notePath, href, indexHref string) {
	indexDir := filepath.Dir(s.cfg.indexPath)
	indexName := filepath.Base(s.cfg.indexPath)
	file := slug + ".html"

	dir := path.Clean(filepath.ToSlash(s.cfg.notesDir))
	if s.cfg.layout == LayoutFlat || dir == "." || dir == "" {
		return filepath.Join(indexDir, file), file, indexName
	}

	depth := strings.Count(dir, "/") + 1
	return filepath.Join(indexDir, filepath.FromSlash(dir), file),
		dir + "/" + file,
		strings.Repeat("../", depth) + indexName
}

func (s *Service) writePDF(ctx context.Context, page Page, doc, notePath string) (string, error) {
	data, err := s.pdf.ToPDF(ctx, doc, &pdfOptions{
		Title: page.Title,
		Date:  s.assembler.FormatDate(page.LastEdited),
	})
	if err != nil {
		return "", fmt.Errorf("converting to PDF: %w", err)
	}

	pdfPath := strings.TrimSuffix(notePath, filepath.Ext(notePath)) + ".pdf"
	if err := fileutil.WriteFile(pdfPath, string(data)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return pdfPath, nil
}

// updateIndex rewrites the notes section, creating the index from the
// index template when the file is absent. A document without markers is
// left untouched and reported with a warning.
func (s *Service) updateIndex(ctx context.Context, entries string) (created, updated bool, err error) {
	data, err := os.ReadFile(s.cfg.indexPath) // #nosec G304 -- index path is user-provided
	var doc string
	switch {
	case err == nil:
		doc = string(data)
	case errors.Is(err, fs.ErrNotExist):
		doc, err = s.bootstrapIndex(ctx)
		if err != nil {
			return false, false, err
		}
		created = true
		s.logger.Info("creating index", "path", s.cfg.indexPath)
	default:
		return false, false, fmt.Errorf("reading index: %w", err)
	}

	newDoc, ok := UpdateIndex(doc, entries)
	if !ok {
		s.logger.Warn("index has no notes section, leaving it unchanged",
			"path", s.cfg.indexPath,
			"hint", hints.Plain(hints.ForMissingMarkers(IndexStartMarker, IndexEndMarker)))
		return created, false, nil
	}

	if err := fileutil.WriteFile(s.cfg.indexPath, newDoc); err != nil {
		return created, false, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	s.logger.Info("updated index", "path", s.cfg.indexPath)
	return created, true, nil
}

func (s *Service) bootstrapIndex(ctx context.Context) (string, error) {
	var intro string
	if s.cfg.intro != "" {
		var err error
		intro, err = s.introConverter.ToHTML(ctx, s.cfg.intro)
		if err != nil {
			return "", fmt.Errorf("rendering intro: %w", err)
		}
	}
	return s.assembler.AssembleIndex(intro, s.extraCSS)
}
