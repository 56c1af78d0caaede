package notesite

import (
	"log/slog"
	"time"

	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/pipeline"
)

// Option configures a Service.
type Option func(*Service)

// Default output locations.
const (
	DefaultIndexPath  = "personal_newsletter.html"
	DefaultNotesDir   = "notes"
	DefaultPDFTimeout = 30 * time.Second
)

// WithLogger sets the logger. Without it the service logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIndexPath sets the index document updated by Generate.
func WithIndexPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.cfg.indexPath = path
		}
	}
}

// WithNotesDir sets the note directory for the nested layout, relative to
// the index directory.
func WithNotesDir(dir string) Option {
	return func(s *Service) {
		s.cfg.notesDir = dir
	}
}

// WithLayout selects the output layout.
func WithLayout(l Layout) Option {
	return func(s *Service) {
		s.cfg.layout = l
	}
}

// WithSite sets document presentation.
func WithSite(site SiteOptions) Option {
	return func(s *Service) {
		s.cfg.site = site
	}
}

// WithTemplates replaces the embedded templates.
func WithTemplates(ts *assets.TemplateSet) Option {
	return func(s *Service) {
		s.cfg.templates = ts
	}
}

// WithDefaultCalloutIcon sets the icon for callouts without one.
func WithDefaultCalloutIcon(icon string) Option {
	return func(s *Service) {
		s.cfg.calloutIcon = icon
	}
}

// WithHighlight enables syntax highlighting of code blocks with a Chroma
// style.
func WithHighlight(style string) Option {
	return func(s *Service) {
		s.cfg.highlight = true
		s.cfg.highlightStyle = style
	}
}

// WithIntro sets Markdown rendered above the notes when the index has to be
// created.
func WithIntro(markdown string) Option {
	return func(s *Service) {
		s.cfg.intro = markdown
	}
}

// WithPDF exports a PDF next to every note file, using headless Chrome.
func WithPDF(timeout time.Duration) Option {
	return func(s *Service) {
		s.cfg.pdf = true
		if timeout > 0 {
			s.cfg.pdfTimeout = timeout
		}
	}
}

// withPDFConverter injects a converter, for tests.
func withPDFConverter(c pdfConverter) Option {
	return func(s *Service) {
		s.cfg.pdf = true
		s.pdf = c
	}
}

// withIntroConverter injects the Markdown converter, for tests.
func withIntroConverter(c pipeline.MarkdownConverter) Option {
	return func(s *Service) {
		s.introConverter = c
	}
}
