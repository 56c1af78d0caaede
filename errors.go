package notesite

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSource       = errors.New("no page source configured")
	ErrMissingTitle   = errors.New("page has no title")
	ErrInvalidLayout  = errors.New("invalid layout")
	ErrTemplateParse  = errors.New("template parsing failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrWriteOutput    = errors.New("writing output failed")
	ErrHighlight      = errors.New("syntax highlighting failed")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
