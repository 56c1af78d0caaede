package main

import (
	"errors"
	"os"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/dateutil"
	"github.com/alnah/go-notesite/internal/hints"
	"github.com/alnah/go-notesite/internal/notion"
)

// Exit codes for the notesite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // Index or note file could not be read or written
	ExitBrowser = 4 // Browser/Chrome errors during PDF export
	ExitNotion  = 5 // Notion unreachable, rejected the request, or returned bad data
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Notion errors (exit 5)
	if errors.Is(err, notion.ErrAPIResponse) ||
		errors.Is(err, notion.ErrRequest) ||
		errors.Is(err, notion.ErrDecode) ||
		errors.Is(err, notesite.ErrMissingTitle) {
		return ExitNotion
	}

	// Browser errors (exit 4)
	if errors.Is(err, notesite.ErrBrowserConnect) ||
		errors.Is(err, notesite.ErrPageCreate) ||
		errors.Is(err, notesite.ErrPageLoad) ||
		errors.Is(err, notesite.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2), checked before I/O so a
	// missing config file is a usage error.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, notesite.ErrInvalidLayout) ||
		errors.Is(err, notesite.ErrTemplateParse) ||
		errors.Is(err, notesite.ErrTemplateRender) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrConfigExists) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, notesite.ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteConfig) {
		return ExitIO
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var apiErr *notion.APIError
	switch {
	case errors.As(err, &apiErr):
		return hints.ForNotionStatus(apiErr.Status)
	case errors.Is(err, notesite.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, notesite.ErrWriteOutput), errors.Is(err, ErrWriteConfig):
		return hints.ForOutputDirectory()
	}
	return ""
}
