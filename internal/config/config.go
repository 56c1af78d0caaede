package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-notesite/internal/dateutil"
	"github.com/alnah/go-notesite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Output layouts. Each one matches a generation of the notes site.
const (
	LayoutInline = "inline" // cards carry the full note, no per-note files
	LayoutFlat   = "flat"   // note files next to the index
	LayoutNested = "nested" // note files under output.notesDir
)

// Field length limits.
const (
	MaxDatabaseIDLength  = 64   // UUID with or without dashes
	MaxPropertyLength    = 100  // Notion property name
	MaxURLLength         = 2048 // Browser limit
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxLabelLength       = 100  // Byline label
	MaxTitleLength       = 200  // Site title
	MaxIconLength        = 16   // One emoji, possibly with modifiers
	MaxLangLength        = 35   // BCP 47 tag
	MaxIntroLength       = 8192 // Intro markdown
	MaxStyleNameLength   = 50   // Chroma style name
	MaxDateFormatLength  = dateutil.MaxDateFormatLength
	MaxNotionVersionSize = 20 // "2022-06-28"
)

// Default values, matching the behavior of the first notes generator.
const (
	DefaultIndexPath      = "personal_newsletter.html"
	DefaultNotesDir       = "notes"
	DefaultTitleProperty  = "Name"
	DefaultBaseURL        = "https://api.notion.com/v1"
	DefaultNotionVersion  = "2022-06-28"
	DefaultTimeout        = "30s"
	DefaultLang           = "ar"
	DefaultDir            = "rtl"
	DefaultStylesheet     = "https://cdn.tailwindcss.com"
	DefaultBylineLabel    = "نشرت في:"
	DefaultCalloutIcon    = "💡"
	DefaultHighlightStyle = "github"
	DefaultSiteTitle      = "Personal Newsletter"
)

// Config holds all configuration for site generation.
type Config struct {
	Notion NotionConfig `yaml:"notion"`
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// NotionConfig defines the source database. The bearer token is never read
// from a file: it comes from NOTION_TOKEN only.
type NotionConfig struct {
	DatabaseID    string `yaml:"databaseID"`    // Overridden by NOTION_DATABASE_ID
	TitleProperty string `yaml:"titleProperty"` // Page property holding the title
	BaseURL       string `yaml:"baseURL"`
	Version       string `yaml:"version"` // Notion-Version header
	Timeout       string `yaml:"timeout"` // Per-request timeout, e.g. "30s"
}

// OutputConfig defines where generated files go.
type OutputConfig struct {
	IndexPath string `yaml:"indexPath"` // Aggregate page, updated in place
	NotesDir  string `yaml:"notesDir"`  // Relative to the index directory (nested layout)
	Layout    string `yaml:"layout"`    // inline, flat, nested
}

// SiteConfig defines document-level presentation.
type SiteConfig struct {
	Title       string `yaml:"title"` // Index heading and note back link
	Lang        string `yaml:"lang"`
	Dir         string `yaml:"dir"`         // ltr, rtl, auto
	Stylesheet  string `yaml:"stylesheet"`  // Script or stylesheet URL
	BylineLabel string `yaml:"bylineLabel"` // Text before the date
	DateFormat  string `yaml:"dateFormat"`  // Empty = date part of the timestamp
	Intro       string `yaml:"intro"`       // Markdown for a bootstrapped index
}

// RenderConfig defines block rendering options.
type RenderConfig struct {
	CalloutIcon    string `yaml:"calloutIcon"`
	Highlight      bool   `yaml:"highlight"`      // Syntax highlight code blocks
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style name
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded templates only
}

// PDFConfig defines the optional PDF export.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"`
}

// NotionTimeout returns the parsed request timeout, or the default when
// unset or invalid. Validate reports invalid values.
func (c *Config) NotionTimeout() time.Duration {
	return parseDurationOr(c.Notion.Timeout, DefaultTimeout)
}

// PDFTimeout returns the parsed PDF timeout.
func (c *Config) PDFTimeout() time.Duration {
	return parseDurationOr(c.PDF.Timeout, DefaultTimeout)
}

func parseDurationOr(value, fallback string) time.Duration {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

// Validate checks enums, lengths and cross-field constraints.
// Called by LoadConfig, and again by the CLI after flags and environment
// overrides have been merged.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"notion.databaseID", c.Notion.DatabaseID, MaxDatabaseIDLength},
		{"notion.titleProperty", c.Notion.TitleProperty, MaxPropertyLength},
		{"notion.baseURL", c.Notion.BaseURL, MaxURLLength},
		{"notion.version", c.Notion.Version, MaxNotionVersionSize},
		{"output.indexPath", c.Output.IndexPath, MaxPathLength},
		{"output.notesDir", c.Output.NotesDir, MaxPathLength},
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.lang", c.Site.Lang, MaxLangLength},
		{"site.stylesheet", c.Site.Stylesheet, MaxURLLength},
		{"site.bylineLabel", c.Site.BylineLabel, MaxLabelLength},
		{"site.dateFormat", c.Site.DateFormat, MaxDateFormatLength},
		{"site.intro", c.Site.Intro, MaxIntroLength},
		{"render.calloutIcon", c.Render.CalloutIcon, MaxIconLength},
		{"render.highlightStyle", c.Render.HighlightStyle, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch c.Output.Layout {
	case LayoutInline, LayoutFlat, LayoutNested:
	default:
		return fmt.Errorf("%w: output.layout %q (must be inline, flat, or nested)", ErrInvalidValue, c.Output.Layout)
	}

	if c.Output.IndexPath == "" {
		return fmt.Errorf("%w: output.indexPath is required", ErrInvalidValue)
	}
	if c.Output.Layout == LayoutNested {
		if err := validateNotesDir(c.Output.NotesDir); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Site.Dir) {
	case "", "ltr", "rtl", "auto":
	default:
		return fmt.Errorf("%w: site.dir %q (must be ltr, rtl, or auto)", ErrInvalidValue, c.Site.Dir)
	}

	if c.Site.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(c.Site.DateFormat); err != nil {
			return fmt.Errorf("site.dateFormat: %w", err)
		}
	}

	if err := validateDuration("notion.timeout", c.Notion.Timeout); err != nil {
		return err
	}
	if err := validateDuration("pdf.timeout", c.PDF.Timeout); err != nil {
		return err
	}

	if c.PDF.Enabled && c.Output.Layout == LayoutInline {
		return fmt.Errorf("%w: pdf export needs per-note files (layout flat or nested)", ErrInvalidValue)
	}

	return nil
}

// validateNotesDir rejects absolute paths and parent references so every
// note stays below the index directory and relative links keep working.
func validateNotesDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output.notesDir is required for the nested layout", ErrInvalidValue)
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%w: output.notesDir %q must be relative", ErrInvalidValue, dir)
	}
	for _, part := range strings.FieldsFunc(dir, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return fmt.Errorf("%w: output.notesDir %q escapes the index directory", ErrInvalidValue, dir)
		}
	}
	return nil
}

func validateDuration(fieldName, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fmt.Errorf("%w: %s %q (must be a positive duration like 30s)", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// Titles come from the "Name" property, pages use the Tailwind CDN and an
// Arabic byline, and notes are nested under notes/.
func DefaultConfig() *Config {
	return &Config{
		Notion: NotionConfig{
			TitleProperty: DefaultTitleProperty,
			BaseURL:       DefaultBaseURL,
			Version:       DefaultNotionVersion,
			Timeout:       DefaultTimeout,
		},
		Output: OutputConfig{
			IndexPath: DefaultIndexPath,
			NotesDir:  DefaultNotesDir,
			Layout:    LayoutNested,
		},
		Site: SiteConfig{
			Title:       DefaultSiteTitle,
			Lang:        DefaultLang,
			Dir:         DefaultDir,
			Stylesheet:  DefaultStylesheet,
			BylineLabel: DefaultBylineLabel,
		},
		Render: RenderConfig{
			CalloutIcon:    DefaultCalloutIcon,
			HighlightStyle: DefaultHighlightStyle,
		},
		PDF: PDFConfig{
			Timeout: DefaultTimeout,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, used by `notesite init`.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-notesite", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
