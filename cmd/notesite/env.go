package main

import (
	"io"
	"os"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/notion"
)

// SourceFactory builds the page source for a resolved configuration.
type SourceFactory func(cfg *config.Config, token string) notesite.Source

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout    io.Writer
	Stderr    io.Writer
	DotEnv    string        // .env file loaded before reading variables; empty skips it
	NewSource SourceFactory // Notion source in production, fakes in tests
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		DotEnv:    ".env",
		NewSource: notionSource,
	}
}

// notionSource connects to the Notion API configured in cfg.
func notionSource(cfg *config.Config, token string) notesite.Source {
	client := notion.NewClient(token,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithVersion(cfg.Notion.Version),
		notion.WithTimeout(cfg.NotionTimeout()),
	)
	return notesite.NewNotionSource(client, cfg.Notion.DatabaseID, cfg.Notion.TitleProperty)
}
