package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-notesite/internal/config"
)

// Notion credentials. The names are shared with existing deploy workflows.
const (
	envNotionToken      = "NOTION_TOKEN"
	envNotionDatabaseID = "NOTION_DATABASE_ID"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	Token      string // NOTION_TOKEN: integration secret, never read from files
	DatabaseID string // NOTION_DATABASE_ID: source database

	ConfigPath string // NOTESITE_CONFIG: config file name or path
	IndexPath  string // NOTESITE_INDEX: index document
	NotesDir   string // NOTESITE_NOTES_DIR: note directory (nested layout)
	Layout     string // NOTESITE_LAYOUT: inline, flat, nested
}

// knownEnvVars lists valid NOTESITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NOTESITE_CONFIG":    true,
	"NOTESITE_INDEX":     true,
	"NOTESITE_NOTES_DIR": true,
	"NOTESITE_LAYOUT":    true,
}

// loadDotEnv loads a .env file into the process environment. Variables
// already set win over the file. A missing file is not an error.
func loadDotEnv(path string, logger *slog.Logger) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		logger.Warn("ignoring unreadable env file", "path", path, "error", err)
		return
	}
	logger.Debug("loaded env file", "path", path)
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		Token:      os.Getenv(envNotionToken),
		DatabaseID: os.Getenv(envNotionDatabaseID),
		ConfigPath: os.Getenv("NOTESITE_CONFIG"),
		IndexPath:  os.Getenv("NOTESITE_INDEX"),
		NotesDir:   os.Getenv("NOTESITE_NOTES_DIR"),
		Layout:     os.Getenv("NOTESITE_LAYOUT"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized NOTESITE_* variables.
// Helps catch typos like NOTESITE_LAYOUTS.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "NOTESITE_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				logger.Warn("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over cfg.
// Order of precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DatabaseID != "" {
		cfg.Notion.DatabaseID = env.DatabaseID
	}
	if env.IndexPath != "" {
		cfg.Output.IndexPath = env.IndexPath
	}
	if env.NotesDir != "" {
		cfg.Output.NotesDir = env.NotesDir
	}
	if env.Layout != "" {
		cfg.Output.Layout = strings.ToLower(env.Layout)
	}
}

// missingCredentials names the unset Notion variables. The database id may
// also come from the config file.
func missingCredentials(env *envConfig, cfg *config.Config) []string {
	var missing []string
	if env.Token == "" {
		missing = append(missing, envNotionToken)
	}
	if cfg.Notion.DatabaseID == "" {
		missing = append(missing, envNotionDatabaseID)
	}
	return missing
}
