package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/hints"
)

// defaultConfigName is looked up when no config is given. Unlike an
// explicit --config, a missing default config is not an error.
const defaultConfigName = "notesite"

// runGenerate resolves configuration, builds the service and runs it.
func runGenerate(ctx context.Context, flags *generateFlags, env *Environment, logger *slog.Logger) error {
	loadDotEnv(env.DotEnv, logger)
	ec := loadEnvConfig()
	warnUnknownEnvVars(logger)

	cfg, err := resolveConfig(flags.common.config, ec, logger)
	if err != nil {
		return err
	}
	applyEnvConfig(ec, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Credentials are not required upfront: the first API call reports the
	// failure with a status-specific hint.
	if missing := missingCredentials(ec, cfg); len(missing) > 0 {
		logger.Warn("missing Notion credentials",
			"vars", strings.Join(missing, ","),
			"hint", hints.Plain(hints.ForMissingCredentials(missing)))
	}

	opts, err := serviceOptions(cfg, logger)
	if err != nil {
		return err
	}

	svc, err := notesite.New(env.NewSource(cfg, ec.Token), opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			logger.Debug("closing browser", "error", cerr)
		}
	}()

	report, err := svc.Generate(ctx)
	if err != nil {
		return err
	}

	printReport(env, report, flags.common.quiet)
	return nil
}

// resolveConfig loads the config named by --config, then NOTESITE_CONFIG,
// then the default name. Only the default name may be absent.
func resolveConfig(flagConfig string, ec *envConfig, logger *slog.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = ec.ConfigPath
	}
	explicit := name != ""
	if !explicit {
		name = defaultConfigName
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if !explicit && errors.Is(err, config.ErrConfigNotFound) {
			logger.Debug("no config file, using defaults")
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("loaded config", "name", name)
	return cfg, nil
}

// serviceOptions translates cfg into service options.
func serviceOptions(cfg *config.Config, logger *slog.Logger) ([]notesite.Option, error) {
	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	templates, err := assets.LoadTemplateSet(resolver)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	opts := []notesite.Option{
		notesite.WithLogger(logger),
		notesite.WithIndexPath(cfg.Output.IndexPath),
		notesite.WithNotesDir(cfg.Output.NotesDir),
		notesite.WithLayout(notesite.Layout(cfg.Output.Layout)),
		notesite.WithTemplates(templates),
		notesite.WithDefaultCalloutIcon(cfg.Render.CalloutIcon),
		notesite.WithIntro(cfg.Site.Intro),
		notesite.WithSite(notesite.SiteOptions{
			Title:       cfg.Site.Title,
			Lang:        cfg.Site.Lang,
			Dir:         strings.ToLower(cfg.Site.Dir),
			Stylesheet:  cfg.Site.Stylesheet,
			BylineLabel: cfg.Site.BylineLabel,
			DateFormat:  cfg.Site.DateFormat,
		}),
	}
	if cfg.Render.Highlight {
		opts = append(opts, notesite.WithHighlight(cfg.Render.HighlightStyle))
	}
	if cfg.PDF.Enabled {
		opts = append(opts, notesite.WithPDF(cfg.PDFTimeout()))
	}
	return opts, nil
}

// printReport summarizes the run on stdout.
func printReport(env *Environment, r *notesite.Report, quiet bool) {
	if quiet {
		return
	}
	for _, n := range r.Notes {
		switch {
		case n.PDF != "":
			fmt.Fprintf(env.Stdout, "Created %s (+ %s)\n", n.Path, n.PDF)
		case n.Path != "":
			fmt.Fprintf(env.Stdout, "Created %s\n", n.Path)
		}
	}

	status := "updated"
	switch {
	case !r.IndexUpdated:
		status = "unchanged (no notes section)"
	case r.IndexCreated:
		status = "created"
	}
	fmt.Fprintf(env.Stdout, "Index %s: %s (%d notes)\n", status, r.IndexPath, len(r.Notes))
}
