package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status      string          `json:"status"` // "ready", "warnings", "errors"
	Credentials credentialsInfo `json:"credentials"`
	Index       indexInfo       `json:"index"`
	Output      outputInfo      `json:"output"`
	Chrome      chromeInfo      `json:"chrome"`
	Warnings    []string        `json:"warnings,omitempty"`
	Errors      []string        `json:"errors,omitempty"`
}

type credentialsInfo struct {
	Token      bool `json:"token"`
	DatabaseID bool `json:"database_id"`
}

type indexInfo struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Markers bool   `json:"markers"`
}

type outputInfo struct {
	Layout   string `json:"layout"`
	NotesDir string `json:"notes_dir,omitempty"`
	Writable bool   `json:"writable"`
}

type chromeInfo struct {
	Needed bool   `json:"needed"`
	Found  bool   `json:"found"`
	Path   string `json:"path,omitempty"`
}

// lookChrome finds a browser binary; replaced in tests.
var lookChrome = launcher.LookPath

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var configName string
	var jsonOutput bool
	fs.StringVarP(&configName, "config", "c", "", "config file name or path")
	fs.BoolVar(&jsonOutput, "json", false, "print results as JSON")
	fs.Usage = func() { printDoctorUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return reportError(env, fmt.Errorf("%w: %v", ErrUsage, err))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loadDotEnv(env.DotEnv, logger)
	ec := loadEnvConfig()
	cfg, err := resolveConfig(configName, ec, logger)
	if err != nil {
		return reportError(env, err)
	}
	applyEnvConfig(ec, cfg)

	result := runDoctor(ec, cfg)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ec *envConfig, cfg *config.Config) *doctorResult {
	result := &doctorResult{Status: "ready"}

	checkCredentials(result, ec, cfg)
	checkIndex(result, cfg)
	checkOutput(result, cfg)
	checkChrome(result, cfg)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

func checkCredentials(result *doctorResult, ec *envConfig, cfg *config.Config) {
	result.Credentials.Token = ec.Token != ""
	result.Credentials.DatabaseID = cfg.Notion.DatabaseID != ""
	for _, name := range missingCredentials(ec, cfg) {
		result.Errors = append(result.Errors, name+" is not set")
	}
}

// checkIndex verifies the index carries both markers. A missing index is
// only a warning: generate creates it.
func checkIndex(result *doctorResult, cfg *config.Config) {
	result.Index.Path = cfg.Output.IndexPath
	data, err := os.ReadFile(cfg.Output.IndexPath) // #nosec G304 -- index path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Index %s does not exist, it will be created", cfg.Output.IndexPath))
			return
		}
		result.Errors = append(result.Errors, fmt.Sprintf("Index not readable: %v", err))
		return
	}
	result.Index.Exists = true
	result.Index.Markers = notesite.HasIndexMarkers(string(data))
	if !result.Index.Markers {
		result.Errors = append(result.Errors, fmt.Sprintf("Index has no %s ... %s section",
			notesite.IndexStartMarker, notesite.IndexEndMarker))
	}
}

func checkOutput(result *doctorResult, cfg *config.Config) {
	result.Output.Layout = cfg.Output.Layout
	dir := filepath.Dir(cfg.Output.IndexPath)
	if cfg.Output.Layout == config.LayoutNested {
		result.Output.NotesDir = cfg.Output.NotesDir
		dir = filepath.Join(dir, cfg.Output.NotesDir)
	}
	if err := fileutil.CheckWritableDir(dir); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %v", err))
		return
	}
	result.Output.Writable = true
}

// checkChrome looks for a browser. Only PDF export needs one, and rod can
// download Chromium, so a miss is a warning.
func checkChrome(result *doctorResult, cfg *config.Config) {
	result.Chrome.Needed = cfg.PDF.Enabled
	path := os.Getenv("ROD_BROWSER_BIN")
	found := path != ""
	if !found {
		path, found = lookChrome()
	}
	if !found {
		if cfg.PDF.Enabled {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found, it will be downloaded on first PDF export (or set ROD_BROWSER_BIN)")
		}
		return
	}
	result.Chrome.Found = true
	result.Chrome.Path = path
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "notesite doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Notion")
	fmt.Fprintf(w, "  %s NOTION_TOKEN\n", okOrError(r.Credentials.Token))
	fmt.Fprintf(w, "  %s NOTION_DATABASE_ID\n", okOrError(r.Credentials.DatabaseID))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Index")
	switch {
	case !r.Index.Exists:
		fmt.Fprintf(w, "  [WARN] %s: will be created\n", r.Index.Path)
	case r.Index.Markers:
		fmt.Fprintf(w, "  [OK] %s: notes section found\n", r.Index.Path)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: notes section missing\n", r.Index.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	fmt.Fprintf(w, "  [OK] Layout: %s\n", r.Output.Layout)
	if r.Output.Writable {
		fmt.Fprintln(w, "  [OK] Directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Directory: not writable")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (PDF export)")
	switch {
	case r.Chrome.Found:
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
	case r.Chrome.Needed:
		fmt.Fprintln(w, "  [WARN] Not found")
	default:
		fmt.Fprintln(w, "  [OK] Not needed")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func okOrError(ok bool) string {
	if ok {
		return "[OK]"
	}
	return "[ERROR]"
}
