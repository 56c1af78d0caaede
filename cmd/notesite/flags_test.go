package main

import (
	"errors"
	"testing"

	"github.com/alnah/go-notesite/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    generateFlags
		wantErr error
	}{
		{name: "no flags", args: nil},
		{
			name: "all flags",
			args: []string{"-c", "site", "-i", "out/index.html", "--notes-dir", "posts",
				"--layout", "flat", "--pdf", "--highlight", "-q", "-v"},
			want: generateFlags{
				common:    commonFlags{config: "site", quiet: true, verbose: true},
				index:     "out/index.html",
				notesDir:  "posts",
				layout:    "flat",
				pdf:       true,
				highlight: true,
			},
		},
		{
			name: "long forms",
			args: []string{"--config=site.yaml", "--index=i.html", "--quiet"},
			want: generateFlags{common: commonFlags{config: "site.yaml", quiet: true}, index: "i.html"},
		},
		{name: "unknown flag", args: []string{"--output", "x"}, wantErr: ErrUsage},
		{name: "positional argument", args: []string{"notes.md"}, wantErr: ErrUsage},
		{name: "help", args: []string{"--help"}, wantErr: errHelpRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseGenerateFlags(tt.args, newTestEnv(nil).Environment)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseGenerateFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags win", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		mergeFlags(&generateFlags{index: "a.html", notesDir: "posts", layout: "INLINE", pdf: true, highlight: true}, cfg)

		if cfg.Output.IndexPath != "a.html" || cfg.Output.NotesDir != "posts" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Output.Layout != config.LayoutInline {
			t.Errorf("Layout = %q, want inline", cfg.Output.Layout)
		}
		if !cfg.PDF.Enabled || !cfg.Render.Highlight {
			t.Error("boolean flags not applied")
		}
	})

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.PDF.Enabled = true
		mergeFlags(&generateFlags{}, cfg)

		if !cfg.PDF.Enabled {
			t.Error("PDF.Enabled reset by unset flag")
		}
		if cfg.Output != config.DefaultConfig().Output {
			t.Errorf("Output changed: %+v", cfg.Output)
		}
	})
}
