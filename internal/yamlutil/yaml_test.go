package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-notesite/internal/yamlutil"
)

type siteConfig struct {
	Index  string `yaml:"index"`
	Layout string `yaml:"layout"`
	PDF    bool   `yaml:"pdf"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    siteConfig
	}{
		{
			name: "known fields",
			data: []byte("index: site.html\nlayout: flat\npdf: true"),
			dest: &siteConfig{},
			want: siteConfig{Index: "site.html", Layout: "flat", PDF: true},
		},
		{
			name: "unknown fields ignored",
			data: []byte("index: a.html\ncolour: blue"),
			dest: &siteConfig{},
			want: siteConfig{Index: "a.html"},
		},
		{
			name: "arabic label survives",
			data: []byte("layout: \"نشرت في:\""),
			dest: &siteConfig{},
			want: siteConfig{Layout: "نشرت في:"},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &siteConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("index: a.html"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := *tt.dest.(*siteConfig)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown keys are rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("unknown key fails", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("index: a.html\nlayot: flat"), &siteConfig{})
		if err == nil {
			t.Fatal("expected error for unknown key, got nil")
		}
		if !strings.Contains(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want yamlutil prefix", err)
		}
	})

	t.Run("known keys pass", func(t *testing.T) {
		t.Parallel()

		var cfg siteConfig
		if err := yamlutil.UnmarshalStrict([]byte("layout: nested"), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Layout != "nested" {
			t.Errorf("Layout = %q, want %q", cfg.Layout, "nested")
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		data := []byte("index: " + strings.Repeat("x", yamlutil.MaxInputSize))
		err := yamlutil.UnmarshalStrict(data, &siteConfig{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Fatalf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Round trip into a decodable document
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&siteConfig{Index: "index.html", Layout: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	for _, want := range []string{"index: index.html", "layout: inline", "pdf: false"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got:\n%s", want, s)
		}
	}
}
