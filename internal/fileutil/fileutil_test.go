package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-notesite/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFile - Overwrites and creates parents
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site", "notes", "first.html")
		if err := fileutil.WriteFile(path, "<p>one</p>"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>one</p>" {
			t.Errorf("content = %q, want %q", got, "<p>one</p>")
		}
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		if err := fileutil.WriteFile(path, strings.Repeat("old ", 100)); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFile(path, "new"); err != nil {
			t.Fatal(err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "notes")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFile(filepath.Join(blocker, "a.html"), "x"); err == nil {
			t.Fatal("expected error when parent is a regular file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp files for browser rendering
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q missing .html suffix", path)
	}
	if !fileutil.FileExists(path) {
		t.Fatalf("temp file %q does not exist", path)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Errorf("temp file %q still exists after cleanup", path)
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "html", extension: "html"},
		{name: "empty", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "slash", extension: "../x", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: "..\\x", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: "html\x00exe", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCheckWritableDir - Doctor probe
// ---------------------------------------------------------------------------

func TestCheckWritableDir(t *testing.T) {
	t.Parallel()

	t.Run("existing directory", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.CheckWritableDir(t.TempDir()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing directory checks ancestor", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "not", "yet", "created")
		if err := fileutil.CheckWritableDir(dir); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("probe created %s", dir)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.CheckWritableDir(path); err == nil {
			t.Error("expected error for regular file, got nil")
		}
	})
}
