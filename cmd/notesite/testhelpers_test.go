package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/config"
)

const testIndexDoc = `<html><body>
<!-- Notes Container Section -->
<p>old</p>
<!-- End Notes Container Section -->
</body></html>`

// stubSource serves fixed pages and records how it was built.
type stubSource struct {
	pages  []notesite.Page
	blocks map[string][]notesite.Block
	err    error
}

func (s *stubSource) ListPages(context.Context) ([]notesite.Page, error) {
	return s.pages, s.err
}

func (s *stubSource) ListBlocks(_ context.Context, pageID string) ([]notesite.Block, error) {
	return s.blocks[pageID], nil
}

// testEnv captures output and the arguments given to the source factory.
type testEnv struct {
	*Environment
	stdout, stderr *bytes.Buffer
	gotCfg         *config.Config
	gotToken       string
}

func newTestEnv(src notesite.Source) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Stdout: te.stdout,
		Stderr: te.stderr,
		NewSource: func(cfg *config.Config, token string) notesite.Source {
			te.gotCfg = cfg
			te.gotToken = token
			return src
		},
	}
	return te
}

// isolateEnv clears variables the CLI reads and points the user config dir
// at an empty directory. Callers cannot use t.Parallel.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		envNotionToken, envNotionDatabaseID,
		"NOTESITE_CONFIG", "NOTESITE_INDEX", "NOTESITE_NOTES_DIR", "NOTESITE_LAYOUT",
	} {
		t.Setenv(name, "")
	}
}

// writeFile creates path with content, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func helloSource() *stubSource {
	return &stubSource{
		pages: []notesite.Page{{ID: "p1", Title: "My Note!", LastEdited: "2024-01-05T10:00:00.000Z"}},
		blocks: map[string][]notesite.Block{
			"p1": {{Kind: notesite.KindParagraph, Text: []notesite.TextRun{
				{Text: "Hello", Annotations: notesite.Annotations{Bold: true}},
			}}},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unsetenv removes name for the rest of the test and restores it after.
func unsetenv(t *testing.T, name string) {
	t.Helper()
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatal(err)
	}
}
