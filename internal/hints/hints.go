// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net/http"
	"os"
	"strings"

	"github.com/alnah/go-notesite/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingCredentials returns a hint naming the unset Notion variables.
func ForMissingCredentials(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("set " + strings.Join(missing, " and ") + " in the environment or a .env file")
}

// ForNotionStatus returns a hint for a failed Notion API call.
func ForNotionStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return format("check NOTION_TOKEN is a valid integration secret")
	case http.StatusForbidden, http.StatusNotFound:
		return format("check NOTION_DATABASE_ID and share the database with the integration")
	case http.StatusBadRequest:
		return format("check NOTION_DATABASE_ID is a database id, not a page id")
	case http.StatusTooManyRequests:
		return format("rate limited by Notion, run again in a minute")
	}
	if status >= http.StatusInternalServerError {
		return format("Notion is unavailable, run again later")
	}
	return ""
}

// ForMissingMarkers returns a hint for an index without sentinel comments.
func ForMissingMarkers(start, end string) string {
	return format("add " + start + " and " + end + " where the notes should go")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and `notesite init`.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'notesite init'"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-notesite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// Plain strips the leading marker from a hint, for use as a log attribute.
func Plain(hint string) string {
	return strings.TrimPrefix(hint, hintPrefix)
}

const hintPrefix = "\n  hint: "

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return hintPrefix + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
