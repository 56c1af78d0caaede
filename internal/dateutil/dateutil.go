// Package dateutil turns Notion timestamps into the dates shown on notes.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// dateTimeSeparator splits the date and time halves of an ISO-8601 timestamp.
const dateTimeSeparator = "T"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Preset names are accepted
// case-insensitively. Brackets escape literal text: [Date] stays "Date".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}

	return b.String(), nil
}

// DatePart returns everything before the first "T" of an ISO-8601 timestamp.
// Input without a separator is returned whole.
func DatePart(timestamp string) string {
	date, _, _ := strings.Cut(timestamp, dateTimeSeparator)
	return date
}

// FormatTimestamp renders an RFC 3339 timestamp with a user-friendly format.
// An empty format, or a timestamp that does not parse, yields DatePart so
// a note always gets a byline.
func FormatTimestamp(timestamp, format string) (string, error) {
	if format == "" {
		return DatePart(timestamp), nil
	}

	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}

	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return DatePart(timestamp), nil
	}
	return t.UTC().Format(goFmt), nil
}
