package notesite

import (
	"regexp"
	"strings"
)

// Sentinel comments delimiting the generated notes section of the index.
const (
	IndexStartMarker = "<!-- Notes Container Section -->"
	IndexEndMarker   = "<!-- End Notes Container Section -->"
)

// indexEntryIndent precedes the end marker after replacement.
const indexEntryIndent = "        "

// notesSection spans from the first start marker to the last end marker.
var notesSection = regexp.MustCompile(
	regexp.QuoteMeta(IndexStartMarker) + `[\s\S]*` + regexp.QuoteMeta(IndexEndMarker),
)

// UpdateIndex replaces the notes section of document with entries and
// reports whether the markers were found. Without both markers (or with the
// end marker before the start marker) document is returned unchanged.
// entries are inserted literally.
func UpdateIndex(document, entries string) (string, bool) {
	loc := notesSection.FindStringIndex(document)
	if loc == nil {
		return document, false
	}

	var sb strings.Builder
	sb.Grow(len(document) - (loc[1] - loc[0]) + len(entries) + 128)
	sb.WriteString(document[:loc[0]])
	sb.WriteString(IndexStartMarker)
	sb.WriteString("\n")
	sb.WriteString(entries)
	sb.WriteString("\n")
	sb.WriteString(indexEntryIndent)
	sb.WriteString(IndexEndMarker)
	sb.WriteString(document[loc[1]:])
	return sb.String(), true
}

// HasIndexMarkers reports whether document holds a replaceable notes
// section.
func HasIndexMarkers(document string) bool {
	return notesSection.MatchString(document)
}
