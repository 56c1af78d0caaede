package notesite

import "strings"

// RenderTextRun wraps the run's text in one tag per active annotation.
// Tags nest in a fixed order: bold innermost, then italic, underline,
// strikethrough, and code outermost. Text is inserted verbatim.
func RenderTextRun(run TextRun) string {
	text := run.Text
	a := run.Annotations

	if a.Bold {
		text = "<strong>" + text + "</strong>"
	}
	if a.Italic {
		text = "<em>" + text + "</em>"
	}
	if a.Underline {
		text = "<u>" + text + "</u>"
	}
	if a.Strikethrough {
		text = "<s>" + text + "</s>"
	}
	if a.Code {
		text = "<code>" + text + "</code>"
	}
	return text
}

// renderRuns concatenates rendered runs.
func renderRuns(runs []TextRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(RenderTextRun(r))
	}
	return sb.String()
}

// plainText concatenates run text without markup.
func plainText(runs []TextRun) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
