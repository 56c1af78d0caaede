package notesite

import (
	"strings"
	"testing"
)

func TestRenderTextRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  TextRun
		want string
	}{
		{
			name: "no annotations is identity",
			run:  TextRun{Text: "plain"},
			want: "plain",
		},
		{
			name: "markup is not escaped",
			run:  TextRun{Text: "a < b & <i>c</i>"},
			want: "a < b & <i>c</i>",
		},
		{
			name: "bold",
			run:  TextRun{Text: "x", Annotations: Annotations{Bold: true}},
			want: "<strong>x</strong>",
		},
		{
			name: "italic",
			run:  TextRun{Text: "x", Annotations: Annotations{Italic: true}},
			want: "<em>x</em>",
		},
		{
			name: "underline",
			run:  TextRun{Text: "x", Annotations: Annotations{Underline: true}},
			want: "<u>x</u>",
		},
		{
			name: "strikethrough",
			run:  TextRun{Text: "x", Annotations: Annotations{Strikethrough: true}},
			want: "<s>x</s>",
		},
		{
			name: "code",
			run:  TextRun{Text: "x", Annotations: Annotations{Code: true}},
			want: "<code>x</code>",
		},
		{
			name: "bold and code nest code outermost",
			run:  TextRun{Text: "text", Annotations: Annotations{Bold: true, Code: true}},
			want: "<code><strong>text</strong></code>",
		},
		{
			name: "all annotations",
			run: TextRun{Text: "x", Annotations: Annotations{
				Bold: true, Italic: true, Underline: true, Strikethrough: true, Code: true,
			}},
			want: "<code><s><u><em><strong>x</strong></em></u></s></code>",
		},
		{
			name: "empty text keeps tags",
			run:  TextRun{Annotations: Annotations{Italic: true}},
			want: "<em></em>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RenderTextRun(tt.run); got != tt.want {
				t.Errorf("RenderTextRun() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTextRun_ContainsText(t *testing.T) {
	t.Parallel()

	// Every flag combination keeps the text as a substring.
	for mask := 0; mask < 32; mask++ {
		a := Annotations{
			Bold:          mask&1 != 0,
			Italic:        mask&2 != 0,
			Underline:     mask&4 != 0,
			Strikethrough: mask&8 != 0,
			Code:          mask&16 != 0,
		}
		got := RenderTextRun(TextRun{Text: "needle", Annotations: a})
		if !strings.Contains(got, "needle") {
			t.Errorf("mask %05b: %q does not contain text", mask, got)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	t.Parallel()

	runs := []TextRun{
		{Text: "Hello "},
		{Text: "world", Annotations: Annotations{Bold: true}},
		{Text: "!"},
	}
	if got, want := renderRuns(runs), "Hello <strong>world</strong>!"; got != want {
		t.Errorf("renderRuns() = %q, want %q", got, want)
	}
	if got, want := plainText(runs), "Hello world!"; got != want {
		t.Errorf("plainText() = %q, want %q", got, want)
	}
	if got := renderRuns(nil); got != "" {
		t.Errorf("renderRuns(nil) = %q, want empty", got)
	}
}
