package notesite

import "log/slog"

// DefaultCalloutIcon is used when a callout has no emoji icon.
const DefaultCalloutIcon = "💡"

// Renderer turns blocks into HTML fragments.
// The zero value is not usable; create one with NewRenderer.
type Renderer struct {
	calloutIcon string
	highlighter *Highlighter
	logger      *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithCalloutIcon sets the icon for callouts that carry none.
func WithCalloutIcon(icon string) RendererOption {
	return func(r *Renderer) {
		if icon != "" {
			r.calloutIcon = icon
		}
	}
}

// WithHighlighter enables syntax highlighting of code blocks.
func WithHighlighter(h *Highlighter) RendererOption {
	return func(r *Renderer) {
		r.highlighter = h
	}
}

// WithRendererLogger sets the logger used to report highlighting fallbacks.
func WithRendererLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRenderer creates a Renderer. Without options it produces the plain
// fragments of RenderBlock.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		calloutIcon: DefaultCalloutIcon,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// RenderBlock renders b with the default renderer.
func RenderBlock(b Block) string {
	return defaultRenderer.RenderBlock(b)
}

// RenderBlock returns the HTML fragment for one block. Unknown kinds yield a
// placeholder paragraph naming the kind; no block is an error.
func (r *Renderer) RenderBlock(b Block) string {
	inner := renderRuns(b.Text)

	switch b.Kind {
	case KindParagraph:
		return "<p class='text-gray-600 mb-4'>" + inner + "</p>"
	case KindHeading1:
		return "<h1 class='text-4xl font-bold text-gray-900 mt-8 mb-4'>" + inner + "</h1>"
	case KindHeading2:
		return "<h2 class='text-3xl font-bold text-gray-900 mt-6 mb-3'>" + inner + "</h2>"
	case KindQuote:
		return "<blockquote class='border-l-4 border-gray-300 pl-4 italic text-gray-600 my-6'>" + inner + "</blockquote>"
	case KindBulletedListItem, KindNumberedListItem:
		return "<li class='text-gray-600'>" + inner + "</li>"
	case KindDivider:
		return "<hr class='my-8 border-t border-gray-200'>"
	case KindImage:
		return "<img src='" + b.URL + "' alt='Image from Notion' class='w-full rounded-lg my-6'>"
	case KindCallout:
		icon := b.Icon
		if icon == "" {
			icon = r.calloutIcon
		}
		return "<div class='flex items-start bg-gray-100 rounded-lg p-4 my-6'><span class='mr-3'>" + icon + "</span><div>" + inner + "</div></div>"
	case KindCode:
		if r.highlighter != nil {
			if out, ok := r.renderHighlighted(b); ok {
				return out
			}
		}
		return "<pre class='bg-gray-900 text-gray-100 rounded-lg p-4 my-6 overflow-x-auto'><code class='" + b.Language + "'>" + inner + "</code></pre>"
	default:
		return "<p class='text-gray-600 mb-4'>[Unsupported block type: " + string(b.Kind) + "]</p>"
	}
}

// renderHighlighted renders a code block through the highlighter. Run
// annotations are dropped since the highlighter escapes and styles the
// plain source itself.
func (r *Renderer) renderHighlighted(b Block) (string, bool) {
	code, err := r.highlighter.Highlight(plainText(b.Text), b.Language)
	if err != nil {
		r.logger.Debug("highlighting failed, using plain code block", "language", b.Language, "error", err)
		return "", false
	}
	return "<pre class='chroma rounded-lg p-4 my-6 overflow-x-auto'><code class='" + b.Language + "'>" + code + "</code></pre>", true
}

// RenderBlocks renders each block in order.
func (r *Renderer) RenderBlocks(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = r.RenderBlock(b)
	}
	return out
}
