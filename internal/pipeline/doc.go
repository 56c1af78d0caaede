// Package pipeline converts site-authored Markdown into HTML fragments.
//
// Notes themselves arrive as Notion blocks and are rendered by the root
// notesite package. Markdown only appears in site configuration (the index
// intro), which goes through Goldmark with GFM and Chroma highlighting so
// fenced code in the intro matches highlighted code blocks in notes.
package pipeline
