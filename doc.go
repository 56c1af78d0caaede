// Package notesite publishes a Notion database as a static notes site.
//
// # Quick Start
//
// Build a source over a Notion database, create a service and generate:
//
//	client := notion.NewClient(os.Getenv("NOTION_TOKEN"))
//	src := notesite.NewNotionSource(client, os.Getenv("NOTION_DATABASE_ID"), "Name")
//
//	svc, err := notesite.New(src, notesite.WithIndexPath("site/index.html"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	report, err := svc.Generate(ctx)
//
// # Generation
//
// A run goes through these stages, one page at a time:
//
//  1. List the database pages (title, last-edited time).
//  2. Fetch each page's top-level blocks.
//  3. Render blocks to HTML fragments (RenderTextRun, Renderer.RenderBlock).
//  4. Write the note document and build its index card (PageAssembler).
//  5. Replace the notes section of the index between its marker comments
//     (UpdateIndex).
//
// Text is never HTML-escaped: what the source returns is what the page
// shows. Unknown block kinds render as a visible placeholder instead of
// failing the run.
//
// # Layouts
//
// LayoutNested writes notes under a subdirectory of the index, LayoutFlat
// writes them beside it and LayoutInline writes no note files at all: the
// index cards carry the full content.
//
// # Optional Features
//
// WithHighlight colors code blocks with Chroma. WithPDF prints each note to
// PDF with headless Chrome (go-rod), which is downloaded on first use when
// no browser is installed.
package notesite
