// Package assets provides the HTML templates used to build note pages and
// the index.
//
// AssetResolver is the loader used by the CLI: a FilesystemLoader over the
// site's assets directory, layered over the EmbeddedLoader. A site can
// override only the card while keeping the built-in note page.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    ├── note.html         # Per-note document
//	    ├── card.html         # Index entry linking to a note
//	    ├── inline_card.html  # Index entry embedding a note (inline layout)
//	    └── index.html        # Index page created when none exists
//
// Templates are text/template sources. Note content is inserted verbatim:
// it is already HTML.
//
// Template names may not contain separators or dots, and files are read
// through os.Root so symlinks cannot leave the assets directory.
package assets
