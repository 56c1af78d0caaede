// Package notion is a minimal read-only client for the Notion REST API.
//
// It covers the two calls the site generator needs: querying a database
// for its pages and listing a page's top-level blocks. Wire types stay close
// to the JSON the API returns; conversion into rendering types happens in
// the caller. Pagination is not followed: only the first page of results
// (100 items with the API defaults) is returned.
package notion
