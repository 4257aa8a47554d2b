// Package repage rebuilds persisted rich-content documents into sanitized
// markup and a finite, ordered sequence of logical pages with a matching
// table of contents.
//
// # Quick Start
//
// Create a service and render a document:
//
//	svc := repage.New()
//
//	result, err := svc.Render(ctx, repage.DocumentContent{
//	    Title:  "人生指南",
//	    Markup: "<p>前言</p>\n## 第一章\n<p>內文</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, page := range result.Pages {
//	    fmt.Println(i+1, page.Title)
//	}
//
// The result carries the ordered pages (title, styled title, content
// fragment, print font-size hint) and the derived table of contents.
//
// # Pipeline
//
// Rendering runs a fixed sequence of stages, each consuming the previous
// stage's output:
//
//  1. Sanitation (allow-listed structural tags and the page-break marker)
//  2. Table reconstruction (pipe-delimited text runs become tables)
//  3. Markdown normalization (bold, italic and heading markers)
//  4. Pagination (segment walk with explicit and heuristic page breaks)
//  5. TOC derivation from the finished page list
//
// Normalization is not idempotent: the pipeline must run exactly once per
// content version. Use RenderVersion to memoize results by version key.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := repage.New(
//	    repage.WithSectionStartLimit(80),
//	    repage.WithFallbackTitles("untitled page", "untitled section"),
//	)
//
// # Concurrency
//
// A Service is safe for concurrent use. Each render operates on one
// document's in-memory markup with no shared mutable state, so independent
// documents may be rendered in parallel.
package repage
