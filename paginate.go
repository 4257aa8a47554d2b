package repage

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// breakReason classifies why a node starts a new page.
type breakReason int

const (
	breakNone breakReason = iota
	breakMarker
	breakHeading
	breakChapter
	breakBracket
)

// Section-start patterns over a node's plain text.
var (
	// Level-2 heading marker not immediately followed by a third '#',
	// so level-3 markers are not mistaken for level-2.
	rawHeading2Pattern = regexp.MustCompile(`^##([^#]|$)`)

	// Chapter numbering: 第 + digits + 章 at line start, digits may have
	// interior whitespace. Any digit-containing match satisfies it; this is
	// a known heuristic imprecision, not an error condition.
	chapterPattern = regexp.MustCompile(`^第\s*\d[\d\s]*章`)

	// Bracketed title: text starting with 【…】.
	bracketPattern = regexp.MustCompile(`^【[^】]*】`)
)

// paginator defines the contract for partitioning markup into pages.
type paginator interface {
	Paginate(ctx context.Context, docTitle, markup string) ([]Page, error)
}

// segmentPaginator walks the normalized markup's top-level nodes once,
// applying break rules in order (explicit marker, then heading or
// section-start pattern, then plain append) to partition them into pages.
type segmentPaginator struct {
	sectionStartLimit    int
	pageFallbackTitle    string
	sectionFallbackTitle string
}

// Paginate partitions markup into at least one page. The first page starts
// as the cover (document title, fixed cover font size); implicit section
// breaks are suppressed until some content has accumulated.
func (p *segmentPaginator) Paginate(ctx context.Context, docTitle, markup string) ([]Page, error) {
	nodes, err := topLevelNodes(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkupParse, err)
	}

	w := pageWalker{
		docTitle: docTitle,
		current:  coverPage(docTitle),
		isFirst:  true,
	}

	for _, n := range nodes {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		switch p.classify(n) {
		case breakMarker:
			// The marker node is consumed: its text becomes the next
			// page's title and it is never re-appended as body content.
			w.startPage(nodeText(n), p.pageFallbackTitle)
		case breakHeading, breakChapter, breakBracket:
			if w.isFirst {
				w.appendNode(n)
				continue
			}
			w.startPage(nodeText(n), p.sectionFallbackTitle)
		default:
			w.appendNode(n)
		}
	}

	return w.finish(markup), nil
}

// classify maps a node to the first matching break reason. First-page
// suppression of heading/pattern breaks is the walker's concern, not
// classification.
func (p *segmentPaginator) classify(n *html.Node) breakReason {
	if hasPageBreakMarker(n) {
		return breakMarker
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.H1 || n.DataAtom == atom.H2) {
		return breakHeading
	}

	text := strings.TrimSpace(nodeText(n))
	if utf8.RuneCountInString(text) > p.sectionStartLimit {
		// Long paragraphs that merely contain a matching prefix are not
		// section starts.
		return breakNone
	}
	switch {
	case rawHeading2Pattern.MatchString(text):
		return breakHeading
	case chapterPattern.MatchString(text):
		return breakChapter
	case bracketPattern.MatchString(text):
		return breakBracket
	}
	return breakNone
}

// pageWalker is the paginator's state machine.
type pageWalker struct {
	docTitle string
	pages    []Page
	current  Page
	started  bool // current page was started by an explicit or implicit break
	isFirst  bool // no content has been appended yet
}

// startPage flushes the current page if it holds content, then begins a new
// page titled by the consumed node's text. An empty page left over from a
// previous break is replaced, never emitted.
func (w *pageWalker) startPage(title, fallback string) {
	if w.current.Content != "" {
		w.flush()
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = fallback
	}
	w.current = Page{
		Title:       title,
		StyledTitle: StyleTitle(title),
		FontSize:    TitleFontSize(title),
	}
	w.started = true
}

// appendNode adds the node's full markup to the current page.
func (w *pageWalker) appendNode(n *html.Node) {
	w.current.Content += renderNode(n)
	w.isFirst = false
}

func (w *pageWalker) flush() {
	w.pages = append(w.pages, w.current)
}

// finish flushes the trailing page and guarantees a non-empty page list.
// A page explicitly started by a break is kept even when its content is
// empty; only a document that never started nor filled any page collapses
// to the single fallback page wrapping the whole markup.
func (w *pageWalker) finish(markup string) []Page {
	if w.current.Content != "" || w.started {
		w.flush()
	}
	if len(w.pages) == 0 {
		fallback := coverPage(w.docTitle)
		fallback.Content = markup
		w.pages = append(w.pages, fallback)
	}
	return w.pages
}

// coverPage is the initial page: document title, fixed cover font size.
func coverPage(docTitle string) Page {
	return Page{
		Title:       docTitle,
		StyledTitle: StyleTitle(docTitle),
		FontSize:    CoverFontSize,
	}
}

// topLevelNodes parses a markup fragment and returns its direct children:
// element nodes plus non-blank text nodes, in document order.
func topLevelNodes(markup string) ([]*html.Node, error) {
	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, err
	}

	nodes := make([]*html.Node, 0, len(parsed))
	for _, n := range parsed {
		switch n.Type {
		case html.ElementNode:
			nodes = append(nodes, n)
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes, nil
}

// hasPageBreakMarker reports whether the node carries the page-break
// attribute (any value but "false") or the page-break class.
func hasPageBreakMarker(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case PageBreakAttr:
			if !strings.EqualFold(attr.Val, "false") {
				return true
			}
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				if class == PageBreakClass {
					return true
				}
			}
		}
	}
	return false
}

// nodeText returns the node's plain text content.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// renderNode renders a single node back to markup.
func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		// Render only fails on unrenderable node types, which topLevelNodes
		// never yields; fall back to the node's text.
		return nodeText(n)
	}
	return b.String()
}
