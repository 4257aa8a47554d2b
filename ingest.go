package repage

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// maxHeadingLevel is the deepest heading level kept as a heading section;
// deeper headings ingest as plain paragraphs.
const maxHeadingLevel = 3

// SectionsFromMarkdown parses an uploaded markdown document into the
// ordered section model. Headings deeper than level 3 become paragraphs,
// images become image sections, and GFM tables keep their raw
// pipe-delimited text so the table reconstructor remains the single table
// builder. Unrecognized block kinds degrade to paragraphs; ingestion never
// fails on malformed input.
func SectionsFromMarkdown(source []byte) []Section {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	var sections []Section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level > maxHeadingLevel {
				sections = append(sections, Section{
					Kind: KindParagraph,
					Text: string(node.Text(source)),
				})
				continue
			}
			sections = append(sections, Section{
				Kind:  KindHeading,
				Level: node.Level,
				Text:  string(node.Text(source)),
			})
		case *east.Table:
			sections = append(sections, Section{
				Kind: KindTable,
				Text: tableText(node, source),
			})
		case *ast.Paragraph:
			if img, ok := soleImage(node); ok {
				sections = append(sections, Section{
					Kind: KindImage,
					Text: string(img.Destination),
				})
				continue
			}
			sections = append(sections, Section{
				Kind: KindParagraph,
				Text: blockText(node, source),
			})
		default:
			if raw := blockText(n, source); raw != "" {
				sections = append(sections, Section{
					Kind: KindParagraph,
					Text: raw,
				})
			}
		}
	}
	return sections
}

// tableText rebuilds a parsed GFM table as framed pipe-delimited lines.
func tableText(table *east.Table, source []byte) string {
	var rows []string
	for r := table.FirstChild(); r != nil; r = r.NextSibling() {
		var cells []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, string(c.Text(source)))
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" |")
	}
	return strings.Join(rows, "\n")
}

// soleImage reports whether the paragraph consists of a single image.
func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	child := p.FirstChild()
	if child == nil || child != p.LastChild() {
		return nil, false
	}
	img, ok := child.(*ast.Image)
	return img, ok
}

// blockText extracts a block node's raw source lines, falling back to its
// rendered text for nodes without line segments.
func blockText(n ast.Node, source []byte) string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return strings.TrimSpace(string(n.Text(source)))
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		segment := lines.At(i)
		b.Write(bytes.TrimRight(segment.Value(source), "\n"))
	}
	return strings.TrimSpace(b.String())
}
