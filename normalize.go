package repage

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Level-4 heading marker, stripped entirely (rendered as plain text).
	h4Marker = regexp.MustCompile(`(?m)^####\s*`)

	// Bold markers, both styles.
	boldStars       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscores = regexp.MustCompile(`__(.+?)__`)

	// Italic markers, both styles.
	italicStar       = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderscore = regexp.MustCompile(`_(.+?)_`)

	// Line-anchored heading markers, levels 3 down to 1.
	h3Marker = regexp.MustCompile(`(?m)^###\s*(.+)$`)
	h2Marker = regexp.MustCompile(`(?m)^##\s*(.+)$`)
	h1Marker = regexp.MustCompile(`(?m)^#\s*(.+)$`)
)

// normalizer defines the contract for markup normalization.
type normalizer interface {
	Normalize(ctx context.Context, markup string) string
}

// pass is one named transformation over the whole markup.
type pass struct {
	name  string
	apply func(string) string
}

// markdownNormalizer rewrites remaining markdown tokens into structural
// markup as an explicit ordered list of passes. The order is the contract:
// tables first (their cells receive bold conversion only), the level-4
// marker stripped before bold so "####" is never half-consumed, bold before
// italic so "**" is never matched as two "*", and headings last.
//
// The pipeline is not idempotent. It must run exactly once per render pass;
// re-applying it to its own output can mis-nest emphasis markers.
type markdownNormalizer struct {
	passes []pass
}

func newMarkdownNormalizer() *markdownNormalizer {
	return &markdownNormalizer{
		passes: []pass{
			{name: "tables", apply: rebuildTables},
			{name: "strip-h4", apply: stripLevel4Markers},
			{name: "bold", apply: convertBold},
			{name: "italic", apply: convertItalic},
			{name: "headings", apply: convertHeadings},
		},
	}
}

// Normalize applies every pass once, in order.
func (n *markdownNormalizer) Normalize(ctx context.Context, markup string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return markup
	}
	for _, p := range n.passes {
		markup = p.apply(markup)
	}
	return markup
}

// stripLevel4Markers removes the "####" heading marker entirely, leaving
// the line as plain text. Levels 1-3 become headings; level 4 does not.
func stripLevel4Markers(content string) string {
	return h4Marker.ReplaceAllString(content, "")
}

// convertBold transforms **x** and __x__ to <strong>x</strong>.
func convertBold(content string) string {
	content = boldStars.ReplaceAllString(content, "<strong>$1</strong>")
	return boldUnderscores.ReplaceAllString(content, "<strong>$1</strong>")
}

// convertItalic transforms *x* and _x_ to <em>x</em>.
func convertItalic(content string) string {
	content = italicStar.ReplaceAllString(content, "<em>$1</em>")
	return italicUnderscore.ReplaceAllString(content, "<em>$1</em>")
}

// convertHeadings transforms line-anchored ###, ## and # markers into
// heading tags, deepest level first so "##" never matches inside "###".
func convertHeadings(content string) string {
	content = h3Marker.ReplaceAllString(content, "<h3>$1</h3>")
	content = h2Marker.ReplaceAllString(content, "<h2>$1</h2>")
	return h1Marker.ReplaceAllString(content, "<h1>$1</h1>")
}
