package repage

import (
	"context"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Page-break marker recognized by the paginator. Authors may use either the
// boolean attribute or the equivalent class; both survive sanitation.
const (
	PageBreakAttr  = "data-page-break"
	PageBreakClass = "page-break"
)

var (
	booleanAttrValue   = regexp.MustCompile(`(?i)^(true|false)$`)
	pageBreakClassOnly = regexp.MustCompile(`^(?:[\w-]+\s+)*page-break(?:\s+[\w-]+)*$`)
)

// sanitizer defines the contract for markup sanitation.
type sanitizer interface {
	Sanitize(ctx context.Context, markup string) string
}

// allowlistSanitizer strips everything outside a fixed tag/attribute set:
// the table family, ordinary inline/block text tags, and the page-break
// marker. Script-capable and unknown markup is removed, not escaped.
//
// Sanitation must run before table reconstruction and markdown
// normalization: the allow-list exists to permit already-present structural
// markup, not to re-validate markup those stages emit. Running it after
// normalization is unsupported.
type allowlistSanitizer struct {
	policy *bluemonday.Policy
}

// newAllowlistSanitizer builds the policy once; Sanitize reuses it.
func newAllowlistSanitizer() *allowlistSanitizer {
	p := bluemonday.NewPolicy()

	// Ordinary inline/block text tags.
	p.AllowElements(
		"p", "br", "div", "span", "blockquote",
		"ul", "ol", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "em", "b", "i", "u",
	)

	// Table family.
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")

	// Page-break marker: boolean attribute or equivalent class.
	p.AllowAttrs(PageBreakAttr).Matching(booleanAttrValue).Globally()
	p.AllowAttrs("class").Matching(pageBreakClassOnly).Globally()

	// Links and images with safe URL schemes only.
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowElements("img")

	return &allowlistSanitizer{policy: p}
}

// Sanitize returns markup containing only allow-listed tags and attributes.
// There is no reject outcome: unsafe markup is stripped, never reported.
func (s *allowlistSanitizer) Sanitize(ctx context.Context, markup string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return markup
	}
	return s.policy.Sanitize(markup)
}
