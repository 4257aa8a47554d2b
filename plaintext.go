package repage

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// stripTags reduces a markup fragment to its plain text content.
// Malformed fragments degrade to the input unchanged rather than failing;
// the pipeline must always produce something.
func stripTags(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
