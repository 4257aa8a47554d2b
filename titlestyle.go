package repage

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Print font-size hints. The cover page always uses CoverFontSize; other
// pages are sized by title length (see TitleFontSize). These are
// presentation hints returned alongside each page, not applied here.
const (
	CoverFontSize = "2.5rem"
	FontSizeXL    = "2.25rem" // title length <= 10
	FontSizeL     = "2rem"    // <= 15
	FontSizeM     = "1.75rem" // <= 20
	FontSizeS     = "1.5rem"  // <= 30
	FontSizeXS    = "1.25rem" // longer
)

// StyleTitle renders a title with its leading glyph or word emphasized.
//
// A CJK-ideograph first character is emphasized alone; otherwise the first
// whitespace-separated word is emphasized, or the whole title when it is a
// single word. Returns "" for an empty title.
func StyleTitle(title string) string {
	if title == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(title)
	if unicode.Is(unicode.Han, first) {
		return leadSpan(string(first)) + restSpan(title[size:])
	}

	words := strings.Fields(title)
	if len(words) > 1 {
		return leadSpan(words[0]) + " " + restSpan(strings.Join(words[1:], " "))
	}
	return leadSpan(title)
}

// TitleFontSize selects the print font-size hint for a non-cover page title
// by its character length.
func TitleFontSize(title string) string {
	switch n := utf8.RuneCountInString(title); {
	case n <= 10:
		return FontSizeXL
	case n <= 15:
		return FontSizeL
	case n <= 20:
		return FontSizeM
	case n <= 30:
		return FontSizeS
	default:
		return FontSizeXS
	}
}

func leadSpan(text string) string {
	return `<span class="title-lead">` + html.EscapeString(text) + `</span>`
}

func restSpan(text string) string {
	if text == "" {
		return ""
	}
	return `<span class="title-rest">` + html.EscapeString(text) + `</span>`
}
