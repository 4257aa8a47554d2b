package repage

import (
	"fmt"
	"strings"
)

// MarkupFromSections derives a document's markup from its ordered section
// list. Sections are the source of truth and markup is a derived cache:
// callers regenerate markup with this function on every edit save, and on
// any divergence recomputing from sections is the repair. The derivation is
// strictly one-way; markup is never parsed back into sections.
//
// Table sections keep their raw pipe-delimited text: the table
// reconstructor is the single place table markup is built, so serialized
// tables and pasted-in pipe text take the same path through the pipeline.
func MarkupFromSections(sections []Section) string {
	lines := make([]string, 0, len(sections))
	for _, section := range sections {
		switch section.Kind {
		case KindHeading:
			level := section.Level
			if level < 1 || level > 3 {
				level = 1
			}
			lines = append(lines, fmt.Sprintf("<h%d>%s</h%d>", level, section.Text, level))
		case KindTable:
			lines = append(lines, section.Text)
		case KindImage:
			lines = append(lines, fmt.Sprintf(`<img src="%s">`, section.Text))
		default:
			lines = append(lines, "<p>"+section.Text+"</p>")
		}
	}
	return strings.Join(lines, "\n")
}
