package repage

// BuildTOC derives the table of contents from a finished page list: one
// entry per page, 1-indexed, in page order. No heuristics; the entry count
// always equals the page count.
func BuildTOC(pages []Page) []TocEntry {
	entries := make([]TocEntry, len(pages))
	for i, page := range pages {
		entries[i] = TocEntry{Title: page.Title, PageNumber: i + 1}
	}
	return entries
}
