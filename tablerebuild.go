package repage

import (
	"regexp"
	"strings"
)

// minPipesPerRow is how many pipe characters a stripped line must contain
// to qualify as table-row-like.
const minPipesPerRow = 2

// separatorCell matches one cell of a markdown table divider row
// (dashes with optional alignment colons).
var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// rebuildTables scans markup lines for contiguous runs of pipe-delimited
// text and rewrites each run as one structural table.
//
// Blank lines immediately after a run are held as pending rather than
// closing it: if another qualifying line follows they are discarded as
// in-table spacing, otherwise the run closes and the blanks are re-emitted
// verbatim before the next line. A trailing unflushed run at end of input
// is flushed the same way.
func rebuildTables(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	var run []string     // stripped text of qualifying lines
	var pending []string // blank lines held while the run is open

	flush := func() {
		if len(run) == 0 {
			return
		}
		if table := buildTable(run); table != "" {
			out = append(out, table)
		}
		run = run[:0]
	}

	for _, line := range lines {
		plain := stripTags(line)
		switch {
		case strings.Count(plain, "|") >= minPipesPerRow:
			// Blanks between qualifying lines are in-table spacing.
			pending = pending[:0]
			run = append(run, plain)
		case len(run) > 0 && strings.TrimSpace(plain) == "":
			pending = append(pending, line)
		default:
			flush()
			out = append(out, pending...)
			pending = pending[:0]
			out = append(out, line)
		}
	}

	flush()
	out = append(out, pending...)

	return strings.Join(out, "\n")
}

// buildTable renders one run of table-row-like lines as structural table
// markup. Separator rows are discarded; the first surviving row becomes the
// header row. A run left with zero data rows (e.g. header + separator only)
// produces no table and its lines are dropped.
func buildTable(rows []string) string {
	parsed := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := splitCells(row)
		if isSeparatorRow(cells) {
			continue
		}
		parsed = append(parsed, cells)
	}
	if len(parsed) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range parsed[0] {
		b.WriteString("<th>")
		b.WriteString(convertBold(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range parsed[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(convertBold(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// splitCells splits a row on pipes, trims each cell, and drops the empty
// leading/trailing cell produced by a line framed with pipes.
func splitCells(row string) []string {
	cells := strings.Split(row, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// isSeparatorRow reports whether every cell is a markdown divider cell.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}
