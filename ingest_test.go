package repage

import "testing"

func TestSectionsFromMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Section
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "heading and paragraph",
			input: "# Title\n\nbody text",
			expected: []Section{
				{Kind: KindHeading, Level: 1, Text: "Title"},
				{Kind: KindParagraph, Text: "body text"},
			},
		},
		{
			name:  "heading levels one to three kept",
			input: "# a\n\n## b\n\n### c",
			expected: []Section{
				{Kind: KindHeading, Level: 1, Text: "a"},
				{Kind: KindHeading, Level: 2, Text: "b"},
				{Kind: KindHeading, Level: 3, Text: "c"},
			},
		},
		{
			name:  "deep heading ingests as paragraph",
			input: "#### too deep",
			expected: []Section{
				{Kind: KindParagraph, Text: "too deep"},
			},
		},
		{
			name:  "sole image becomes image section",
			input: "![圖](https://example.com/a.png)",
			expected: []Section{
				{Kind: KindImage, Text: "https://example.com/a.png"},
			},
		},
		{
			name:  "multiline paragraph keeps its lines",
			input: "first line\nsecond line",
			expected: []Section{
				{Kind: KindParagraph, Text: "first line\nsecond line"},
			},
		},
		{
			name:  "gfm table keeps raw pipe text without separator",
			input: "| A | B |\n| --- | --- |\n| 1 | 2 |",
			expected: []Section{
				{Kind: KindTable, Text: "| A | B |\n| 1 | 2 |"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SectionsFromMarkdown([]byte(tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("section count = %d, want %d (sections: %+v)", len(got), len(tt.expected), got)
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("section[%d] = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}

// Ingested markdown must round into markup the pipeline can paginate: the
// derived markup for a table section reconstructs as one structural table.
func TestSectionsFromMarkdown_TableRoundsThroughPipeline(t *testing.T) {
	t.Parallel()

	sections := SectionsFromMarkdown([]byte("| A | B |\n| --- | --- |\n| 1 | 2 |"))
	markup := MarkupFromSections(sections)

	got := rebuildTables(markup)
	expected := "<table><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>"
	if got != expected {
		t.Errorf("reconstructed table:\ngot:  %q\nwant: %q", got, expected)
	}
}
