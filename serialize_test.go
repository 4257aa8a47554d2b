package repage

import "testing"

func TestMarkupFromSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sections []Section
		expected string
	}{
		{
			name:     "no sections",
			sections: nil,
			expected: "",
		},
		{
			name: "heading levels",
			sections: []Section{
				{Kind: KindHeading, Level: 1, Text: "一"},
				{Kind: KindHeading, Level: 2, Text: "二"},
				{Kind: KindHeading, Level: 3, Text: "三"},
			},
			expected: "<h1>一</h1>\n<h2>二</h2>\n<h3>三</h3>",
		},
		{
			name: "out-of-range heading level clamps to one",
			sections: []Section{
				{Kind: KindHeading, Level: 0, Text: "a"},
				{Kind: KindHeading, Level: 7, Text: "b"},
			},
			expected: "<h1>a</h1>\n<h1>b</h1>",
		},
		{
			name: "paragraph",
			sections: []Section{
				{Kind: KindParagraph, Text: "內文 **粗體**"},
			},
			expected: "<p>內文 **粗體**</p>",
		},
		{
			name: "table keeps raw pipe text",
			sections: []Section{
				{Kind: KindTable, Text: "| A | B |\n| 1 | 2 |"},
			},
			expected: "| A | B |\n| 1 | 2 |",
		},
		{
			name: "image",
			sections: []Section{
				{Kind: KindImage, Text: "https://example.com/a.png"},
			},
			expected: `<img src="https://example.com/a.png">`,
		},
		{
			name: "unknown kind degrades to paragraph",
			sections: []Section{
				{Kind: SectionKind("mystery"), Text: "x"},
			},
			expected: "<p>x</p>",
		},
		{
			name: "reading order preserved",
			sections: []Section{
				{Kind: KindHeading, Level: 2, Text: "章"},
				{Kind: KindParagraph, Text: "內文"},
			},
			expected: "<h2>章</h2>\n<p>內文</p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MarkupFromSections(tt.sections)
			if got != tt.expected {
				t.Errorf("MarkupFromSections():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

// Derivation must be deterministic: the persisted markup is reproducible
// from sections at any time.
func TestMarkupFromSections_Deterministic(t *testing.T) {
	t.Parallel()

	sections := []Section{
		{Kind: KindHeading, Level: 2, Text: "章"},
		{Kind: KindParagraph, Text: "內文"},
		{Kind: KindTable, Text: "|A|B|\n|1|2|"},
	}

	first := MarkupFromSections(sections)
	second := MarkupFromSections(sections)
	if first != second {
		t.Errorf("derivation not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}
