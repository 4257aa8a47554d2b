package repage

import "testing"

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pages    []Page
		expected []TocEntry
	}{
		{
			name:     "no pages",
			pages:    nil,
			expected: []TocEntry{},
		},
		{
			name:  "single page",
			pages: []Page{{Title: "封面"}},
			expected: []TocEntry{
				{Title: "封面", PageNumber: 1},
			},
		},
		{
			name: "entries follow page order one-indexed",
			pages: []Page{
				{Title: "封面"},
				{Title: "第1章"},
				{Title: "第2章"},
			},
			expected: []TocEntry{
				{Title: "封面", PageNumber: 1},
				{Title: "第1章", PageNumber: 2},
				{Title: "第2章", PageNumber: 3},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := BuildTOC(tt.pages)
			if len(got) != len(tt.pages) {
				t.Fatalf("entry count = %d, want %d", len(got), len(tt.pages))
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("entry[%d] = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}
