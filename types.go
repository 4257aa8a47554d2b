package repage

import "time"

// SectionKind identifies the structural role of a Section.
type SectionKind string

// Section kinds.
const (
	KindHeading   SectionKind = "heading"
	KindParagraph SectionKind = "paragraph"
	KindTable     SectionKind = "table"
	KindImage     SectionKind = "image"
)

// Section is one structural unit of an ingested document, in reading order.
// Level is meaningful only for heading sections (1-3).
type Section struct {
	Kind  SectionKind `yaml:"kind" json:"kind"`
	Level int         `yaml:"level,omitempty" json:"level,omitempty"`
	Text  string      `yaml:"text" json:"text"`
}

// DocumentContent is the persisted unit consumed at the boundary.
//
// Sections are the source of truth; Markup is a derived cache regenerated
// from Sections on every edit save (see MarkupFromSections). The two must
// never diverge after a save. Rendering prefers Markup and falls back to
// re-deriving it from Sections when Markup is empty.
type DocumentContent struct {
	Title    string    `yaml:"title" json:"title"`
	Markup   string    `yaml:"markup" json:"markup"`
	Sections []Section `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// Page is one unit of paginated output. Content holds zero or more whole
// top-level markup nodes and, once flushed by the paginator, is never
// mutated. Pages are produced in final reading order.
type Page struct {
	Title       string `yaml:"title" json:"title"`
	StyledTitle string `yaml:"styledTitle" json:"styledTitle"`
	Content     string `yaml:"content" json:"content"`
	FontSize    string `yaml:"fontSize" json:"fontSize"`
}

// TocEntry is one table-of-contents row. PageNumber is 1-indexed.
type TocEntry struct {
	Title      string `yaml:"title" json:"title"`
	PageNumber int    `yaml:"pageNumber" json:"pageNumber"`
}

// Result is the output of a full render: the ordered page list and the
// table of contents derived from it. len(TOC) always equals len(Pages).
type Result struct {
	Pages []Page     `yaml:"pages" json:"pages"`
	TOC   []TocEntry `yaml:"toc" json:"toc"`
}

// Defaults for the section-start heuristic and fallback page titles.
// The length cap and fallback titles are configurable (see Options) so a
// follow-up decision can adjust them without touching the algorithm.
const (
	DefaultSectionStartLimit = 100
	DefaultPageTitle         = "新頁面"
	DefaultSectionTitle      = "章節"
)

// defaultCacheTTL bounds how long memoized render results are kept.
const defaultCacheTTL = 15 * time.Minute

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	sectionStartLimit    int
	pageFallbackTitle    string
	sectionFallbackTitle string
	cacheTTL             time.Duration
}

// WithSectionStartLimit sets the maximum plain-text length (in runes) for a
// node to qualify as an implicit section start. Longer text never triggers a
// page break even when a matching prefix is present.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithSectionStartLimit(n int) Option {
	if n <= 0 {
		panic("repage: WithSectionStartLimit must be positive")
	}
	return func(s *Service) {
		s.cfg.sectionStartLimit = n
	}
}

// WithFallbackTitles sets the titles used when a page-break marker or a
// section-start node carries no text of its own.
func WithFallbackTitles(page, section string) Option {
	return func(s *Service) {
		if page != "" {
			s.cfg.pageFallbackTitle = page
		}
		if section != "" {
			s.cfg.sectionFallbackTitle = section
		}
	}
}

// WithCacheTTL sets how long RenderVersion keeps memoized results.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithCacheTTL(d time.Duration) Option {
	if d <= 0 {
		panic("repage: WithCacheTTL duration must be positive")
	}
	return func(s *Service) {
		s.cfg.cacheTTL = d
	}
}
