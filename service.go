package repage

import (
	"context"
	"fmt"

	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/cache"
)

// Service orchestrates the re-pagination pipeline: sanitize, normalize,
// paginate, derive the TOC. A Service is safe for concurrent use.
type Service struct {
	cfg        serviceConfig
	sanitizer  sanitizer
	normalizer normalizer
	paginator  paginator
	results    *cache.Cache
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSectionStartLimit).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			sectionStartLimit:    DefaultSectionStartLimit,
			pageFallbackTitle:    DefaultPageTitle,
			sectionFallbackTitle: DefaultSectionTitle,
			cacheTTL:             defaultCacheTTL,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.sanitizer = newAllowlistSanitizer()
	s.normalizer = newMarkdownNormalizer()
	s.paginator = &segmentPaginator{
		sectionStartLimit:    s.cfg.sectionStartLimit,
		pageFallbackTitle:    s.cfg.pageFallbackTitle,
		sectionFallbackTitle: s.cfg.sectionFallbackTitle,
	}
	s.results = cache.New(s.cfg.cacheTTL)

	return s
}

// Render runs the full pipeline over one document and returns its pages and
// table of contents. Markup is preferred; when it is empty the markup is
// re-derived from the section list. The context is used for cancellation.
func (s *Service) Render(ctx context.Context, doc DocumentContent) (*Result, error) {
	markup := doc.Markup
	if markup == "" {
		markup = MarkupFromSections(doc.Sections)
	}
	if markup == "" {
		return nil, ErrEmptyDocument
	}

	markup = s.sanitizer.Sanitize(ctx, markup)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	markup = s.normalizer.Normalize(ctx, markup)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pages, err := s.paginator.Paginate(ctx, doc.Title, markup)
	if err != nil {
		return nil, fmt.Errorf("paginating: %w", err)
	}

	return &Result{Pages: pages, TOC: BuildTOC(pages)}, nil
}

// RenderVersion renders with memoization keyed by a content version
// identifier. Normalization is not idempotent, so callers must not
// re-derive pages speculatively for the same content version; this is the
// supported way to render on every view/print request. An empty version
// renders without caching.
func (s *Service) RenderVersion(ctx context.Context, version string, doc DocumentContent) (*Result, error) {
	if version == "" {
		return s.Render(ctx, doc)
	}

	if cached, ok := s.results.Get(version); ok {
		return cached.(*Result), nil
	}

	result, err := s.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.results.Set(version, result)
	return result, nil
}

// Invalidate drops the memoized result for a content version, for callers
// that reuse version keys after an edit save.
func (s *Service) Invalidate(version string) {
	s.results.Delete(version)
}
