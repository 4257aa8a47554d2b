package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	repage "github.com/Madison-de-Chao/chaos-life-compass-sub000"
	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/config"
	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/fileutil"
	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/yamlutil"
)

// run renders every input document. Documents are independent, so they are
// rendered in parallel up to the worker limit.
func run(flags *cliFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	svc := repage.New(serviceOptions(cfg)...)

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	if outputDir == "" {
		outputDir = "."
	}
	writeTOC := flags.toc || cfg.Output.TOC

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(flags.workers)

	for _, input := range flags.inputs {
		input := input
		g.Go(func() error {
			if err := renderOne(ctx, svc, input, outputDir, writeTOC); err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			if flags.verbose {
				fmt.Fprintf(os.Stderr, "rendered %s\n", input)
			}
			return nil
		})
	}

	return g.Wait()
}

// serviceOptions maps file config onto library options.
func serviceOptions(cfg *config.Config) []repage.Option {
	var opts []repage.Option
	if cfg.Pagination.SectionStartLimit > 0 {
		opts = append(opts, repage.WithSectionStartLimit(cfg.Pagination.SectionStartLimit))
	}
	if cfg.Pagination.PageFallbackTitle != "" || cfg.Pagination.SectionFallbackTitle != "" {
		opts = append(opts, repage.WithFallbackTitles(
			cfg.Pagination.PageFallbackTitle,
			cfg.Pagination.SectionFallbackTitle,
		))
	}
	return opts
}

// renderOne loads one document, renders it, and writes its page files
// (and optionally toc.yaml) under outputDir/<document name>/.
func renderOne(ctx context.Context, svc *repage.Service, input, outputDir string, writeTOC bool) error {
	doc, err := loadDocument(input)
	if err != nil {
		return err
	}

	result, err := svc.Render(ctx, doc)
	if err != nil {
		return err
	}

	docDir := filepath.Join(outputDir, fileutil.BaseName(input))
	for i, page := range result.Pages {
		path := filepath.Join(docDir, fmt.Sprintf("page-%03d.html", i+1))
		if err := fileutil.WriteFile(path, []byte(pageHTML(page))); err != nil {
			return err
		}
	}

	if writeTOC {
		data, err := yamlutil.Marshal(result.TOC)
		if err != nil {
			return err
		}
		if err := fileutil.WriteFile(filepath.Join(docDir, "toc.yaml"), data); err != nil {
			return err
		}
	}

	return nil
}

// loadDocument reads a document file: YAML for the persisted
// {title, markup, sections} shape, markdown for raw uploads (the markdown
// is ingested into sections and the markup derived from them, exactly as
// an edit save would).
func loadDocument(path string) (repage.DocumentContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return repage.DocumentContent{}, err
	}

	if fileutil.IsYAMLFile(path) {
		var doc repage.DocumentContent
		if err := yamlutil.Unmarshal(data, &doc); err != nil {
			return repage.DocumentContent{}, err
		}
		return doc, nil
	}

	sections := repage.SectionsFromMarkdown(data)
	return repage.DocumentContent{
		Title:    fileutil.BaseName(path),
		Markup:   repage.MarkupFromSections(sections),
		Sections: sections,
	}, nil
}

// pageHTML wraps one page as a standalone fragment for the presentation
// layer: styled title sized by the page's hint, then the content.
func pageHTML(page repage.Page) string {
	var b strings.Builder
	b.WriteString(`<article class="doc-page">` + "\n")
	b.WriteString(fmt.Sprintf(`<h1 class="page-title" style="font-size:%s">%s</h1>`, page.FontSize, page.StyledTitle))
	b.WriteString("\n")
	b.WriteString(page.Content)
	b.WriteString("\n</article>\n")
	return b.String()
}
