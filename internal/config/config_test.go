package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repage.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output:
  defaultDir: ./out
  toc: true
pagination:
  sectionStartLimit: 80
  pageFallbackTitle: blank page
  sectionFallbackTitle: blank section
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Output.DefaultDir != "./out" {
		t.Errorf("Output.DefaultDir = %q, want %q", cfg.Output.DefaultDir, "./out")
	}
	if !cfg.Output.TOC {
		t.Error("Output.TOC = false, want true")
	}
	if cfg.Pagination.SectionStartLimit != 80 {
		t.Errorf("Pagination.SectionStartLimit = %d, want 80", cfg.Pagination.SectionStartLimit)
	}
	if cfg.Pagination.PageFallbackTitle != "blank page" {
		t.Errorf("Pagination.PageFallbackTitle = %q, want %q", cfg.Pagination.PageFallbackTitle, "blank page")
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "mystery: true\n")

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want ErrConfigParse", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		expected error
	}{
		{
			name:     "zero config valid",
			cfg:      Config{},
			expected: nil,
		},
		{
			name: "negative limit rejected",
			cfg: Config{
				Pagination: PaginationConfig{SectionStartLimit: -1},
			},
			expected: ErrInvalidLimit,
		},
		{
			name: "oversized limit rejected",
			cfg: Config{
				Pagination: PaginationConfig{SectionStartLimit: MaxLimitValue + 1},
			},
			expected: ErrInvalidLimit,
		},
		{
			name: "overlong fallback title rejected",
			cfg: Config{
				Pagination: PaginationConfig{PageFallbackTitle: string(make([]byte, MaxTitleLength+1))},
			},
			expected: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.expected) {
				t.Errorf("Validate() error = %v, want %v", err, tt.expected)
			}
		})
	}
}
