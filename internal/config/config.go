// Package config loads CLI configuration for the repage tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/fileutil"
	"github.com/Madison-de-Chao/chaos-life-compass-sub000/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidLimit   = errors.New("invalid section start limit")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength = 100 // fallback page/section titles
	MaxLimitValue  = 10_000
)

// Config holds all configuration for the repage CLI.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = alongside input)
	TOC        bool   `yaml:"toc"`        // Write a toc.yaml next to the page files
}

// PaginationConfig overrides pagination defaults.
type PaginationConfig struct {
	SectionStartLimit    int    `yaml:"sectionStartLimit"`    // 0 = library default
	PageFallbackTitle    string `yaml:"pageFallbackTitle"`    // empty = library default
	SectionFallbackTitle string `yaml:"sectionFallbackTitle"` // empty = library default
}

// Default returns a zero-value config that defers to library defaults.
func Default() *Config {
	return &Config{}
}

// SearchPaths returns the paths probed when no --config flag is given,
// in priority order.
func SearchPaths() []string {
	paths := []string{"repage.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "repage", "config.yaml"))
	}
	return paths
}

// Load reads and validates a config file. An empty path probes SearchPaths
// and returns Default when none exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range SearchPaths() {
			if fileutil.FileExists(candidate) {
				path = candidate
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field bounds.
func (c *Config) Validate() error {
	if c.Pagination.SectionStartLimit < 0 || c.Pagination.SectionStartLimit > MaxLimitValue {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, c.Pagination.SectionStartLimit)
	}
	if len(c.Pagination.PageFallbackTitle) > MaxTitleLength {
		return fmt.Errorf("%w: pageFallbackTitle", ErrFieldTooLong)
	}
	if len(c.Pagination.SectionFallbackTitle) > MaxTitleLength {
		return fmt.Errorf("%w: sectionFallbackTitle", ErrFieldTooLong)
	}
	return nil
}
