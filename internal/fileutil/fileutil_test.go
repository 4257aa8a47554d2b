package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists() = true for absent file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deep", "page.html")
	if err := WriteFile(path, []byte("<p>x</p>")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "<p>x</p>" {
		t.Errorf("content = %q, want %q", data, "<p>x</p>")
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"yaml file", "docs/guide.yaml", "guide"},
		{"markdown file", "guide.md", "guide"},
		{"no extension", "guide", "guide"},
		{"nested path", "/a/b/c.yml", "c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BaseName(tt.input); got != tt.expected {
				t.Errorf("BaseName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsYAMLFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"doc.yaml", true},
		{"doc.yml", true},
		{"doc.YAML", true},
		{"doc.md", false},
		{"doc", false},
	}

	for _, tt := range tests {
		if got := IsYAMLFile(tt.input); got != tt.expected {
			t.Errorf("IsYAMLFile(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
