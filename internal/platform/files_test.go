package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pictures")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Creating an existing directory must not fail
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestCreateDirectoryIfNotExists_Empty(t *testing.T) {
	if err := CreateDirectoryIfNotExists(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://apod.nasa.gov/apod/image/2408/horsehead.jpg", "horsehead.jpg"},
		{"https://apod.nasa.gov/apod/image/a.gif?cb=123", "a.gif"},
		{"https://img.youtube.com/vi/abc/0.jpg", "0.jpg"},
		{"https://apod.nasa.gov/", "apod.jpg"},
		{"", "apod.jpg"},
		{"https://example.com/we<ir>d:name.png", "we_ir_d_name.png"},
	}

	for _, test := range tests {
		if result := FilenameFromURL(test.url); result != test.expected {
			t.Errorf("FilenameFromURL(%q) = %q, expected %q", test.url, result, test.expected)
		}
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if filepath.Base(dir) != "Pictures" {
		t.Errorf("Expected path ending in 'Pictures', got %s", dir)
	}
}

func TestOpenFileInManager_MissingFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "does-not-exist.jpg"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
