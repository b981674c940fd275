package platform

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Fallback file name when nothing usable can be derived from a URL
const (
	DefaultSavedName = "apod.jpg"
)

// CreateDirectoryIfNotExists creates the directory path if missing
func CreateDirectoryIfNotExists(dir string) error {
	if dir == "" {
		return fmt.Errorf("empty directory path")
	}
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// GetHomePicturesDir returns the user's Pictures directory, creating the
// path string only (not the directory itself)
func GetHomePicturesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "Pictures"), nil
}

// FilenameFromURL derives a safe local file name from a remote URL.
// Query strings and fragments are dropped; an unusable URL falls back to a
// fixed name.
func FilenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DefaultSavedName
	}

	name := filepath.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return DefaultSavedName
	}

	// Strip characters that are unsafe in file names on any target OS
	name = strings.Map(func(r rune) rune {
		switch r {
		case '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)

	return name
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, filepath.Dir(absPath)).Run()
	default:
		// Mobile platforms have no file manager to shell out to
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
