package imgcache

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Cache behavior constants
const (
	DefaultTTL = 24 * time.Hour

	DownloadTimeout = 60 * time.Second

	DirPermissions = 0755
)

// Loader fetches image bytes by URL with a write-through on-disk cache and
// hands them to the UI as renderable Fyne resources. Animated formats (GIF)
// and video thumbnail frames pass through untouched; decoding is Fyne's
// concern.
type Loader struct {
	dir        string
	ttl        time.Duration
	httpClient *http.Client
}

// NewLoader creates a loader caching under dir. An empty dir falls back to
// the user cache directory.
func NewLoader(dir string) *Loader {
	if dir == "" {
		cacheHome, err := os.UserCacheDir()
		if err != nil {
			dir = filepath.Join(os.TempDir(), "apod-viewer")
		} else {
			dir = filepath.Join(cacheHome, "apod-viewer")
		}
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		log.Printf("Failed to create image cache dir %s: %v", dir, err)
	}

	return &Loader{
		dir:        dir,
		ttl:        DefaultTTL,
		httpClient: &http.Client{Timeout: DownloadTimeout},
	}
}

// SetTTL updates the cache TTL
func (l *Loader) SetTTL(d time.Duration) {
	l.ttl = d
}

// Load returns a renderable resource for the given URL, reading the on-disk
// cache first and fetching over HTTP on a miss or expired entry.
func (l *Loader) Load(ctx context.Context, imageURL string) (fyne.Resource, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("empty image URL")
	}

	path := filepath.Join(l.dir, normalizeKey(imageURL))

	if data, ok := l.loadFresh(path); ok {
		log.Printf("Image cache hit: %s", imageURL)
		return fyne.NewStaticResource(filepath.Base(path), data), nil
	}

	data, err := l.fetch(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		// A failed cache write still serves the image
		log.Printf("Failed to cache image %s: %v", imageURL, err)
	}

	return fyne.NewStaticResource(filepath.Base(path), data), nil
}

// Clear removes all cached entries
func (l *Loader) Clear() error {
	return os.RemoveAll(l.dir)
}

// loadFresh returns cached bytes when the entry exists and is within TTL
func (l *Loader) loadFresh(path string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) >= l.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}

// fetch downloads the image bytes
func (l *Loader) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	return data, nil
}

// normalizeKey converts a URL into a filesystem-safe cache file name
func normalizeKey(key string) string {
	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, key)

	for strings.Contains(normalized, "..") {
		normalized = strings.ReplaceAll(normalized, "..", ".")
	}

	return normalized
}
