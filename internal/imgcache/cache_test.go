package imgcache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoader_LoadAndCache(t *testing.T) {
	var hits atomic.Int32
	payload := []byte("GIF89a fake image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(payload)
	}))
	defer server.Close()

	loader := NewLoader(t.TempDir())

	res, err := loader.Load(context.Background(), server.URL+"/image.gif")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if string(res.Content()) != string(payload) {
		t.Errorf("Expected resource content to match payload")
	}

	// Second load must come from the on-disk cache
	_, err = loader.Load(context.Background(), server.URL+"/image.gif")
	if err != nil {
		t.Fatalf("Expected no error on cached load, got %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("Expected 1 HTTP fetch, got %d", hits.Load())
	}
}

func TestLoader_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("bytes"))
	}))
	defer server.Close()

	loader := NewLoader(t.TempDir())
	loader.SetTTL(time.Nanosecond)

	loader.Load(context.Background(), server.URL+"/a.jpg")
	time.Sleep(10 * time.Millisecond)
	loader.Load(context.Background(), server.URL+"/a.jpg")

	if hits.Load() != 2 {
		t.Errorf("Expected 2 HTTP fetches after TTL expiry, got %d", hits.Load())
	}
}

func TestLoader_HTTPErrorSurfacesToCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	loader := NewLoader(t.TempDir())

	_, err := loader.Load(context.Background(), server.URL+"/missing.jpg")
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}
}

func TestLoader_EmptyURL(t *testing.T) {
	loader := NewLoader(t.TempDir())

	_, err := loader.Load(context.Background(), "")
	if err == nil {
		t.Fatal("Expected error for empty URL, got nil")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"https://apod.nasa.gov/apod/image/a.jpg", "https___apod.nasa.gov_apod_image_a.jpg"},
		{"plain.jpg", "plain.jpg"},
		{"a//b..c", "a__b.c"},
	}

	for _, test := range tests {
		if result := normalizeKey(test.key); result != test.expected {
			t.Errorf("normalizeKey(%q) = %q, expected %q", test.key, result, test.expected)
		}
	}
}
