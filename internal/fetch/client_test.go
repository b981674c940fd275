package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/astroview/apod-viewer/internal/model"
)

func TestClient_PictureOfTheDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("Expected api_key 'test-key', got '%s'", got)
		}
		if got := r.URL.Query().Get("thumbs"); got != "true" {
			t.Errorf("Expected thumbs 'true', got '%s'", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "The Horsehead Nebula",
			"explanation": "One of the most identifiable nebulae in the sky.",
			"date": "2026-08-25",
			"url": "https://apod.nasa.gov/apod/image/horsehead.jpg",
			"hdurl": "https://apod.nasa.gov/apod/image/horsehead_big.jpg",
			"media_type": "image",
			"copyright": "Jose Mtanous"
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	picture, err := client.PictureOfTheDay(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := model.Picture{
		Title:       "The Horsehead Nebula",
		Explanation: "One of the most identifiable nebulae in the sky.",
		Date:        "2026-08-25",
		URL:         "https://apod.nasa.gov/apod/image/horsehead.jpg",
		HDURL:       "https://apod.nasa.gov/apod/image/horsehead_big.jpg",
		MediaType:   "image",
		Copyright:   "Jose Mtanous",
	}

	if diff := cmp.Diff(expected, picture); diff != "" {
		t.Errorf("PictureOfTheDay() mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_PictureOfTheDay_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	_, err := client.PictureOfTheDay(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-200 response, got nil")
	}
}

func TestClient_PictureOfTheDay_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	_, err := client.PictureOfTheDay(context.Background())
	if err == nil {
		t.Fatal("Expected error for malformed body, got nil")
	}
}

func TestNewClient_DefaultAPIKey(t *testing.T) {
	client := NewClient("")
	if client.apiKey != DefaultAPIKey {
		t.Errorf("Expected default API key %s, got %s", DefaultAPIKey, client.apiKey)
	}
}
