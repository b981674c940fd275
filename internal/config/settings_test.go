package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIKey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	key := settings.GetAPIKey()
	if key != DefaultAPIKey {
		t.Errorf("Expected default API key %s, got %s", DefaultAPIKey, key)
	}

	// Test setting custom value
	settings.SetAPIKey("my-nasa-key")
	if got := settings.GetAPIKey(); got != "my-nasa-key" {
		t.Errorf("Expected API key 'my-nasa-key', got %s", got)
	}

	// Empty value falls back to the demo key
	settings.SetAPIKey("")
	if got := settings.GetAPIKey(); got != DefaultAPIKey {
		t.Errorf("Expected fallback to %s, got %s", DefaultAPIKey, got)
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetSaveDirectory()
	if dir == "" {
		t.Error("Save directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/pictures"
	settings.SetSaveDirectory(customDir)

	if got := settings.GetSaveDirectory(); got != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language 'ru', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s to be present", code)
		}
	}
}
