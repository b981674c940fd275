package config

import (
	"fyne.io/fyne/v2"

	"github.com/astroview/apod-viewer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey        = "api_key"
	KeySaveDirectory = "save_directory"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultAPIKey   = "DEMO_KEY"
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIKey returns the configured NASA API key, falling back to the
// rate-limited demo key
func (s *Settings) GetAPIKey() string {
	key := s.app.Preferences().String(KeyAPIKey)
	if key == "" {
		s.SetAPIKey(DefaultAPIKey)
		return DefaultAPIKey
	}
	return key
}

// SetAPIKey sets the NASA API key
func (s *Settings) SetAPIKey(key string) {
	if key == "" {
		key = DefaultAPIKey
	}
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetSaveDirectory returns the configured save directory for downloads
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/apod"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
