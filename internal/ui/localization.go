package ui

import (
	"sort"

	"github.com/samber/lo"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLoading         = "loading"
	KeyFetchError      = "fetch_error"
	KeyDownload        = "download"
	KeyDownloadStarted = "download_started"
	KeyShowMore        = "show_more"
	KeyShowLess        = "show_less"
	KeyCopyright       = "copyright"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyAPIKey          = "api_key"
	KeySaveDirectory   = "save_directory"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// GetAvailableLanguageCodes returns language codes in stable order for menus
func (l *Localization) GetAvailableLanguageCodes() []string {
	codes := lo.Keys(l.GetAvailableLanguages())
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Astronomy Picture of the Day",
		KeyLoading:         "Loading...",
		KeyFetchError:      "Something went wrong. Please try again later.",
		KeyDownload:        "Download",
		KeyDownloadStarted: "Download started",
		KeyShowMore:        "Show more",
		KeyShowLess:        "Show less",
		KeyCopyright:       "Copyright",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyAPIKey:          "NASA API Key",
		KeySaveDirectory:   "Save Directory",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Астрономическая картинка дня",
		KeyLoading:         "Загрузка...",
		KeyFetchError:      "Что-то пошло не так. Попробуйте позже.",
		KeyDownload:        "Скачать",
		KeyDownloadStarted: "Загрузка начата",
		KeyShowMore:        "Подробнее",
		KeyShowLess:        "Свернуть",
		KeyCopyright:       "Авторские права",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyAPIKey:          "Ключ NASA API",
		KeySaveDirectory:   "Папка сохранения",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeySettingsSaved:   "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Imagem Astronômica do Dia",
		KeyLoading:         "Carregando...",
		KeyFetchError:      "Algo deu errado. Tente novamente mais tarde.",
		KeyDownload:        "Baixar",
		KeyDownloadStarted: "Download iniciado",
		KeyShowMore:        "Mostrar mais",
		KeyShowLess:        "Mostrar menos",
		KeyCopyright:       "Direitos autorais",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyAPIKey:          "Chave da API da NASA",
		KeySaveDirectory:   "Diretório de Salvamento",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
	}
}
