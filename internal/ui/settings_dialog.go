package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/astroview/apod-viewer/internal/config"
)

// ShowSettingsDialog displays the settings form and persists confirmed values
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	apiKeyEntry := widget.NewEntry()
	apiKeyEntry.SetPlaceHolder(config.DefaultAPIKey)
	apiKeyEntry.SetText(settings.GetAPIKey())

	saveDirEntry := widget.NewEntry()
	saveDirEntry.SetText(settings.GetSaveDirectory())

	browseBtn := widget.NewButton(localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			saveDirEntry.SetText(uri.Path())
		}, window)
	})
	saveDirRow := container.NewBorder(nil, nil, nil, browseBtn, saveDirEntry)

	languageSelect := widget.NewSelect(nil, nil)
	codes := []string{"system"}
	languageSelect.Options = append(codes, NewLocalization().GetAvailableLanguageCodes()...)
	languageSelect.SetSelected(settings.GetLanguage())

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(KeyAPIKey)+":"),
		apiKeyEntry,

		widget.NewLabel(localization.GetText(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewSeparator(),

		widget.NewLabel(localization.GetText(KeyLanguage)+":"),
		languageSelect,
	)

	confirm := dialog.NewCustomConfirm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			settings.SetAPIKey(apiKeyEntry.Text)
			if saveDirEntry.Text != "" {
				settings.SetSaveDirectory(saveDirEntry.Text)
			}
			if languageSelect.Selected != "" {
				settings.SetLanguage(languageSelect.Selected)
			}

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)

	confirm.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	confirm.Show()
}
