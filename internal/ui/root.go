package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/astroview/apod-viewer/internal/config"
	"github.com/astroview/apod-viewer/internal/download"
	"github.com/astroview/apod-viewer/internal/model"
)

// StateSource is the fetch collaborator: one observable Resource value,
// driven externally. The screen never asks it to retry.
type StateSource interface {
	SetUpdateCallback(func(model.Resource[model.Picture]))
	Start(ctx context.Context)
	Latest() model.Resource[model.Picture]
}

// ImageLoader is the image-loading collaborator. It takes a URL and hands
// back a renderable resource; caching and decoding are its concern.
type ImageLoader interface {
	Load(ctx context.Context, url string) (fyne.Resource, error)
}

// RootUI projects the fetch state onto the screen: a spinner while loading,
// the full record on success, a static apology on error. Exactly one branch
// is visible at any instant.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	fetcher   StateSource
	images    ImageLoader
	transfers download.Transferer
	notifier  Notifier

	state model.Resource[model.Picture]

	// Loading branch
	loadingBox     *fyne.Container
	loadingSpinner *widget.ProgressBarInfinite

	// Success branch
	contentBox     *fyne.Container
	titleLabel     *widget.Label
	dateLabel      *widget.Label
	photo          *canvas.Image
	photoSpinner   *widget.ProgressBarInfinite
	photoStack     *fyne.Container
	downloadBtn    *widget.Button
	detailSlot     *fyne.Container
	detailPanel    *DetailPanel
	panelSnapshot  PanelSnapshot
	renderedRecord model.Picture
	loadedImageURL string

	// Error branch
	errorBox   *fyne.Container
	errorLabel *widget.Label
}

// NewRootUI creates and wires the main screen. All collaborators arrive
// through this constructor; nothing is located globally.
func NewRootUI(window fyne.Window, app fyne.App, fetcher StateSource, images ImageLoader, transfers download.Transferer) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		fetcher:      fetcher,
		images:       images,
		transfers:    transfers,
		notifier:     NewToaster(window),
		state:        model.Loading[model.Picture](),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.createMenu()

	// Observe the single fetch; the callback may fire on a background
	// goroutine, so hop to the UI thread before rendering
	fetcher.SetUpdateCallback(func(state model.Resource[model.Picture]) {
		fyne.Do(func() {
			ui.Render(state)
		})
	})

	ui.Render(fetcher.Latest())
	fetcher.Start(context.Background())

	return ui
}

// SetNotifier replaces the acknowledgment collaborator. Used by tests.
func (ui *RootUI) SetNotifier(notifier Notifier) {
	ui.notifier = notifier
}

// State returns the most recently rendered fetch state
func (ui *RootUI) State() model.Resource[model.Picture] {
	return ui.state
}

// DetailPanel returns the expandable panel, present only in the success branch
func (ui *RootUI) DetailPanel() *DetailPanel {
	return ui.detailPanel
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Loading branch: indeterminate spinner, nothing else
	ui.loadingSpinner = widget.NewProgressBarInfinite()
	ui.loadingBox = container.NewCenter(container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyLoading)),
		ui.loadingSpinner,
	))

	// Success branch
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.titleLabel.Alignment = fyne.TextAlignCenter

	ui.dateLabel = widget.NewLabel("")
	ui.dateLabel.Alignment = fyne.TextAlignCenter
	ui.dateLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ui.photo = canvas.NewImageFromResource(nil)
	ui.photo.FillMode = canvas.ImageFillContain
	ui.photo.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))

	ui.photoSpinner = widget.NewProgressBarInfinite()

	ui.downloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDownload), theme.DownloadIcon(), ui.onDownloadTapped)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.mobile.SizeButtonForTouch(ui.downloadBtn)

	// Download affordance overlaid on the image, pinned bottom-right
	overlay := container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), ui.downloadBtn),
		nil, nil,
	)
	ui.photoStack = container.NewStack(
		ui.photo,
		container.NewCenter(ui.photoSpinner),
		overlay,
	)

	ui.detailSlot = container.NewVBox()

	ui.contentBox = container.NewVBox(
		ui.titleLabel,
		ui.dateLabel,
		ui.photoStack,
		ui.detailSlot,
	)

	// Error branch: static localized apology only; causes stay in the log
	ui.errorLabel = widget.NewLabel(ui.localization.GetText(KeyFetchError))
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorBox = container.NewCenter(container.NewVBox(
		widget.NewLabel(IconError),
		ui.errorLabel,
	))

	content := container.NewStack(ui.loadingBox, ui.contentBox, ui.errorBox)

	// Swipes toggle the detail panel on touch devices
	swipeable := NewSwipeableArea(content, ui.onGesture)

	scroll := container.NewVScroll(swipeable)
	ui.window.SetContent(scroll)
}

// Render projects the given state onto the screen. Idempotent: rendering the
// same state twice leaves the same visible tree, with no further side
// effects.
func (ui *RootUI) Render(state model.Resource[model.Picture]) {
	ui.state = state

	state.Match(
		ui.showLoading,
		ui.showContent,
		ui.showError,
	)
}

// showLoading shows the spinner branch only
func (ui *RootUI) showLoading() {
	ui.loadingBox.Show()
	ui.contentBox.Hide()
	ui.errorBox.Hide()
}

// showContent shows the full record branch only
func (ui *RootUI) showContent(picture model.Picture) {
	firstRender := ui.detailPanel == nil || picture != ui.renderedRecord

	if firstRender {
		ui.renderedRecord = picture

		ui.titleLabel.SetText(picture.DisplayTitle())
		ui.dateLabel.SetText(picture.Date)

		// Re-create the panel, restoring the expansion flag from the
		// latest snapshot so it survives re-renders of this branch
		ui.detailPanel = NewDetailPanel(picture, ui.panelSnapshot, ui.localization)
		ui.detailPanel.SetOnToggle(func(bool) {
			ui.panelSnapshot = ui.detailPanel.Snapshot()
		})
		ui.detailSlot.RemoveAll()
		ui.detailSlot.Add(ui.detailPanel)

		ui.loadImage(picture)
	}

	ui.loadingBox.Hide()
	ui.contentBox.Show()
	ui.errorBox.Hide()
}

// showError shows the static apology branch only. The cause is logged and
// never rendered verbatim.
func (ui *RootUI) showError(cause error) {
	log.Printf("Fetch failed, rendering error branch: %v", cause)

	ui.loadingBox.Hide()
	ui.contentBox.Hide()
	ui.errorBox.Show()
}

// loadImage asks the image collaborator for the record's display image and
// swaps it in when it arrives. A failed load leaves the placeholder spinning;
// the failure is logged only.
func (ui *RootUI) loadImage(picture model.Picture) {
	imageURL := picture.DisplayImageURL()
	if ui.images == nil || imageURL == "" || imageURL == ui.loadedImageURL {
		return
	}

	ui.photoSpinner.Show()

	go func() {
		res, err := ui.images.Load(context.Background(), imageURL)
		if err != nil {
			log.Printf("Image load failed for %s: %v", imageURL, err)
			return
		}

		fyne.Do(func() {
			ui.loadedImageURL = imageURL
			ui.photo.Resource = res
			ui.photo.Refresh()
			ui.photoSpinner.Hide()
		})
	}()
}

// onDownloadTapped starts a transfer of the displayed image and acknowledges
// immediately. Fire-and-forget: no await, no de-duplication, each tap is an
// independent attempt.
func (ui *RootUI) onDownloadTapped() {
	picture, ok := ui.state.Value()
	if !ok {
		log.Printf("Download tapped outside success state, ignoring")
		return
	}

	url := picture.DownloadURL()
	log.Printf("Download trigger: %s", url)

	ui.transfers.StartTransfer(url)
	ui.notifier.Show(ui.localization.GetText(KeyDownloadStarted), ToastAutoHide)
}

// onGesture maps touch gestures onto panel expansion
func (ui *RootUI) onGesture(gesture GestureType) {
	if ui.detailPanel == nil || !ui.state.IsSuccess() {
		return
	}

	switch gesture {
	case GestureSwipeUp:
		if !ui.detailPanel.Expanded() {
			ui.detailPanel.ToggleExpansion()
		}
	case GestureSwipeDown:
		if ui.detailPanel.Expanded() {
			ui.detailPanel.ToggleExpansion()
		}
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	languageNames := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.GetAvailableLanguageCodes() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(languageNames[code], func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.errorLabel.SetText(ui.localization.GetText(KeyFetchError))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))

	// The detail panel re-reads its texts on the next success render; force
	// one if a record is on screen
	if picture, ok := ui.state.Value(); ok {
		ui.renderedRecord = model.Picture{}
		ui.showContent(picture)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.notifier.Show(ui.localization.GetText(KeySettingsSaved), ToastAutoHide)
	})
}
