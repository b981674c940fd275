package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Notifier shows short, transient acknowledgments. Fire-and-forget: the
// caller never learns whether or when the message was dismissed.
type Notifier interface {
	Show(message string, duration time.Duration)
}

// Toaster displays transient toast popups near the top of the window
type Toaster struct {
	window fyne.Window
}

// NewToaster creates a toaster for the given window
func NewToaster(window fyne.Window) *Toaster {
	return &Toaster{window: window}
}

// Show displays a non-blocking toast that hides itself after duration.
// Safe to call repeatedly; each call gets its own popup.
func (t *Toaster) Show(message string, duration time.Duration) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter

	popup := widget.NewPopUp(label, t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos((canvasSize.Width-toastSize.Width)/2, ToastMargin)

	popup.Resize(toastSize)
	popup.ShowAtPosition(toastPos)

	// Auto-hide after the requested time
	go func() {
		time.Sleep(duration)
		fyne.Do(func() {
			popup.Hide()
		})
	}()
}
