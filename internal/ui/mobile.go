package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI helpers
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// TouchTargetSize returns the minimum hit size for interactive widgets
func (m *MobileUI) TouchTargetSize() float32 {
	if m.IsMobileDevice() {
		return MinTouchTargetSize
	}
	return 32
}

// SizeButtonForTouch grows a button to a comfortable touch target
func (m *MobileUI) SizeButtonForTouch(btn *widget.Button) {
	if !m.IsMobileDevice() {
		return
	}
	size := btn.MinSize()
	if size.Height < MinTouchTargetSize {
		btn.Resize(fyne.NewSize(size.Width, MinTouchTargetSize))
	}
}
