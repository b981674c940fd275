package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDownload = "⬇"
	IconExpand   = "▾"
	IconCollapse = "▴"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	CopyrightSeparator = ": "
)

// Layout sizing
const (
	ImageMinWidth  float32 = 320
	ImageMinHeight float32 = 240

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 280
	ToastHeight   float32 = 56
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Animation behavior
const (
	ExpandAnimationDuration = 200 * time.Millisecond
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)
