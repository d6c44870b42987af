package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconStop     = "■"
	IconClose    = "×"
	IconShare    = "⇪"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	ShareDialogWidth  float32 = 520
	ShareDialogHeight float32 = 420

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420

	// QRCodeSize is the edge of the link QR code in pixels
	QRCodeSize = 160

	StatusLabelWidth  float32 = 84
	PercentLabelWidth float32 = 48

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Timeline slider range used when a recording has no known extent
const (
	TimelineSliderMin = 0
	TimelineSliderMax = 1000
)

// Tooltip behavior
const (
	TooltipAutoHide = 1500 * time.Millisecond
)

// FeedbackResetDelay clears busy and copied feedback on devices that never
// report hover loss
const FeedbackResetDelay = 2 * time.Second
