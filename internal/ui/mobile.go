package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the given device
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// HasHover reports whether the pointer can hover without clicking. Touch
// screens only report taps.
func (m *MobileUI) HasHover() bool {
	return !m.IsMobileDevice()
}
