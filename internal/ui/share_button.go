package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rec-viewer/internal/share"
)

// ShareButton opens the share dialog. It is disabled, with the reason as
// its tooltip, whenever the current view has no shareable link.
type ShareButton struct {
	button *hoverButton
	modal  *share.Modal
	host   HostContext
	dialog *ShareDialog
}

// NewShareButton creates the trigger for a dialog
func NewShareButton(c fyne.Canvas, modal *share.Modal, host HostContext, dlg *ShareDialog) *ShareButton {
	sb := &ShareButton{modal: modal, host: host, dialog: dlg}
	sb.button = newHoverButton(c, "", sb.onTapped)
	sb.button.Importance = widget.HighImportance
	sb.Refresh()
	return sb
}

func (sb *ShareButton) onTapped() {
	if sb.modal.ActivateTrigger(sb.host.ShareContext()) {
		sb.dialog.Show()
	}
	sb.Refresh()
}

// Refresh re-evaluates the button against the current context
func (sb *ShareButton) Refresh() {
	state := sb.modal.TriggerState(sb.host.ShareContext())
	setButtonText(&sb.button.Button, IconShare+" "+state.Label)
	sb.button.SetTooltip(state.Tooltip)
	if state.Enabled == sb.button.Disabled() {
		if state.Enabled {
			sb.button.Enable()
		} else {
			sb.button.Disable()
		}
	}
}

// Enabled reports whether the dialog can be opened
func (sb *ShareButton) Enabled() bool {
	return !sb.button.Disabled()
}

// Object returns the canvas object to place in a layout
func (sb *ShareButton) Object() fyne.CanvasObject {
	return sb.button
}
