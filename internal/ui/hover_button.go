package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// hoverButton is a button that reports pointer enter/leave and shows a
// tooltip while hovered. Disabled buttons still show their tooltip.
type hoverButton struct {
	widget.Button

	canvas  fyne.Canvas
	tooltip string

	// onHover is called on enter (true) and leave (false)
	onHover func(hovered bool)

	tip     *widget.PopUp
	tipHide *time.Timer
}

func newHoverButton(c fyne.Canvas, label string, tapped func()) *hoverButton {
	b := &hoverButton{canvas: c}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// SetTooltip changes the tooltip text. An empty text disables the tooltip.
func (b *hoverButton) SetTooltip(text string) {
	if b.tooltip == text {
		return
	}
	b.tooltip = text
	b.hideTooltip()
}

// Tooltip returns the current tooltip text
func (b *hoverButton) Tooltip() string {
	return b.tooltip
}

// MouseIn implements desktop.Hoverable
func (b *hoverButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	b.showTooltip(e.AbsolutePosition)
	if b.onHover != nil {
		b.onHover(true)
	}
}

// MouseOut implements desktop.Hoverable
func (b *hoverButton) MouseOut() {
	b.Button.MouseOut()
	b.hideTooltip()
	if b.onHover != nil {
		b.onHover(false)
	}
}

func (b *hoverButton) showTooltip(at fyne.Position) {
	if b.tooltip == "" || b.canvas == nil {
		return
	}
	b.hideTooltip()

	label := widget.NewLabel(b.tooltip)
	b.tip = widget.NewPopUp(label, b.canvas)
	b.tip.ShowAtPosition(at.AddXY(0, MinTouchTargetSize/2))

	tip := b.tip
	b.tipHide = time.AfterFunc(TooltipAutoHide, func() {
		fyne.Do(func() {
			if b.tip == tip {
				b.hideTooltip()
			}
		})
	})
}

func (b *hoverButton) hideTooltip() {
	if b.tipHide != nil {
		b.tipHide.Stop()
		b.tipHide = nil
	}
	if b.tip != nil {
		b.tip.Hide()
		b.tip = nil
	}
}
