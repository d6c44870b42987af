package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/rec-viewer/internal/share"
)

// segmentedToggle is a pair of mutually exclusive buttons. The selected
// side is drawn with high importance.
type segmentedToggle struct {
	options  [2]*hoverButton
	tooltips [2]string
	selected int
	box      *fyne.Container

	// onSelect is called when the user picks a side that is not selected
	onSelect func(index int)
}

func newSegmentedToggle(c fyne.Canvas, first, second share.Option, onSelect func(index int)) *segmentedToggle {
	t := &segmentedToggle{
		tooltips: [2]string{first.Tooltip, second.Tooltip},
		onSelect: onSelect,
	}
	for i, opt := range []share.Option{first, second} {
		index := i
		t.options[i] = newHoverButton(c, opt.Label, func() { t.tap(index) })
		t.options[i].SetTooltip(opt.Tooltip)
	}
	t.box = container.NewGridWithColumns(2, t.options[0], t.options[1])
	t.SetSelected(0)
	return t
}

func (t *segmentedToggle) tap(index int) {
	if index == t.selected {
		return
	}
	if t.onSelect != nil {
		t.onSelect(index)
	}
}

// SetSelected marks one side as selected
func (t *segmentedToggle) SetSelected(index int) {
	t.selected = index
	for i, b := range t.options {
		importance := widget.MediumImportance
		if i == index {
			importance = widget.HighImportance
		}
		if b.Importance != importance {
			b.Importance = importance
			b.Refresh()
		}
	}
}

// Selected returns the selected side
func (t *segmentedToggle) Selected() int {
	return t.selected
}

// SetLabel changes the text of one side
func (t *segmentedToggle) SetLabel(index int, label string) {
	if t.options[index].Text != label {
		t.options[index].SetText(label)
	}
}

// SetAvailable enables or disables one side. A disabled side shows reason
// as its tooltip instead of the option's own.
func (t *segmentedToggle) SetAvailable(index int, available bool, reason string) {
	b := t.options[index]
	if available {
		b.SetTooltip(t.tooltips[index])
		if b.Disabled() {
			b.Enable()
		}
		return
	}
	b.SetTooltip(reason)
	if !b.Disabled() {
		b.Disable()
	}
}

// Object returns the canvas object to place in a layout
func (t *segmentedToggle) Object() fyne.CanvasObject {
	return t.box
}
