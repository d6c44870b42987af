package ui

import (
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/share"
)

// HostContext is what the share dialog needs from the application shell
type HostContext interface {
	// ShareContext returns the current application state
	ShareContext() share.Context

	// WebViewerURL returns the prefix for full links, nil when unset
	WebViewerURL() *url.URL
}

// feedbackKeyCopy identifies the copy button's reset timer
const feedbackKeyCopy = "copy"

// companionRow is one auxiliary file: a selection check and a download button
type companionRow struct {
	file   model.DownloadableFile
	check  *widget.Check
	button *hoverButton
}

// ShareDialog renders a share.Modal. Refresh syncs every widget from the
// modal state and must be called after anything the dialog shows changed.
type ShareDialog struct {
	modal        *share.Modal
	host         HostContext
	window       fyne.Window
	localization *Localization
	mobile       *MobileUI
	logger       *log.Logger

	dialog dialog.Dialog

	urlEntry *widget.Entry
	shownURL string
	qr       *qrView

	// native presentation
	copyBtn *hoverButton

	// web presentation
	recordingBtn *hoverButton
	companions   []*companionRow
	selectedBtn  *hoverButton

	linkToggle   *segmentedToggle
	rangeRow     *fyne.Container
	rangeToggle  *segmentedToggle
	cursorRow    *fyne.Container
	cursorToggle *segmentedToggle

	// syncing suppresses widget callbacks while Refresh writes to widgets
	syncing bool

	resetTimers map[string]*time.Timer
}

// NewShareDialog creates the dialog renderer. Nothing is shown until Show.
func NewShareDialog(window fyne.Window, modal *share.Modal, host HostContext, localization *Localization, mobile *MobileUI) *ShareDialog {
	return &ShareDialog{
		modal:        modal,
		host:         host,
		window:       window,
		localization: localization,
		mobile:       mobile,
		logger:       logging.With("share-dialog"),
		resetTimers:  make(map[string]*time.Timer),
	}
}

// Show builds the dialog for the modal's current URL and displays it. The
// modal must already be open.
func (d *ShareDialog) Show() {
	if !d.modal.IsOpen() {
		return
	}
	previous := d.dialog
	d.stopResetTimers()

	texts := d.modal.Strings()
	content := d.buildContent()
	dlg := dialog.NewCustom(texts.Title, d.localization.GetText(KeyClose), content, d.window)
	dlg.SetOnClosed(func() {
		// a replaced dialog must not close the modal it no longer shows
		if d.dialog != dlg {
			return
		}
		d.dialog = nil
		d.onClosed()
	})
	dlg.Resize(fyne.NewSize(ShareDialogWidth, ShareDialogHeight))
	d.dialog = dlg

	if previous != nil {
		previous.Hide()
	}
	d.Refresh()
	dlg.Show()
}

// Hide closes the dialog and the modal
func (d *ShareDialog) Hide() {
	if d.dialog != nil {
		d.dialog.Hide()
	}
}

func (d *ShareDialog) onClosed() {
	d.modal.Close()
	d.stopResetTimers()
}

func (d *ShareDialog) stopResetTimers() {
	for key, timer := range d.resetTimers {
		timer.Stop()
		delete(d.resetTimers, key)
	}
}

// buildContent creates the widget set for the current presentation
func (d *ShareDialog) buildContent() fyne.CanvasObject {
	c := d.window.Canvas()
	texts := d.modal.Strings()

	d.urlEntry = widget.NewEntry()
	d.urlEntry.OnChanged = func(text string) {
		// read-only: user edits are reverted
		if text != d.shownURL {
			d.urlEntry.SetText(d.shownURL)
		}
	}

	var primary fyne.CanvasObject
	if d.modal.Presentation().IsWeb() {
		primary = d.buildDownloads(c)
	} else {
		primary = d.buildCopy(c)
	}

	d.linkToggle = newSegmentedToggle(c, texts.SourceOnly, texts.FullLink, func(index int) {
		d.modal.SetCreateWebViewerURL(index == 1)
		d.Refresh()
	})

	d.rangeToggle = newSegmentedToggle(c, texts.EntireRecording, texts.TrimToSelection, func(index int) {
		if index == 0 {
			d.modal.SelectEntireRecording()
		} else {
			d.modal.SelectTrimToSelection(d.host.ShareContext().TimeControl)
		}
		d.Refresh()
	})
	d.rangeRow = settingsRow(texts.TrimRange, d.rangeToggle)

	d.cursorToggle = newSegmentedToggle(c,
		share.Option{Label: share.TextAtTheStart},
		share.Option{Label: share.TextCurrent},
		func(index int) {
			if index == 0 {
				d.modal.SelectTimeAtStart()
			} else {
				d.modal.SelectCurrentTime(d.host.ShareContext().TimeControl)
			}
			d.Refresh()
		})
	d.cursorRow = settingsRow(share.TextTimeCursor, d.cursorToggle)

	settings := container.NewVBox(
		settingsRow(texts.LinkFormat, d.linkToggle),
		d.rangeRow,
		d.cursorRow,
	)

	return container.NewVBox(
		d.urlEntry,
		primary,
		widget.NewSeparator(),
		settings,
	)
}

func settingsRow(label string, toggle *segmentedToggle) *fyne.Container {
	return container.NewBorder(nil, nil, widget.NewLabel(label), nil, toggle.Object())
}

func (d *ShareDialog) buildCopy(c fyne.Canvas) fyne.CanvasObject {
	d.copyBtn = newHoverButton(c, share.TextCopyLink, d.onCopy)
	d.copyBtn.Importance = widget.HighImportance
	d.copyBtn.onHover = func(hovered bool) {
		d.modal.SetCopyHovered(hovered)
		d.Refresh()
	}

	d.qr = newQRView()
	return container.NewBorder(nil, nil, nil, container.NewCenter(d.qr.image), container.NewVBox(d.copyBtn))
}

func (d *ShareDialog) buildDownloads(c fyne.Canvas) fyne.CanvasObject {
	d.recordingBtn = d.newDownloadButton(c, share.FeedbackKeyRecording, share.TextDownloadRecording, func() {
		d.modal.DownloadRecording()
	})
	d.recordingBtn.Importance = widget.HighImportance

	box := container.NewVBox(d.recordingBtn)

	d.companions = nil
	files := d.modal.AdditionalFiles()
	if len(files) == 0 {
		return box
	}

	box.Add(widget.NewLabel(share.TextAnnotations))
	for _, f := range files {
		file := f
		row := &companionRow{file: file}
		row.check = widget.NewCheck("", func(checked bool) {
			if d.syncing {
				return
			}
			d.modal.SetFileSelected(file.Name, checked)
			d.Refresh()
		})
		row.button = d.newDownloadButton(c, file.FeedbackKey(), file.Label, func() {
			d.modal.DownloadFile(file)
		})
		row.button.SetTooltip(file.Description)
		d.companions = append(d.companions, row)
		box.Add(container.NewBorder(nil, nil, row.check, nil, row.button))
	}

	d.selectedBtn = d.newDownloadButton(c, share.FeedbackKeySelected, share.TextDownloadSelected, func() {
		d.modal.DownloadSelected()
	})
	box.Add(d.selectedBtn)
	return box
}

// newDownloadButton wires a button to one busy flag of the modal
func (d *ShareDialog) newDownloadButton(c fyne.Canvas, key, label string, start func()) *hoverButton {
	b := newHoverButton(c, label, nil)
	b.OnTapped = func() {
		start()
		if d.modal.IsDownloading(key) {
			d.scheduleReset(key)
		}
		d.Refresh()
	}
	b.onHover = func(hovered bool) {
		d.modal.SetDownloadHovered(key, hovered)
		d.Refresh()
	}
	return b
}

func (d *ShareDialog) onCopy() {
	d.modal.CopyLink(d.host.WebViewerURL())
	d.scheduleReset(feedbackKeyCopy)
	d.Refresh()
}

// scheduleReset clears a feedback flag after a delay on devices that never
// report hover loss
func (d *ShareDialog) scheduleReset(key string) {
	if d.mobile == nil || d.mobile.HasHover() {
		return
	}
	if timer, ok := d.resetTimers[key]; ok {
		timer.Stop()
	}
	d.resetTimers[key] = time.AfterFunc(FeedbackResetDelay, func() {
		fyne.Do(func() { d.resetFeedback(key) })
	})
}

// resetFeedback clears one feedback flag when its timer fires
func (d *ShareDialog) resetFeedback(key string) {
	if timer, ok := d.resetTimers[key]; ok {
		timer.Stop()
		delete(d.resetTimers, key)
	}
	if key == feedbackKeyCopy {
		d.modal.SetCopyHovered(false)
	} else {
		d.modal.ClearDownloadFeedback(key)
	}
	d.Refresh()
}

// Refresh is one frame of the dialog: it follows the time panel and
// redraws every widget from the modal state
func (d *ShareDialog) Refresh() {
	if !d.modal.IsOpen() || d.urlEntry == nil {
		return
	}
	d.syncing = true
	defer func() { d.syncing = false }()

	ctx := d.host.ShareContext()
	d.modal.SyncWithTimeControl(ctx.TimeControl)

	texts := d.modal.Strings()
	link := d.modal.CurrentURLString(d.host.WebViewerURL())
	shown := link
	if shown == "" {
		shown = texts.URLHint
	}
	if shown != d.shownURL {
		d.shownURL = shown
		d.urlEntry.SetText(shown)
	}

	if d.copyBtn != nil {
		label := share.TextCopyLink
		if d.modal.ShowCopiedFeedback() {
			label = share.TextCopied
		}
		setButtonText(&d.copyBtn.Button, label)
		if err := d.qr.SetContent(link); err != nil {
			d.logger.Debug("qr code hidden", "err", err)
		}
	}

	if d.recordingBtn != nil {
		setButtonText(&d.recordingBtn.Button, d.modal.DownloadLabel(share.FeedbackKeyRecording, share.TextDownloadRecording, ""))
	}
	for _, row := range d.companions {
		row.check.SetChecked(d.modal.IsFileSelected(row.file.Name))
		setButtonText(&row.button.Button, d.modal.DownloadLabel(row.file.FeedbackKey(), row.file.Label, row.file.Name))
	}
	if d.selectedBtn != nil {
		setButtonText(&d.selectedBtn.Button, d.modal.DownloadLabel(share.FeedbackKeySelected, share.TextDownloadSelected, share.TextDownloadSelected))
	}

	if d.modal.CreateWebViewerURL() {
		d.linkToggle.SetSelected(1)
	} else {
		d.linkToggle.SetSelected(0)
	}

	if state, ok := d.modal.TimeRangeState(ctx.TimeControl); ok {
		d.rangeRow.Show()
		if state.Entire {
			d.rangeToggle.SetSelected(0)
		} else {
			d.rangeToggle.SetSelected(1)
		}
		d.rangeToggle.SetAvailable(1, state.TrimAvailable, share.TextNoTimeRange)
	} else {
		d.rangeRow.Hide()
	}

	if state, ok := d.modal.TimeCursorState(ctx.TimeControl, ctx.TimestampFormat); ok {
		d.cursorRow.Show()
		if state.AtStart {
			d.cursorToggle.SetSelected(0)
		} else {
			d.cursorToggle.SetSelected(1)
		}
		current := share.TextCurrent
		if state.CurrentAvailable {
			current += MiddleDotSeparator + state.CurrentTime
		}
		d.cursorToggle.SetLabel(1, current)
		d.cursorToggle.SetAvailable(1, state.CurrentAvailable, share.TextNoTime)
	} else {
		d.cursorRow.Hide()
	}
}

func setButtonText(b *widget.Button, text string) {
	if b.Text != text {
		b.SetText(text)
	}
}
