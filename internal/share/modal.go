package share

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/charmbracelet/log"

	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/model"
)

// Downloader starts a file download and returns immediately. Completion
// is not reported back to the dialog.
type Downloader interface {
	Download(fileURL, fileName string)
}

// Clipboard receives copied text. fyne.Clipboard satisfies it.
type Clipboard interface {
	SetContent(content string)
}

// Feedback keys of buttons that are not tied to a companion file
const (
	FeedbackKeyRecording = "rrd"
	FeedbackKeySelected  = "selected"
)

// TriggerState describes how the button that opens the dialog is drawn
type TriggerState struct {
	Label   string
	Enabled bool

	// Tooltip explains why the button is disabled
	Tooltip string
}

// Modal is the state of the share dialog. It is owned by the UI goroutine
// and is not safe for concurrent use.
type Modal struct {
	presentation Presentation
	texts        Strings
	downloader   Downloader
	clipboard    Clipboard
	logger       *log.Logger

	open bool

	// url is nil until the dialog is opened for a context that has one
	url                *model.OpenURL
	createWebViewerURL bool

	// showCopiedFeedback is reset as soon as the copy button is not hovered
	showCopiedFeedback bool

	additionalFiles []model.DownloadableFile
	selectedFiles   map[string]bool

	// downloadFeedback holds the busy flag of each download button; entries
	// are reset to false, never removed
	downloadFeedback map[string]bool
}

// NewModal creates a closed dialog
func NewModal(presentation Presentation, downloader Downloader, clipboard Clipboard) *Modal {
	return &Modal{
		presentation:       presentation,
		texts:              presentation.Strings(),
		downloader:         downloader,
		clipboard:          clipboard,
		logger:             logging.With("share"),
		createWebViewerURL: presentation.IsWeb(),
		selectedFiles:      make(map[string]bool),
		downloadFeedback:   make(map[string]bool),
	}
}

// Presentation returns the flavour chosen at startup
func (m *Modal) Presentation() Presentation {
	return m.presentation
}

// Strings returns the texts of the dialog's flavour
func (m *Modal) Strings() Strings {
	return m.texts
}

// Open derives the URL for the current screen and opens the dialog
func (m *Modal) Open(ctx Context) error {
	u, err := CurrentURL(ctx)
	if err != nil {
		return err
	}
	m.OpenWithURL(u)
	return nil
}

// OpenWithURL opens the dialog on the given URL and derives the companion
// files from it
func (m *Modal) OpenWithURL(u *model.OpenURL) {
	m.url = u
	m.showCopiedFeedback = false
	for key := range m.downloadFeedback {
		m.downloadFeedback[key] = false
	}

	base, err := u.BaseURL()
	if err != nil {
		m.logger.Warn("cannot derive companion files", "err", err)
		m.SetAdditionalFiles(nil)
	} else {
		m.SetAdditionalFiles(CompanionFiles(base))
	}

	m.open = true
	m.logger.Debug("share dialog opened", "kind", u.Kind, "files", len(m.additionalFiles))
}

// Close hides the dialog. The URL is kept until the next Open.
func (m *Modal) Close() {
	m.open = false
}

// IsOpen reports whether the dialog should be drawn
func (m *Modal) IsOpen() bool {
	return m.open && m.url != nil
}

// URL returns the URL being shared, nil before the first successful open
func (m *Modal) URL() *model.OpenURL {
	return m.url
}

// TriggerState evaluates the context for the button that opens the dialog
func (m *Modal) TriggerState(ctx Context) TriggerState {
	state := TriggerState{Label: m.texts.Button}

	_, err := CurrentURL(ctx)
	switch {
	case errors.Is(err, ErrExamplesSource):
		state.Tooltip = m.texts.ExamplesLocked
	case err != nil:
		state.Tooltip = fmt.Sprintf(m.texts.CannotCreate, err)
	default:
		state.Enabled = true
	}
	return state
}

// ActivateTrigger handles a click on the trigger button. It reports
// whether the dialog was opened.
func (m *Modal) ActivateTrigger(ctx Context) bool {
	if !m.TriggerState(ctx).Enabled {
		return false
	}
	if err := m.Open(ctx); err != nil {
		m.logger.Warn("cannot open share dialog", "err", err)
		return false
	}
	return true
}

// CreateWebViewerURL reports whether links carry the web viewer prefix
func (m *Modal) CreateWebViewerURL() bool {
	return m.createWebViewerURL
}

// SetCreateWebViewerURL selects between "source only" and "full link"
func (m *Modal) SetCreateWebViewerURL(enabled bool) {
	m.createWebViewerURL = enabled
}

// CurrentURLString renders the URL with the current toggles. It is empty
// when the URL cannot be rendered.
func (m *Modal) CurrentURLString(webViewerBase *url.URL) string {
	if m.url == nil {
		return ""
	}
	if !m.createWebViewerURL {
		webViewerBase = nil
	}
	s, err := m.url.SharableURL(webViewerBase)
	if err != nil {
		return ""
	}
	return s
}

// SetAdditionalFiles replaces the companion files and selects all of them
func (m *Modal) SetAdditionalFiles(files []model.DownloadableFile) {
	m.additionalFiles = append([]model.DownloadableFile(nil), files...)
	m.selectedFiles = make(map[string]bool, len(files))
	for _, f := range m.additionalFiles {
		m.selectedFiles[f.Name] = true
	}
}

// AdditionalFiles returns the companion files
func (m *Modal) AdditionalFiles() []model.DownloadableFile {
	return append([]model.DownloadableFile(nil), m.additionalFiles...)
}

// IsFileSelected reports whether a companion file is part of "download selected"
func (m *Modal) IsFileSelected(name string) bool {
	return m.selectedFiles[name]
}

// SetFileSelected adds or removes a companion file from the selection
func (m *Modal) SetFileSelected(name string, selected bool) {
	for _, f := range m.additionalFiles {
		if f.Name == name {
			m.selectedFiles[name] = selected
			return
		}
	}
}

// IsDownloading returns the busy flag of a download button
func (m *Modal) IsDownloading(key string) bool {
	return m.downloadFeedback[key]
}

// StartDownload hands a file to the platform downloader and marks the
// button busy. A click on a busy button is ignored.
func (m *Modal) StartDownload(key, fileURL, fileName string) bool {
	if m.downloadFeedback[key] {
		return false
	}
	if m.downloader != nil {
		m.downloader.Download(fileURL, fileName)
	}
	m.downloadFeedback[key] = true
	m.logger.Info("download started", "file", fileName, "url", fileURL)
	return true
}

// SetDownloadHovered updates a busy button with its hover state. The busy
// flag is cleared once the pointer is no longer over the button.
func (m *Modal) SetDownloadHovered(key string, hovered bool) {
	if m.downloadFeedback[key] && !hovered {
		m.downloadFeedback[key] = false
	}
}

// ClearDownloadFeedback resets a busy flag regardless of hover
func (m *Modal) ClearDownloadFeedback(key string) {
	if _, ok := m.downloadFeedback[key]; ok {
		m.downloadFeedback[key] = false
	}
}

// DownloadLabel returns the text of a download button
func (m *Modal) DownloadLabel(key, idleLabel, fileName string) string {
	if !m.downloadFeedback[key] {
		return idleLabel
	}
	if key == FeedbackKeyRecording {
		return TextDownloadingRRD
	}
	return fmt.Sprintf(TextDownloadingFile, fileName)
}

// DownloadRecording downloads the recording itself
func (m *Modal) DownloadRecording() bool {
	if m.url == nil {
		return false
	}
	base, err := m.url.BaseURL()
	if err != nil {
		m.logger.Warn("cannot download recording", "err", err)
		return false
	}
	return m.StartDownload(FeedbackKeyRecording, base, recordingFileName(base))
}

// DownloadFile downloads one companion file
func (m *Modal) DownloadFile(f model.DownloadableFile) bool {
	return m.StartDownload(f.FeedbackKey(), f.URL, f.Name)
}

// DownloadSelected downloads every selected companion file. The button
// has its own busy flag; the per-file buttons are not touched.
func (m *Modal) DownloadSelected() int {
	if m.downloadFeedback[FeedbackKeySelected] {
		return 0
	}
	count := 0
	for _, f := range m.additionalFiles {
		if !m.selectedFiles[f.Name] {
			continue
		}
		if m.downloader != nil {
			m.downloader.Download(f.URL, f.Name)
		}
		count++
	}
	if count > 0 {
		m.downloadFeedback[FeedbackKeySelected] = true
		m.logger.Info("downloading selected files", "count", count)
	}
	return count
}

// CopyLink copies the current link and shows the "copied" feedback
func (m *Modal) CopyLink(webViewerBase *url.URL) {
	link := m.CurrentURLString(webViewerBase)
	if m.clipboard != nil {
		m.clipboard.SetContent(link)
	}
	m.showCopiedFeedback = true
}

// SetCopyHovered clears the "copied" feedback once the pointer leaves the
// copy button
func (m *Modal) SetCopyHovered(hovered bool) {
	if !hovered {
		m.showCopiedFeedback = false
	}
}

// ShowCopiedFeedback reports whether the copy button shows "copied"
func (m *Modal) ShowCopiedFeedback() bool {
	return m.showCopiedFeedback
}
