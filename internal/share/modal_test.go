package share

import (
	"errors"
	"net/url"
	"testing"

	"github.com/ytget/rec-viewer/internal/model"
)

type downloadCall struct {
	url  string
	name string
}

type fakeDownloader struct {
	calls []downloadCall
}

func (f *fakeDownloader) Download(fileURL, fileName string) {
	f.calls = append(f.calls, downloadCall{url: fileURL, name: fileName})
}

type fakeClipboard struct {
	content string
}

func (f *fakeClipboard) SetContent(content string) {
	f.content = content
}

func httpContext(address string) Context {
	hub := model.NewStoreHub()
	_ = hub.Add(&model.Recording{
		ID:     "rec",
		Source: model.DataSource{Kind: model.SourceHTTP, URL: address},
	})
	return Context{
		Store:       hub,
		DisplayMode: model.LocalRecordingsMode(),
	}
}

func partitionContext(tc *model.TimeControl) Context {
	hub := model.NewStoreHub()
	_ = hub.Add(&model.Recording{
		ID: "rec",
		Source: model.DataSource{
			Kind:        model.SourceRedapPartition,
			Origin:      "rec+http://localhost:9876",
			DatasetID:   "ds",
			PartitionID: "p1",
		},
	})
	return Context{
		Store:       hub,
		DisplayMode: model.LocalRecordingsMode(),
		TimeControl: tc,
	}
}

func TestModal_OpenDerivesCompanionFiles(t *testing.T) {
	m := NewModal(PresentationWeb, &fakeDownloader{}, &fakeClipboard{})

	if m.IsOpen() || m.URL() != nil {
		t.Fatal("New modal should be closed and have no url")
	}

	if err := m.Open(httpContext("https://host/rec.rrd")); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !m.IsOpen() {
		t.Error("Modal should be open")
	}
	if m.CurrentURLString(nil) == "" {
		t.Error("Open modal should render a non-empty url")
	}

	expected := []string{
		"https://host/rec_annotations.mp4",
		"https://host/rec_coordinates.csv",
		"https://host/rec_actions.json",
	}
	files := m.AdditionalFiles()
	if len(files) != len(expected) {
		t.Fatalf("Expected %d companion files, got %d", len(expected), len(files))
	}
	for i, f := range files {
		if f.URL != expected[i] {
			t.Errorf("File %d: expected url %s, got %s", i, expected[i], f.URL)
		}
		if !m.IsFileSelected(f.Name) {
			t.Errorf("File %s should be selected by default", f.Name)
		}
	}
}

func TestModal_OpenFailure(t *testing.T) {
	m := NewModal(PresentationNative, nil, nil)

	ctx := Context{Store: model.NewStoreHub(), DisplayMode: model.SettingsMode()}
	err := m.Open(ctx)

	var derivationErr *URLDerivationError
	if !errors.As(err, &derivationErr) {
		t.Fatalf("Expected URLDerivationError, got %v", err)
	}
	if !errors.Is(err, model.ErrUnsupportedDisplay) {
		t.Errorf("Expected wrapped ErrUnsupportedDisplay, got %v", err)
	}
	if m.IsOpen() || m.URL() != nil {
		t.Error("Failed open must leave the modal closed without url")
	}
}

func TestModal_OpenOnExamplesFails(t *testing.T) {
	m := NewModal(PresentationNative, nil, nil)

	err := m.Open(Context{Store: model.NewStoreHub(), DisplayMode: model.RedapServerMode(model.ExamplesOrigin)})

	var derivationErr *URLDerivationError
	if !errors.As(err, &derivationErr) {
		t.Fatalf("Expected URLDerivationError, got %v", err)
	}
	if !errors.Is(err, ErrExamplesSource) {
		t.Errorf("Expected wrapped ErrExamplesSource, got %v", err)
	}
	if m.IsOpen() || m.URL() != nil {
		t.Error("Examples must leave the modal closed without url")
	}
}

func TestModal_TriggerState(t *testing.T) {
	tests := []struct {
		name         string
		presentation Presentation
		ctx          Context
		enabled      bool
		tooltip      string
	}{
		{
			name:         "shareable recording",
			presentation: PresentationNative,
			ctx:          httpContext("https://host/rec.rrd"),
			enabled:      true,
		},
		{
			name:         "settings screen native",
			presentation: PresentationNative,
			ctx:          Context{Store: model.NewStoreHub(), DisplayMode: model.SettingsMode()},
			tooltip:      "Cannot create share URL: the current screen cannot be shared: Settings",
		},
		{
			name:         "no recording web",
			presentation: PresentationWeb,
			ctx:          Context{Store: model.NewStoreHub(), DisplayMode: model.LocalRecordingsMode()},
			tooltip:      "Cannot create export URL: no active recording",
		},
		{
			name:         "examples",
			presentation: PresentationNative,
			ctx:          Context{Store: model.NewStoreHub(), DisplayMode: model.RedapServerMode(model.ExamplesOrigin)},
			tooltip:      "Built-in examples cannot be shared.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := NewModal(test.presentation, nil, nil)
			state := m.TriggerState(test.ctx)
			if state.Enabled != test.enabled {
				t.Errorf("Enabled = %v, expected %v", state.Enabled, test.enabled)
			}
			if state.Tooltip != test.tooltip {
				t.Errorf("Tooltip = %q, expected %q", state.Tooltip, test.tooltip)
			}
			if !state.Enabled && state.Tooltip == "" {
				t.Error("Disabled trigger must explain why")
			}

			opened := m.ActivateTrigger(test.ctx)
			if opened != test.enabled {
				t.Errorf("ActivateTrigger() = %v, expected %v", opened, test.enabled)
			}
		})
	}
}

func TestModal_WebViewerToggle(t *testing.T) {
	m := NewModal(PresentationNative, nil, nil)
	m.OpenWithURL(model.NewRrdHTTPURL("https://host/rec.rrd"))

	viewer, _ := url.Parse("https://app.example.com/")

	m.SetCreateWebViewerURL(false)
	plain := m.CurrentURLString(viewer)
	m.SetCreateWebViewerURL(true)
	full := m.CurrentURLString(viewer)
	if plain == full {
		t.Errorf("Toggling the web viewer prefix should change the url when a prefix is given: %q", full)
	}

	withoutPrefix := m.CurrentURLString(nil)
	m.SetCreateWebViewerURL(false)
	if m.CurrentURLString(nil) != withoutPrefix {
		t.Error("Toggling without a prefix must not change the url")
	}
}

func TestModal_DefaultLinkFormat(t *testing.T) {
	if NewModal(PresentationNative, nil, nil).CreateWebViewerURL() {
		t.Error("Native dialog should default to source-only links")
	}
	if !NewModal(PresentationWeb, nil, nil).CreateWebViewerURL() {
		t.Error("Web dialog should default to full links")
	}
}

func TestModal_DownloadWhileBusyIsNoop(t *testing.T) {
	downloader := &fakeDownloader{}
	m := NewModal(PresentationWeb, downloader, nil)
	_ = m.Open(httpContext("https://host/rec.rrd"))

	file := m.AdditionalFiles()[1]
	if !m.DownloadFile(file) {
		t.Fatal("First click should start the download")
	}
	if !m.IsDownloading(file.FeedbackKey()) {
		t.Error("Button should be busy after the click")
	}
	if m.DownloadFile(file) {
		t.Error("Click while busy must be ignored")
	}
	if len(downloader.calls) != 1 {
		t.Fatalf("Expected 1 download, got %d", len(downloader.calls))
	}
	if downloader.calls[0].url != "https://host/rec_coordinates.csv" || downloader.calls[0].name != "coordinates.csv" {
		t.Errorf("Unexpected download: %+v", downloader.calls[0])
	}
	if got := m.DownloadLabel(file.FeedbackKey(), file.Label, file.Name); got != "Downloading coordinates.csv..." {
		t.Errorf("Busy label = %q", got)
	}

	m.SetDownloadHovered(file.FeedbackKey(), true)
	if !m.IsDownloading(file.FeedbackKey()) {
		t.Error("Busy flag should stay while hovered")
	}
	m.SetDownloadHovered(file.FeedbackKey(), false)
	if m.IsDownloading(file.FeedbackKey()) {
		t.Error("Busy flag should clear once the pointer leaves")
	}

	if !m.DownloadFile(file) {
		t.Error("Download should be possible again after the flag cleared")
	}
}

func TestModal_DownloadRecording(t *testing.T) {
	downloader := &fakeDownloader{}
	m := NewModal(PresentationWeb, downloader, nil)

	if m.DownloadRecording() {
		t.Error("Nothing to download before the modal was opened")
	}

	_ = m.Open(httpContext("https://host/data/rec.rrd?token=abc"))
	if !m.DownloadRecording() {
		t.Fatal("DownloadRecording() should start a download")
	}
	if m.DownloadLabel(FeedbackKeyRecording, TextDownloadRecording, "") != TextDownloadingRRD {
		t.Error("Recording button should show the busy label")
	}
	call := downloader.calls[0]
	if call.url != "https://host/data/rec.rrd" || call.name != "rec.rrd" {
		t.Errorf("Unexpected download: %+v", call)
	}
}

func TestModal_DownloadSelected(t *testing.T) {
	downloader := &fakeDownloader{}
	m := NewModal(PresentationWeb, downloader, nil)
	_ = m.Open(httpContext("https://host/rec.rrd"))

	m.SetFileSelected("coordinates.csv", false)
	m.SetFileSelected("unknown.bin", true)

	if n := m.DownloadSelected(); n != 2 {
		t.Fatalf("Expected 2 selected downloads, got %d", n)
	}
	if n := m.DownloadSelected(); n != 0 {
		t.Errorf("Busy selected button must ignore clicks, got %d", n)
	}
	if m.IsFileSelected("unknown.bin") {
		t.Error("Unknown files cannot be selected")
	}
	for _, call := range downloader.calls {
		if call.name == "coordinates.csv" {
			t.Error("Deselected file was downloaded")
		}
	}
}

func TestModal_CopyLink(t *testing.T) {
	clipboard := &fakeClipboard{}
	m := NewModal(PresentationNative, nil, clipboard)
	_ = m.Open(httpContext("https://host/rec.rrd"))

	m.CopyLink(nil)
	if clipboard.content != "https://host/rec.rrd" {
		t.Errorf("Clipboard = %q", clipboard.content)
	}
	if !m.ShowCopiedFeedback() {
		t.Error("Copied indicator should be set after copying")
	}

	m.SetCopyHovered(true)
	if !m.ShowCopiedFeedback() {
		t.Error("Copied indicator should stay while hovered")
	}
	m.SetCopyHovered(false)
	if m.ShowCopiedFeedback() {
		t.Error("Copied indicator should clear when not hovered")
	}
}

func TestModal_ReopenResetsFeedback(t *testing.T) {
	m := NewModal(PresentationWeb, &fakeDownloader{}, &fakeClipboard{})
	_ = m.Open(httpContext("https://host/rec.rrd"))
	m.DownloadRecording()
	m.CopyLink(nil)

	_ = m.Open(httpContext("https://host/other.rrd"))
	if m.IsDownloading(FeedbackKeyRecording) || m.ShowCopiedFeedback() {
		t.Error("Reopening should reset transient feedback")
	}
	if m.AdditionalFiles()[0].URL != "https://host/other_annotations.mp4" {
		t.Error("Companion files should follow the new url")
	}
}

func TestModal_SameTypeFilesHaveOwnButtons(t *testing.T) {
	downloader := &fakeDownloader{}
	m := NewModal(PresentationWeb, downloader, nil)
	_ = m.Open(httpContext("https://host/rec.rrd"))

	a := model.DownloadableFile{Name: "a.json", URL: "https://host/a.json", FileType: "json", Label: "A"}
	b := model.DownloadableFile{Name: "b.json", URL: "https://host/b.json", FileType: "json", Label: "B"}
	m.SetAdditionalFiles([]model.DownloadableFile{a, b})

	if a.FeedbackKey() == b.FeedbackKey() {
		t.Fatalf("Files share the key %q", a.FeedbackKey())
	}
	if !m.DownloadFile(a) || !m.DownloadFile(b) {
		t.Fatal("Each file should start its own download")
	}
	if len(downloader.calls) != 2 {
		t.Errorf("Expected 2 downloads, got %d", len(downloader.calls))
	}

	m.SetDownloadHovered(a.FeedbackKey(), false)
	if m.IsDownloading(a.FeedbackKey()) || !m.IsDownloading(b.FeedbackKey()) {
		t.Error("Clearing one button must not touch the other")
	}
}
