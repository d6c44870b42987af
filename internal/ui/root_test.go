package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/rec-viewer/internal/config"
	"github.com/ytget/rec-viewer/internal/download"
	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/share"
)

func newTestRoot(t *testing.T, opts Options) *RootUI {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	w := a.NewWindow("root")
	return NewRootUI(w, a, config.NewSettings(a), opts)
}

func partitionWorkspace(t *testing.T) *config.Workspace {
	t.Helper()
	ws, err := (&config.Startup{Recordings: []config.RecordingSource{{
		ID: "walk",
		Source: config.SourceConfig{
			Kind:        "partition",
			Origin:      "rec+http://localhost:51234",
			DatasetID:   "ds1",
			PartitionID: "p7",
		},
	}}}).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return ws
}

func TestRootUI_ShareContext(t *testing.T) {
	ui := newTestRoot(t, Options{Workspace: partitionWorkspace(t), Presentation: share.PresentationNative})

	ctx := ui.ShareContext()
	if ctx.TimeControl == nil {
		t.Fatal("Active recording should expose its time control")
	}
	if ctx.DisplayMode != model.LocalRecordingsMode() {
		t.Errorf("Unexpected display mode %+v", ctx.DisplayMode)
	}
	if !ui.shareButton.Enabled() {
		t.Error("A server partition can be shared")
	}

	ui.selectionEntry.SetText("/world/points, /camera")
	if got := ui.ShareContext().Selection.Items; len(got) != 2 || got[1] != "/camera" {
		t.Errorf("Unexpected selection %v", got)
	}
}

func TestRootUI_WithoutWorkspace(t *testing.T) {
	ui := newTestRoot(t, Options{Presentation: share.PresentationNative})

	if ui.ShareContext().TimeControl != nil {
		t.Error("No recording means no time control")
	}
	if ui.shareButton.Enabled() {
		t.Error("Nothing to share without a recording")
	}
	if !ui.timeSlider.Disabled() {
		t.Error("Time panel should be disabled without a recording")
	}
}

func TestRootUI_DisplayModeSwitch(t *testing.T) {
	ui := newTestRoot(t, Options{Workspace: partitionWorkspace(t), Presentation: share.PresentationNative})

	ui.modeSelect.SetSelected(model.DisplaySettings.String())
	if ui.displayMode != model.SettingsMode() {
		t.Fatalf("Expected settings mode, got %+v", ui.displayMode)
	}
	if ui.shareButton.Enabled() {
		t.Error("Settings screen cannot be shared")
	}

	ui.modeSelect.SetSelected("Examples")
	if !ui.displayMode.IsExamples() || ui.shareButton.Enabled() {
		t.Error("Examples cannot be shared")
	}

	ui.modeSelect.SetSelected(model.DisplayRedapServer.String() + MiddleDotSeparator + "rec+http://localhost:51234")
	if ui.displayMode != model.RedapServerMode("rec+http://localhost:51234") || !ui.shareButton.Enabled() {
		t.Errorf("Server catalog should be shareable, mode %+v", ui.displayMode)
	}
}

func TestRootUI_TimePanelDrivesDialog(t *testing.T) {
	ui := newTestRoot(t, Options{Workspace: partitionWorkspace(t), Presentation: share.PresentationNative})
	test.Tap(ui.shareButton.button)
	if !ui.modal.IsOpen() {
		t.Fatal("Share dialog should open")
	}

	trim := ui.shareDialog.rangeToggle.options[1]
	if !trim.Disabled() {
		t.Fatal("Trim needs a loop selection")
	}

	ui.loopTo.SetValue(30)
	if trim.Disabled() {
		t.Error("Moving the loop slider should enable trim")
	}
	if ui.loopValue.Text == DashPlaceholder {
		t.Error("Loop label should show the selection")
	}

	ui.timeSlider.SetValue(12)
	if ui.timeValue.Text != "#12" {
		t.Errorf("Time label = %q", ui.timeValue.Text)
	}
	if ui.shareDialog.cursorToggle.options[1].Disabled() {
		t.Error("Current time should be available once the cursor is set")
	}
}

func TestRootUI_TaskUpdates(t *testing.T) {
	svc := download.NewService(t.TempDir(), 1)
	ui := newTestRoot(t, Options{Presentation: share.PresentationWeb, Downloads: svc})

	if !ui.emptyList.Visible() {
		t.Error("Empty placeholder should show before any download")
	}

	ui.applyTaskUpdate(&model.DownloadTask{ID: "a", FileName: "rec.rrd", Status: model.TaskStatusDownloading, StartedAt: time.Now()})
	ui.applyTaskUpdate(&model.DownloadTask{ID: "a", FileName: "rec.rrd", Status: model.TaskStatusCompleted, OutputPath: "/tmp/rec.rrd"})
	if len(ui.tasks) != 1 || ui.tasks[0].Status != model.TaskStatusCompleted {
		t.Fatalf("Unexpected tasks %+v", ui.tasks)
	}
	if ui.emptyList.Visible() {
		t.Error("Placeholder should hide once a download exists")
	}

	ui.onRemoveTask("a")
	if len(ui.tasks) != 0 {
		t.Error("Removed task should leave the list")
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		text  string
		items []string
	}{
		{"", nil},
		{" , ", nil},
		{"/a", []string{"/a"}},
		{"/a, /b ,", []string{"/a", "/b"}},
	}

	for _, tt := range tests {
		got := parseSelection(tt.text).Items
		if len(got) != len(tt.items) {
			t.Errorf("parseSelection(%q) = %v, expected %v", tt.text, got, tt.items)
			continue
		}
		for i := range got {
			if got[i] != tt.items[i] {
				t.Errorf("parseSelection(%q) = %v, expected %v", tt.text, got, tt.items)
			}
		}
	}
}
