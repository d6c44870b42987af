package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/rec-viewer/internal/model"
)

const sampleStartup = `
presentation: web
web_viewer_url: http://localhost:9090/
active: walk
display_mode:
  kind: recordings
recordings:
  - id: arm
    application_id: robot
    source:
      kind: http
      url: https://host/data/arm.rrd
  - id: walk
    application_id: robot
    source:
      kind: partition
      origin: rec+http://localhost:51234
      dataset_id: ds1
      partition_id: p7
    timeline:
      name: frame
      type: sequence
    loop: [10.5, 20.2]
    time: 15
`

func writeStartup(t *testing.T, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "startup.yaml")
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write startup file: %v", err)
	}
	return filePath
}

func TestLoadStartup(t *testing.T) {
	st, err := LoadStartup(writeStartup(t, sampleStartup))
	if err != nil {
		t.Fatalf("LoadStartup failed: %v", err)
	}

	if st.Presentation != "web" || st.WebViewerURL != "http://localhost:9090/" {
		t.Errorf("Unexpected overrides: %+v", st)
	}
	if len(st.Recordings) != 2 {
		t.Fatalf("Expected 2 recordings, got %d", len(st.Recordings))
	}
	if st.Recordings[1].Time == nil || *st.Recordings[1].Time != 15 {
		t.Errorf("Expected time 15, got %v", st.Recordings[1].Time)
	}

	ws, err := st.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	active, ok := ws.Store.Active()
	if !ok || active.ID != "walk" {
		t.Fatalf("Expected active recording 'walk', got %+v", active)
	}
	if active.Source.Kind != model.SourceRedapPartition || active.Source.PartitionID != "p7" {
		t.Errorf("Unexpected source: %+v", active.Source)
	}

	tc := ws.TimeControls["walk"]
	sel, ok := tc.CurrentTimeSelection()
	if !ok || sel.Range.Min != 10 || sel.Range.Max != 21 {
		t.Errorf("Expected loop 10..21, got %+v", sel)
	}
	if _, ok := tc.Time(); !ok {
		t.Error("Expected a time cursor")
	}
	if ws.TimeControls["arm"].Timeline().Name != DefaultTimelineName {
		t.Errorf("Expected default timeline, got %s", ws.TimeControls["arm"].Timeline().Name)
	}
	if ws.DisplayMode != model.LocalRecordingsMode() {
		t.Errorf("Expected recordings mode, got %+v", ws.DisplayMode)
	}
}

func TestLoadStartup_Errors(t *testing.T) {
	if _, err := LoadStartup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadStartup(writeStartup(t, "recordings: [")); err == nil {
		t.Error("Expected error for malformed yaml")
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		startup Startup
	}{
		{"missing id", Startup{Recordings: []RecordingSource{{Source: SourceConfig{Kind: "file"}}}}},
		{"unknown kind", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "ftp"}}}}},
		{"http without url", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "http"}}}}},
		{"partition incomplete", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "partition", Origin: "o"}}}}},
		{"bad loop", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "file"}, Loop: []float64{1}}}}},
		{"bad time type", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "file"}, Timeline: TimelineConfig{Type: "wallclock"}}}}},
		{"duplicate", Startup{Recordings: []RecordingSource{{ID: "a", Source: SourceConfig{Kind: "file"}}, {ID: "a", Source: SourceConfig{Kind: "file"}}}}},
		{"unknown active", Startup{Active: "zzz"}},
		{"unknown display", Startup{DisplayMode: DisplayModeConfig{Kind: "gallery"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.startup.Build(); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	_, err := (&Startup{Recordings: []RecordingSource{{}}}).Build()
	if !errors.Is(err, ErrNoRecordingID) {
		t.Errorf("Expected ErrNoRecordingID, got %v", err)
	}
}

func TestStartupForURL(t *testing.T) {
	tests := []struct {
		arg  string
		id   string
		kind model.DataSourceKind
	}{
		{"https://host/data/walk.rrd?token=1", "walk", model.SourceHTTP},
		{"/home/user/arm.rrd", "arm", model.SourceFile},
		{"https://host/", "recording", model.SourceHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			ws, err := StartupForURL(tt.arg).Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			rec, ok := ws.Store.Active()
			if !ok {
				t.Fatal("Expected an active recording")
			}
			if rec.ID != tt.id || rec.Source.Kind != tt.kind {
				t.Errorf("Got id=%s kind=%s, expected id=%s kind=%s", rec.ID, rec.Source.Kind, tt.id, tt.kind)
			}
		})
	}
}

func TestResolveStartup(t *testing.T) {
	st, err := ResolveStartup(nil)
	if err != nil || len(st.Recordings) != 0 {
		t.Errorf("No arguments should give an empty startup, got %+v, %v", st, err)
	}

	st, err = ResolveStartup([]string{writeStartup(t, sampleStartup)})
	if err != nil || len(st.Recordings) != 2 {
		t.Errorf("YAML argument should load the file, got %+v, %v", st, err)
	}

	st, err = ResolveStartup([]string{"https://host/rec.rrd"})
	if err != nil || st.Recordings[0].Source.URL != "https://host/rec.rrd" {
		t.Errorf("URL argument should load one recording, got %+v, %v", st, err)
	}
}
