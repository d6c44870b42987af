package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/rec-viewer/internal/model"
)

// ErrNoRecordingID is returned for a startup recording without an id
var ErrNoRecordingID = errors.New("recording without id")

// Startup describes what the viewer loads when it starts
type Startup struct {
	// Presentation overrides the stored presentation when not empty
	Presentation string `yaml:"presentation,omitempty"`

	// WebViewerURL overrides the stored web viewer address when not empty
	WebViewerURL string `yaml:"web_viewer_url,omitempty"`

	// Active is the ID of the recording shown first
	Active string `yaml:"active,omitempty"`

	DisplayMode DisplayModeConfig `yaml:"display_mode,omitempty"`
	Recordings  []RecordingSource `yaml:"recordings"`
}

// DisplayModeConfig is the initial screen
type DisplayModeConfig struct {
	Kind    string `yaml:"kind,omitempty"`
	Origin  string `yaml:"origin,omitempty"`
	EntryID string `yaml:"entry_id,omitempty"`
}

// RecordingSource is one recording to load
type RecordingSource struct {
	ID            string         `yaml:"id"`
	ApplicationID string         `yaml:"application_id,omitempty"`
	Source        SourceConfig   `yaml:"source"`
	Timeline      TimelineConfig `yaml:"timeline,omitempty"`

	// Loop is the initial loop selection as [min, max]
	Loop []float64 `yaml:"loop,omitempty,flow"`

	// Time is the initial time cursor
	Time *float64 `yaml:"time,omitempty"`
}

// SourceConfig locates the data of a recording
type SourceConfig struct {
	Kind        string `yaml:"kind"`
	URL         string `yaml:"url,omitempty"`
	Origin      string `yaml:"origin,omitempty"`
	DatasetID   string `yaml:"dataset_id,omitempty"`
	PartitionID string `yaml:"partition_id,omitempty"`
	Path        string `yaml:"path,omitempty"`
}

// TimelineConfig is the active timeline of a recording
type TimelineConfig struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type,omitempty"`
}

// Workspace is the application context built from a Startup
type Workspace struct {
	Store        *model.StoreHub
	TimeControls map[string]*model.TimeControl
	DisplayMode  model.DisplayMode
}

// DefaultTimelineName is used when a recording names no timeline
const DefaultTimelineName = "log_tick"

var sourceKinds = map[string]model.DataSourceKind{
	"http":      model.SourceHTTP,
	"partition": model.SourceRedapPartition,
	"file":      model.SourceFile,
	"stdin":     model.SourceStdin,
	"sdk":       model.SourceSDK,
}

var displayKinds = map[string]model.DisplayModeKind{
	"":            model.DisplayLocalRecordings,
	"recordings":  model.DisplayLocalRecordings,
	"table":       model.DisplayLocalTable,
	"dataset":     model.DisplayRedapEntry,
	"server":      model.DisplayRedapServer,
	"settings":    model.DisplaySettings,
	"chunk_store": model.DisplayChunkStoreBrowser,
}

// LoadStartup reads a YAML startup file
func LoadStartup(filePath string) (*Startup, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read startup file: %w", err)
	}

	var st Startup
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse startup file %s: %w", filePath, err)
	}
	return &st, nil
}

// StartupForURL builds a startup with a single recording read from an
// http(s) URL or a local path
func StartupForURL(arg string) *Startup {
	src := RecordingSource{}
	if u, err := url.Parse(arg); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		src.Source = SourceConfig{Kind: "http", URL: arg}
		src.ID = strings.TrimSuffix(path.Base(u.Path), ".rrd")
	} else {
		src.Source = SourceConfig{Kind: "file", Path: arg}
		src.ID = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	}
	if src.ID == "" || src.ID == "." || src.ID == "/" {
		src.ID = "recording"
	}
	return &Startup{Recordings: []RecordingSource{src}}
}

// ResolveStartup picks the startup from command line arguments: a YAML file,
// a recording URL or path, or nothing
func ResolveStartup(args []string) (*Startup, error) {
	if len(args) == 0 {
		return &Startup{}, nil
	}
	arg := args[0]
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".yaml", ".yml":
		return LoadStartup(arg)
	default:
		return StartupForURL(arg), nil
	}
}

// Build creates the store hub, time controls and initial screen
func (st *Startup) Build() (*Workspace, error) {
	ws := &Workspace{
		Store:        model.NewStoreHub(),
		TimeControls: make(map[string]*model.TimeControl),
	}

	for i, rs := range st.Recordings {
		if rs.ID == "" {
			return nil, fmt.Errorf("recording %d: %w", i, ErrNoRecordingID)
		}
		source, err := rs.Source.dataSource()
		if err != nil {
			return nil, fmt.Errorf("recording %s: %w", rs.ID, err)
		}
		tc, err := rs.timeControl()
		if err != nil {
			return nil, fmt.Errorf("recording %s: %w", rs.ID, err)
		}
		rec := &model.Recording{ID: rs.ID, ApplicationID: rs.ApplicationID, Source: source}
		if err := ws.Store.Add(rec); err != nil {
			return nil, err
		}
		ws.TimeControls[rs.ID] = tc
	}

	if st.Active != "" {
		if err := ws.Store.SetActive(st.Active); err != nil {
			return nil, err
		}
	}

	kind, ok := displayKinds[st.DisplayMode.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown display mode: %q", st.DisplayMode.Kind)
	}
	ws.DisplayMode = model.DisplayMode{Kind: kind, Origin: st.DisplayMode.Origin, EntryID: st.DisplayMode.EntryID}

	return ws, nil
}

func (sc SourceConfig) dataSource() (model.DataSource, error) {
	kind, ok := sourceKinds[sc.Kind]
	if !ok {
		return model.DataSource{}, fmt.Errorf("unknown source kind: %q", sc.Kind)
	}
	ds := model.DataSource{
		Kind:        kind,
		URL:         sc.URL,
		Origin:      sc.Origin,
		DatasetID:   sc.DatasetID,
		PartitionID: sc.PartitionID,
		Path:        sc.Path,
	}
	switch kind {
	case model.SourceHTTP:
		if ds.URL == "" {
			return ds, fmt.Errorf("http source needs a url")
		}
	case model.SourceRedapPartition:
		if ds.Origin == "" || ds.DatasetID == "" || ds.PartitionID == "" {
			return ds, fmt.Errorf("partition source needs origin, dataset_id and partition_id")
		}
	}
	return ds, nil
}

func (rs RecordingSource) timeControl() (*model.TimeControl, error) {
	timeType, err := model.ParseTimeType(rs.Timeline.Type)
	if err != nil {
		return nil, err
	}
	name := rs.Timeline.Name
	if name == "" {
		name = DefaultTimelineName
	}
	tc := model.NewTimeControl(model.Timeline{Name: name, Type: timeType})

	switch len(rs.Loop) {
	case 0:
	case 2:
		tc.SetLoopSelection(model.TimeRangeF{Min: model.TimeReal(rs.Loop[0]), Max: model.TimeReal(rs.Loop[1])})
	default:
		return nil, fmt.Errorf("loop needs exactly two values, got %d", len(rs.Loop))
	}
	if rs.Time != nil {
		tc.SetTime(model.TimeReal(*rs.Time))
	}
	return tc, nil
}
