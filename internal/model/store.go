package model

import (
	"fmt"
	"sort"
)

// DataSourceKind describes where a recording was loaded from
type DataSourceKind int

const (
	SourceHTTP DataSourceKind = iota
	SourceRedapPartition
	SourceFile
	SourceStdin
	SourceSDK
)

// String returns a short name for the source kind
func (k DataSourceKind) String() string {
	switch k {
	case SourceHTTP:
		return "http"
	case SourceRedapPartition:
		return "partition"
	case SourceFile:
		return "file"
	case SourceStdin:
		return "stdin"
	case SourceSDK:
		return "sdk"
	default:
		return "unknown"
	}
}

// DataSource is the origin of a recording's data
type DataSource struct {
	Kind DataSourceKind

	// URL is the address of an RRD file served over HTTP
	URL string

	// Origin, DatasetID and PartitionID locate a server partition
	Origin      string
	DatasetID   string
	PartitionID string

	// Path is the local file the recording was read from
	Path string
}

// Recording is one loaded recording
type Recording struct {
	ID            string
	ApplicationID string
	Source        DataSource
}

// StoreHub owns the loaded recordings and tracks the active one
type StoreHub struct {
	recordings map[string]*Recording
	activeID   string
}

// NewStoreHub creates an empty hub
func NewStoreHub() *StoreHub {
	return &StoreHub{recordings: make(map[string]*Recording)}
}

// Add registers a recording. The first recording added becomes active.
func (h *StoreHub) Add(rec *Recording) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("recording must have an id")
	}
	if _, exists := h.recordings[rec.ID]; exists {
		return fmt.Errorf("recording already loaded: %s", rec.ID)
	}
	h.recordings[rec.ID] = rec
	if h.activeID == "" {
		h.activeID = rec.ID
	}
	return nil
}

// SetActive makes the recording with the given ID active
func (h *StoreHub) SetActive(id string) error {
	if _, exists := h.recordings[id]; !exists {
		return fmt.Errorf("recording not found: %s", id)
	}
	h.activeID = id
	return nil
}

// Active returns the active recording
func (h *StoreHub) Active() (*Recording, bool) {
	if h == nil || h.activeID == "" {
		return nil, false
	}
	rec, ok := h.recordings[h.activeID]
	return rec, ok
}

// Get returns a recording by ID
func (h *StoreHub) Get(id string) (*Recording, bool) {
	rec, ok := h.recordings[id]
	return rec, ok
}

// Recordings returns all recordings ordered by ID
func (h *StoreHub) Recordings() []*Recording {
	recs := make([]*Recording, 0, len(h.recordings))
	for _, rec := range h.recordings {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs
}

// Selection is the ordered set of selected item paths
type Selection struct {
	Items []string
}

// First returns the first selected item, if any
func (s Selection) First() (string, bool) {
	if len(s.Items) == 0 {
		return "", false
	}
	return s.Items[0], true
}
