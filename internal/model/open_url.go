package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// OpenURLKind enumerates the kinds of views an OpenURL can reopen
type OpenURLKind int

const (
	// URLRrdHTTP is an RRD file served over HTTP
	URLRrdHTTP OpenURLKind = iota
	// URLDatasetPartition is one partition of a server dataset
	URLDatasetPartition
	// URLDatasetEntry is a server dataset entry page
	URLDatasetEntry
	// URLCatalog is the catalog page of a server
	URLCatalog
)

// URL query and fragment keys
const (
	QueryKeyURL         = "url"
	QueryKeyPartitionID = "partition_id"
	QueryKeyTimeRange   = "time_range"
	FragmentKeySelect   = "selection"
	FragmentKeyWhen     = "when"
)

// Errors returned when no URL can be derived from the current context
var (
	ErrNoActiveRecording  = errors.New("no active recording")
	ErrLocalSource        = errors.New("recording was loaded from a local source and has no shareable address")
	ErrUnsupportedDisplay = errors.New("the current screen cannot be shared")
	ErrEmptyAddress       = errors.New("url has no address")
)

// Fragment is the part of a URL that points inside a recording
type Fragment struct {
	// Selection is the selected item path, empty for none
	Selection string

	// When is the time cursor position, nil for "at the start"
	When *TimelinePoint
}

// IsEmpty reports whether the fragment carries nothing
func (f Fragment) IsEmpty() bool {
	return f.Selection == "" && f.When == nil
}

// String renders the fragment without the leading '#'
func (f Fragment) String() string {
	var parts []string
	if f.Selection != "" {
		parts = append(parts, FragmentKeySelect+"="+escapeFragmentValue(f.Selection))
	}
	if f.When != nil {
		parts = append(parts, FragmentKeyWhen+"="+escapeFragmentValue(f.When.String()))
	}
	return strings.Join(parts, "&")
}

// OpenURL describes a view that can be reopened from a link
type OpenURL struct {
	Kind OpenURLKind

	// Address is the RRD file URL for URLRrdHTTP, the server origin otherwise
	Address string

	DatasetID   string
	PartitionID string

	timeRange *TimeSelection
	fragment  Fragment
}

// NewRrdHTTPURL creates a URL for an RRD file served over HTTP
func NewRrdHTTPURL(address string) *OpenURL {
	return &OpenURL{Kind: URLRrdHTTP, Address: address}
}

// NewDatasetPartitionURL creates a URL for a server dataset partition
func NewDatasetPartitionURL(origin, datasetID, partitionID string) *OpenURL {
	return &OpenURL{
		Kind:        URLDatasetPartition,
		Address:     origin,
		DatasetID:   datasetID,
		PartitionID: partitionID,
	}
}

// NewDatasetEntryURL creates a URL for a server dataset entry page
func NewDatasetEntryURL(origin, datasetID string) *OpenURL {
	return &OpenURL{Kind: URLDatasetEntry, Address: origin, DatasetID: datasetID}
}

// NewCatalogURL creates a URL for a server catalog page
func NewCatalogURL(origin string) *OpenURL {
	return &OpenURL{Kind: URLCatalog, Address: origin}
}

// SupportsTimeRange reports whether the URL can carry a time range
func (u *OpenURL) SupportsTimeRange() bool {
	return u.Kind == URLDatasetPartition
}

// SupportsFragment reports whether the URL can carry a fragment
func (u *OpenURL) SupportsFragment() bool {
	return u.Kind == URLRrdHTTP || u.Kind == URLDatasetPartition
}

// TimeRange returns the stored time range, nil for the entire recording
func (u *OpenURL) TimeRange() *TimeSelection {
	return u.timeRange
}

// SetTimeRange stores a time range. Ignored when the URL has no time range.
func (u *OpenURL) SetTimeRange(ts *TimeSelection) {
	if !u.SupportsTimeRange() {
		return
	}
	if ts == nil {
		u.timeRange = nil
		return
	}
	copied := *ts
	u.timeRange = &copied
}

// Fragment returns the stored fragment
func (u *OpenURL) Fragment() Fragment {
	return u.fragment
}

// SetWhen stores the time cursor fragment. Ignored when the URL has no fragment.
func (u *OpenURL) SetWhen(p *TimelinePoint) {
	if !u.SupportsFragment() {
		return
	}
	if p == nil {
		u.fragment.When = nil
		return
	}
	copied := *p
	u.fragment.When = &copied
}

// SetSelection stores the selected item. Ignored when the URL has no fragment.
func (u *OpenURL) SetSelection(item string) {
	if !u.SupportsFragment() {
		return
	}
	u.fragment.Selection = item
}

// SharableURL renders the URL. With a web viewer base the result opens a
// new web viewer on this URL; without one it only works in a viewer that
// is already running.
func (u *OpenURL) SharableURL(webViewerBase *url.URL) (string, error) {
	raw, err := u.raw(true)
	if err != nil {
		return "", err
	}
	if webViewerBase == nil {
		return raw, nil
	}

	viewer := *webViewerBase
	query := viewer.Query()
	query.Set(QueryKeyURL, raw)
	viewer.RawQuery = query.Encode()
	viewer.Fragment = ""
	return viewer.String(), nil
}

// BaseURL renders the URL without query or fragment
func (u *OpenURL) BaseURL() (string, error) {
	return u.raw(false)
}

func (u *OpenURL) raw(full bool) (string, error) {
	if strings.TrimSpace(u.Address) == "" {
		return "", ErrEmptyAddress
	}

	var b strings.Builder
	switch u.Kind {
	case URLRrdHTTP:
		parsed, err := url.Parse(u.Address)
		if err != nil {
			return "", fmt.Errorf("invalid recording address: %w", err)
		}
		if !full {
			parsed.RawQuery = ""
		}
		parsed.Fragment = ""
		parsed.RawFragment = ""
		b.WriteString(parsed.String())
	case URLDatasetPartition:
		b.WriteString(strings.TrimSuffix(u.Address, "/"))
		b.WriteString("/dataset/")
		b.WriteString(url.PathEscape(u.DatasetID))
		if full {
			query := url.Values{}
			query.Set(QueryKeyPartitionID, u.PartitionID)
			b.WriteString("?")
			b.WriteString(query.Encode())
			if u.timeRange != nil {
				b.WriteString("&" + QueryKeyTimeRange + "=")
				b.WriteString(escapeFragmentValue(u.timeRange.String()))
			}
		}
	case URLDatasetEntry:
		b.WriteString(strings.TrimSuffix(u.Address, "/"))
		b.WriteString("/entry/")
		b.WriteString(url.PathEscape(u.DatasetID))
	case URLCatalog:
		b.WriteString(u.Address)
	default:
		return "", fmt.Errorf("unknown url kind: %d", u.Kind)
	}

	if full && u.SupportsFragment() && !u.fragment.IsEmpty() {
		b.WriteString("#")
		b.WriteString(u.fragment.String())
	}
	return b.String(), nil
}

// OpenURLFromContext derives the URL that reopens the current view. The
// time range, time cursor and selection are included when available.
func OpenURLFromContext(hub *StoreHub, mode DisplayMode, timeCtrl *TimeControl, selection Selection) (*OpenURL, error) {
	var u *OpenURL

	switch mode.Kind {
	case DisplayLocalRecordings:
		rec, ok := hub.Active()
		if !ok {
			return nil, ErrNoActiveRecording
		}
		switch rec.Source.Kind {
		case SourceHTTP:
			u = NewRrdHTTPURL(rec.Source.URL)
		case SourceRedapPartition:
			u = NewDatasetPartitionURL(rec.Source.Origin, rec.Source.DatasetID, rec.Source.PartitionID)
		default:
			return nil, fmt.Errorf("%w (%s)", ErrLocalSource, rec.Source.Kind)
		}
	case DisplayRedapEntry:
		u = NewDatasetEntryURL(mode.Origin, mode.EntryID)
	case DisplayRedapServer:
		u = NewCatalogURL(mode.Origin)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDisplay, mode.Kind)
	}

	if u.Address == "" {
		return nil, ErrEmptyAddress
	}

	if timeCtrl != nil {
		if ts, ok := timeCtrl.CurrentTimeSelection(); ok {
			u.SetTimeRange(&ts)
		}
		if p, ok := timeCtrl.CurrentTimePoint(); ok {
			u.SetWhen(&p)
		}
	}
	if item, ok := selection.First(); ok {
		u.SetSelection(item)
	}

	return u, nil
}

// escapeFragmentValue escapes a value for a query or fragment while keeping
// path separators and timeline markers readable
func escapeFragmentValue(v string) string {
	escaped := url.QueryEscape(v)
	replacer := strings.NewReplacer("%2F", "/", "%40", "@", "%3A", ":")
	return replacer.Replace(escaped)
}
