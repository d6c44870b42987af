package share

import (
	"github.com/ytget/rec-viewer/internal/model"
)

// TimeRangeState describes the "trim range" toggle
type TimeRangeState struct {
	// Entire is true when the link covers the whole recording
	Entire bool

	// TrimAvailable is false when there is no loop selection to trim to
	TrimAvailable bool
}

// TimeCursorState describes the "time cursor" toggle
type TimeCursorState struct {
	// AtStart is true when the link carries no time cursor
	AtStart bool

	// CurrentAvailable is false when there is no time cursor to share
	CurrentAvailable bool

	// CurrentTime is the formatted time cursor, empty when unavailable
	CurrentTime string
}

// TimeRangeState returns the trim toggle state. ok is false when the URL
// cannot carry a time range and the toggle must be hidden.
func (m *Modal) TimeRangeState(tc *model.TimeControl) (state TimeRangeState, ok bool) {
	if m.url == nil || !m.url.SupportsTimeRange() {
		return TimeRangeState{}, false
	}
	_, available := currentSelection(tc)
	return TimeRangeState{
		Entire:        m.url.TimeRange() == nil,
		TrimAvailable: available,
	}, true
}

// SelectEntireRecording clears the URL's time range
func (m *Modal) SelectEntireRecording() {
	if m.url == nil {
		return
	}
	m.url.SetTimeRange(nil)
}

// SelectTrimToSelection copies the loop selection into the URL, start
// floored and end ceiled. It reports false when there is no selection.
func (m *Modal) SelectTrimToSelection(tc *model.TimeControl) bool {
	if m.url == nil || !m.url.SupportsTimeRange() {
		return false
	}
	sel, ok := currentSelection(tc)
	if !ok {
		return false
	}
	m.url.SetTimeRange(&sel)
	return true
}

// TimeCursorState returns the time cursor toggle state. ok is false when
// the URL has no fragment and the toggle must be hidden.
func (m *Modal) TimeCursorState(tc *model.TimeControl, format model.TimestampFormat) (state TimeCursorState, ok bool) {
	if m.url == nil || !m.url.SupportsFragment() {
		return TimeCursorState{}, false
	}
	state.AtStart = m.url.Fragment().When == nil
	if point, available := currentTimePoint(tc); available {
		state.CurrentAvailable = true
		state.CurrentTime = point.Cell.Format(format)
	}
	return state, true
}

// SelectTimeAtStart clears the URL's time cursor
func (m *Modal) SelectTimeAtStart() {
	if m.url == nil {
		return
	}
	m.url.SetWhen(nil)
}

// SelectCurrentTime copies the timeline name and time cursor into the
// URL fragment. It reports false when there is no time cursor.
func (m *Modal) SelectCurrentTime(tc *model.TimeControl) bool {
	if m.url == nil || !m.url.SupportsFragment() {
		return false
	}
	point, ok := currentTimePoint(tc)
	if !ok {
		return false
	}
	m.url.SetWhen(&point)
	return true
}

// SyncWithTimeControl keeps a trimmed range and a shared time cursor in
// step with the time panel. A choice whose source disappeared falls back
// to "entire recording" or "at the start".
func (m *Modal) SyncWithTimeControl(tc *model.TimeControl) {
	if m.url == nil {
		return
	}
	if m.url.TimeRange() != nil {
		if sel, ok := currentSelection(tc); ok {
			m.url.SetTimeRange(&sel)
		} else {
			m.url.SetTimeRange(nil)
		}
	}
	if m.url.Fragment().When != nil {
		if point, ok := currentTimePoint(tc); ok {
			m.url.SetWhen(&point)
		} else {
			m.url.SetWhen(nil)
		}
	}
}

func currentSelection(tc *model.TimeControl) (model.TimeSelection, bool) {
	if tc == nil {
		return model.TimeSelection{}, false
	}
	return tc.CurrentTimeSelection()
}

func currentTimePoint(tc *model.TimeControl) (model.TimelinePoint, bool) {
	if tc == nil {
		return model.TimelinePoint{}, false
	}
	return tc.CurrentTimePoint()
}
