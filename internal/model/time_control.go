package model

// TimeControl holds the time panel state of one recording: the active
// timeline, an optional loop selection and an optional time cursor.
type TimeControl struct {
	timeline Timeline
	loop     *TimeRangeF
	cursor   *TimeReal
}

// NewTimeControl creates a time control on the given timeline with no
// selection and no cursor
func NewTimeControl(timeline Timeline) *TimeControl {
	return &TimeControl{timeline: timeline}
}

// Timeline returns the active timeline
func (tc *TimeControl) Timeline() Timeline {
	return tc.timeline
}

// SetTimeline switches timelines. Selection and cursor belong to the old
// timeline and are dropped.
func (tc *TimeControl) SetTimeline(timeline Timeline) {
	if tc.timeline == timeline {
		return
	}
	tc.timeline = timeline
	tc.loop = nil
	tc.cursor = nil
}

// LoopSelection returns the current loop selection, if any
func (tc *TimeControl) LoopSelection() (TimeRangeF, bool) {
	if tc.loop == nil || tc.loop.IsEmpty() {
		return TimeRangeF{}, false
	}
	return *tc.loop, true
}

// SetLoopSelection sets the loop selection, normalizing the bounds
func (tc *TimeControl) SetLoopSelection(r TimeRangeF) {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	tc.loop = &r
}

// ClearLoopSelection removes the loop selection
func (tc *TimeControl) ClearLoopSelection() {
	tc.loop = nil
}

// Time returns the time cursor position, if any
func (tc *TimeControl) Time() (TimeReal, bool) {
	if tc.cursor == nil {
		return 0, false
	}
	return *tc.cursor, true
}

// SetTime moves the time cursor
func (tc *TimeControl) SetTime(t TimeReal) {
	tc.cursor = &t
}

// ClearTime removes the time cursor
func (tc *TimeControl) ClearTime() {
	tc.cursor = nil
}

// TimeCell returns the time cursor as a typed cell on the active timeline
func (tc *TimeControl) TimeCell() (TimeCell, bool) {
	t, ok := tc.Time()
	if !ok {
		return TimeCell{}, false
	}
	return TimeCell{Type: tc.timeline.Type, Value: t.Floor()}, true
}

// CurrentTimeSelection returns the loop selection widened to whole time
// units (start floored, end ceiled) on the active timeline
func (tc *TimeControl) CurrentTimeSelection() (TimeSelection, bool) {
	loop, ok := tc.LoopSelection()
	if !ok {
		return TimeSelection{}, false
	}
	return TimeSelection{Timeline: tc.timeline, Range: loop.Widened()}, true
}

// CurrentTimePoint returns the time cursor as a point on the active timeline
func (tc *TimeControl) CurrentTimePoint() (TimelinePoint, bool) {
	cell, ok := tc.TimeCell()
	if !ok {
		return TimelinePoint{}, false
	}
	return TimelinePoint{Timeline: tc.timeline.Name, Cell: cell}, true
}
