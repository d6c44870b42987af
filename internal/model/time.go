package model

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// TimeType describes how values on a timeline are interpreted
type TimeType int

const (
	// TimeTypeSequence is a plain integer counter (frame number, tick)
	TimeTypeSequence TimeType = iota
	// TimeTypeTimestamp is nanoseconds since the Unix epoch
	TimeTypeTimestamp
	// TimeTypeDuration is nanoseconds relative to an arbitrary origin
	TimeTypeDuration
)

// String returns the lowercase name of the time type
func (tt TimeType) String() string {
	switch tt {
	case TimeTypeSequence:
		return "sequence"
	case TimeTypeTimestamp:
		return "timestamp"
	case TimeTypeDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// ParseTimeType parses the lowercase name produced by String
func ParseTimeType(s string) (TimeType, error) {
	switch s {
	case "", "sequence":
		return TimeTypeSequence, nil
	case "timestamp":
		return TimeTypeTimestamp, nil
	case "duration":
		return TimeTypeDuration, nil
	default:
		return TimeTypeSequence, fmt.Errorf("unknown time type: %q", s)
	}
}

// TimestampFormat controls how timestamps are shown to the user
type TimestampFormat int

const (
	TimestampFormatUTC TimestampFormat = iota
	TimestampFormatLocal
	TimestampFormatUnixEpoch
)

// String returns the setting value of the format
func (f TimestampFormat) String() string {
	switch f {
	case TimestampFormatLocal:
		return "local"
	case TimestampFormatUnixEpoch:
		return "unix"
	default:
		return "utc"
	}
}

// ParseTimestampFormat parses the value produced by String
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch s {
	case "", "utc":
		return TimestampFormatUTC, nil
	case "local":
		return TimestampFormatLocal, nil
	case "unix":
		return TimestampFormatUnixEpoch, nil
	default:
		return TimestampFormatUTC, fmt.Errorf("unknown timestamp format: %q", s)
	}
}

// Timeline identifies one time axis of a recording
type Timeline struct {
	Name string
	Type TimeType
}

// NewSequenceTimeline creates a sequence timeline with the given name
func NewSequenceTimeline(name string) Timeline {
	return Timeline{Name: name, Type: TimeTypeSequence}
}

// TimeInt is an integer position on a timeline
type TimeInt int64

// TimeReal is a fractional position on a timeline, as produced by dragging
// the time cursor or a loop selection handle
type TimeReal float64

// Floor rounds towards negative infinity
func (t TimeReal) Floor() TimeInt {
	return TimeInt(math.Floor(float64(t)))
}

// Ceil rounds towards positive infinity
func (t TimeReal) Ceil() TimeInt {
	return TimeInt(math.Ceil(float64(t)))
}

// AbsoluteTimeRange is an inclusive integer range on a timeline
type AbsoluteTimeRange struct {
	Min TimeInt
	Max TimeInt
}

// NewAbsoluteTimeRange creates a range, swapping the bounds if needed
func NewAbsoluteTimeRange(a, b TimeInt) AbsoluteTimeRange {
	if a > b {
		a, b = b, a
	}
	return AbsoluteTimeRange{Min: a, Max: b}
}

// Contains reports whether t lies within the inclusive range
func (r AbsoluteTimeRange) Contains(t TimeInt) bool {
	return r.Min <= t && t <= r.Max
}

// TimeRangeF is a fractional range, e.g. the loop selection in the time panel
type TimeRangeF struct {
	Min TimeReal
	Max TimeReal
}

// IsEmpty reports whether the range covers nothing
func (r TimeRangeF) IsEmpty() bool {
	return r.Max < r.Min
}

// Widened returns the smallest integer range that covers r
func (r TimeRangeF) Widened() AbsoluteTimeRange {
	return NewAbsoluteTimeRange(r.Min.Floor(), r.Max.Ceil())
}

// TimeSelection is a range on a specific timeline
type TimeSelection struct {
	Timeline Timeline
	Range    AbsoluteTimeRange
}

// String renders the selection as timeline@min..max
func (ts TimeSelection) String() string {
	lo := TimeCell{Type: ts.Timeline.Type, Value: ts.Range.Min}
	hi := TimeCell{Type: ts.Timeline.Type, Value: ts.Range.Max}
	return ts.Timeline.Name + "@" + lo.urlValue() + ".." + hi.urlValue()
}

// TimeCell is a typed time value
type TimeCell struct {
	Type  TimeType
	Value TimeInt
}

// Format renders the cell for display
func (c TimeCell) Format(format TimestampFormat) string {
	switch c.Type {
	case TimeTypeTimestamp:
		switch format {
		case TimestampFormatUnixEpoch:
			return strconv.FormatFloat(float64(c.Value)/1e9, 'f', 3, 64)
		case TimestampFormatLocal:
			return time.Unix(0, int64(c.Value)).Local().Format("2006-01-02 15:04:05.000")
		default:
			return time.Unix(0, int64(c.Value)).UTC().Format("2006-01-02 15:04:05.000Z")
		}
	case TimeTypeDuration:
		return time.Duration(c.Value).String()
	default:
		return "#" + strconv.FormatInt(int64(c.Value), 10)
	}
}

// urlValue renders the cell the way it appears in a shared URL
func (c TimeCell) urlValue() string {
	switch c.Type {
	case TimeTypeTimestamp:
		return time.Unix(0, int64(c.Value)).UTC().Format(time.RFC3339Nano)
	case TimeTypeDuration:
		return time.Duration(c.Value).String()
	default:
		return strconv.FormatInt(int64(c.Value), 10)
	}
}

// TimelinePoint is a position on a named timeline
type TimelinePoint struct {
	Timeline string
	Cell     TimeCell
}

// String renders the point as timeline@value
func (p TimelinePoint) String() string {
	return p.Timeline + "@" + p.Cell.urlValue()
}
