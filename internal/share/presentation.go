package share

import (
	"fmt"
	"runtime"
	"strings"
)

// Presentation selects between the browser-hosted ("export") and the
// native ("share") flavour of the dialog. It is chosen once at startup.
type Presentation int

const (
	PresentationNative Presentation = iota
	PresentationWeb
)

// Presentation setting values
const (
	PresentationAuto       = "auto"
	PresentationNameNative = "native"
	PresentationNameWeb    = "web"
)

// String returns the setting value for the presentation
func (p Presentation) String() string {
	if p == PresentationWeb {
		return PresentationNameWeb
	}
	return PresentationNameNative
}

// IsWeb reports whether the browser-hosted flavour is used
func (p Presentation) IsWeb() bool {
	return p == PresentationWeb
}

// DefaultPresentation picks the flavour matching the build target
func DefaultPresentation() Presentation {
	if runtime.GOOS == "js" || runtime.GOARCH == "wasm" {
		return PresentationWeb
	}
	return PresentationNative
}

// ParsePresentation parses a setting value. "auto" and "" resolve to the
// build target default.
func ParsePresentation(s string) (Presentation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PresentationAuto:
		return DefaultPresentation(), nil
	case PresentationNameNative:
		return PresentationNative, nil
	case PresentationNameWeb:
		return PresentationWeb, nil
	default:
		return DefaultPresentation(), fmt.Errorf("unknown presentation: %q", s)
	}
}

// Option is one side of a two-way toggle
type Option struct {
	Label   string
	Tooltip string
}

// Strings holds every user-visible text that differs between flavours
type Strings struct {
	Title          string
	Button         string
	URLHint        string
	CannotCreate   string
	ExamplesLocked string

	LinkFormat string
	SourceOnly Option
	FullLink   Option

	TrimRange       string
	EntireRecording Option
	TrimToSelection Option
}

// Strings shared by both flavours
const (
	TextTimeCursor        = "Time cursor"
	TextAtTheStart        = "At the start"
	TextCurrent           = "Current"
	TextNoTimeRange       = "No time range selected."
	TextNoTime            = "No time selected."
	TextCopyLink          = "Copy link"
	TextCopied            = "Copied to clipboard!"
	TextDownloadRecording = "Download RRD"
	TextDownloadingRRD    = "Downloading RRD..."
	TextDownloadingFile   = "Downloading %s..."
	TextDownloadSelected  = "Download selected"
	TextAnnotations       = "Download Annotations:"
)

var (
	nativeStrings = Strings{
		Title:          "Share",
		Button:         "Share",
		URLHint:        "<can't share link>",
		CannotCreate:   "Cannot create share URL: %v",
		ExamplesLocked: "Built-in examples cannot be shared.",

		LinkFormat: "Link format",
		SourceOnly: Option{
			Label:   "Only source",
			Tooltip: "Link works only in already opened viewers and not in the browser's address bar.",
		},
		FullLink: Option{
			Label:   "Web viewer",
			Tooltip: "Link works in the browser's address bar, opening a new viewer. You can still use this link in the native viewer as well.",
		},

		TrimRange: "Trim range",
		EntireRecording: Option{
			Label:   "Entire recording",
			Tooltip: "Link will share the entire recording.",
		},
		TrimToSelection: Option{
			Label:   "Trim to selection",
			Tooltip: "Link trims the recording to the selected time range.",
		},
	}

	webStrings = Strings{
		Title:          "Export",
		Button:         "Export",
		URLHint:        "<can't export file>",
		CannotCreate:   "Cannot create export URL: %v",
		ExamplesLocked: "Built-in examples cannot be exported.",

		LinkFormat: "Export format",
		SourceOnly: Option{
			Label:   "RRD only",
			Tooltip: "Download only the RRD file.",
		},
		FullLink: Option{
			Label:   "Full export",
			Tooltip: "Download RRD with additional metadata.",
		},

		TrimRange: "Export range",
		EntireRecording: Option{
			Label:   "Entire recording",
			Tooltip: "Export will include the entire recording.",
		},
		TrimToSelection: Option{
			Label:   "Export selection",
			Tooltip: "Export will include only the selected time range.",
		},
	}
)

// Strings returns the text set of the presentation
func (p Presentation) Strings() Strings {
	if p == PresentationWeb {
		return webStrings
	}
	return nativeStrings
}
