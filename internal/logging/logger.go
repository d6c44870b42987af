package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default is the process-wide logger shared by all packages.
var Default = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rec-viewer"})

// Init configures the default logger. Call once from main.
func Init(debug bool) {
	Default.SetTimeFormat("2006-01-02 15:04:05")
	Default.SetReportTimestamp(true)
	Default.SetReportCaller(debug)
	if debug {
		Default.SetLevel(log.DebugLevel)
	}
}

// With returns a child logger tagged with the given component name.
func With(component string) *log.Logger {
	return Default.With("component", component)
}
