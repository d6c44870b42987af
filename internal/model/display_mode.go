package model

// ExamplesOrigin is the reserved server origin that hosts the built-in
// example recordings. Views of it are never shared.
const ExamplesOrigin = "rec+https://examples.recviewer.dev"

// DisplayModeKind enumerates the top-level screens of the viewer
type DisplayModeKind int

const (
	DisplayLocalRecordings DisplayModeKind = iota
	DisplayLocalTable
	DisplayRedapEntry
	DisplayRedapServer
	DisplaySettings
	DisplayChunkStoreBrowser
)

// String returns a human-friendly name for the screen
func (k DisplayModeKind) String() string {
	switch k {
	case DisplayLocalRecordings:
		return "Recordings"
	case DisplayLocalTable:
		return "Table"
	case DisplayRedapEntry:
		return "Dataset"
	case DisplayRedapServer:
		return "Server"
	case DisplaySettings:
		return "Settings"
	case DisplayChunkStoreBrowser:
		return "Chunk store"
	default:
		return "Unknown"
	}
}

// DisplayMode is what the viewer's main area currently shows. It is
// comparable with ==.
type DisplayMode struct {
	Kind DisplayModeKind

	// Origin is the server address for DisplayRedapServer and DisplayRedapEntry
	Origin string

	// EntryID identifies the dataset for DisplayRedapEntry or the table for
	// DisplayLocalTable
	EntryID string
}

// LocalRecordingsMode shows the active recording
func LocalRecordingsMode() DisplayMode {
	return DisplayMode{Kind: DisplayLocalRecordings}
}

// RedapServerMode shows the catalog of a server
func RedapServerMode(origin string) DisplayMode {
	return DisplayMode{Kind: DisplayRedapServer, Origin: origin}
}

// RedapEntryMode shows a dataset entry of a server
func RedapEntryMode(origin, entryID string) DisplayMode {
	return DisplayMode{Kind: DisplayRedapEntry, Origin: origin, EntryID: entryID}
}

// SettingsMode shows the settings screen
func SettingsMode() DisplayMode {
	return DisplayMode{Kind: DisplaySettings}
}

// IsExamples reports whether the mode shows the reserved examples server
func (d DisplayMode) IsExamples() bool {
	return d == RedapServerMode(ExamplesOrigin)
}
