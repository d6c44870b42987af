package model

// Package model defines the viewer's domain values: timelines and time
// ranges, display modes, the store hub of loaded recordings, the shareable
// OpenURL, and the download tasks run on behalf of the share dialog.
