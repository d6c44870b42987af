package download

// Package download implements native file downloads over HTTP. It manages
// the task lifecycle, bounds parallel transfers, and propagates progress to
// the UI. Files are staged next to their destination and renamed into place
// once complete.
