package platform

// Package platform contains OS/platform integration: filesystem helpers,
// OS reveal of downloaded files, and the download primitive used when the
// app runs inside a browser.
