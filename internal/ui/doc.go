package ui

// Package ui contains the Fyne-based user interface of the viewer shell.
// It hosts the share dialog, exposes the time panel and selection that the
// dialog reads, and lists native downloads. Shell strings are localized via
// Localization; dialog strings come from the chosen share presentation.
