// Package share implements the state of the share/export dialog: deriving
// the link for the current screen, the companion annotation files, the
// link settings, and the transient feedback of the copy and download
// buttons. Rendering lives in package ui; this package has no toolkit
// dependency so every rule can be tested directly.
package share
