// Package core builds a dark mode toggle from configuration and drives it
// for the command line.
package core

import (
	"github.com/Haocen/dark-mode-toggle/internal/persist"
	"github.com/Haocen/dark-mode-toggle/internal/view"
)

// Status is a snapshot of the engine.
type Status struct {
	// State is the widget's canonical state.
	State view.State

	// Views is every rendered representation.
	Views view.Views

	// System is the OS preference, "unknown" when it cannot be read.
	System string

	// Remembered is the stored mode, or the read result when there is none.
	Remembered string

	// Stored is the result of reading the record.
	Stored persist.Result

	// Backend and StoragePath describe where the record lives.
	Backend     string
	StoragePath string

	// Platform is the detected platform name.
	Platform  string
	Supported bool
}
