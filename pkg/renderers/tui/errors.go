package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoWidgets is returned when Collect is called without widgets.
	ErrNoWidgets = errors.New("tui: no widgets to collect")
	// ErrRejected is returned when a field exhausts its attempts.
	ErrRejected = errors.New("tui: value rejected")
	// ErrUnsupportedWidget is returned when a widget has no keystroke editor.
	ErrUnsupportedWidget = errors.New("tui: widget does not support keystroke editing")
)
