// Package tui hosts widgets in a terminal. Renderer collects a whole form
// through line prompts, re-asking with the widget hint until each value is
// accepted. KeySession drives a single widget keystroke by keystroke through
// its KeyPress hooks so edit-time filtering is visible as the user types.
package tui
