// Package numeric implements the keystroke-level validation core of a
// constrained numeric text box. A Validator turns a range configuration
// (minimum, maximum and a 0-4 decimal place limit) into a match rule and a
// human-readable hint; a Field owns one text buffer, splices every proposed
// edit into a candidate string and commits it only when the Validator (or the
// provisional mid-edit rules) allow it. Rejections are returned as values with
// a hint string for the host to display; nothing in this package panics or
// returns an error for user input.
package numeric
