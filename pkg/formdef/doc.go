// Package formdef loads declarative field definitions for numeric and IPv4
// address widgets from JSON or YAML documents. Definitions are validated with
// struct tags, labels are stripped of markup, and every field keeps enough
// information (bounds, decimal places, seed value) for pkg/widgets to build a
// live widget from it.
package formdef
