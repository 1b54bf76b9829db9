// Package openapi derives widget field definitions from OpenAPI component
// schemas. Integer and number properties become numeric fields whose bounds
// and decimal places follow minimum, maximum and multipleOf; string
// properties with an IPv4 format become address fields. Documents are loaded
// with kin-openapi but callers only ever see formdef types.
package openapi
