// Package address composes four numeric fields into a dotted-quad IPv4 entry
// control. Each octet is a numeric.Field limited to [0,255] with no decimal
// places; the composite re-validates the joined address after every octet
// change, turns the '.' key into a focus move to the next octet, and exposes
// the same select-all-on-focus and hint conventions as the numeric field.
package address
