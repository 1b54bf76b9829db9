package numeric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Status classifies a candidate text against a Validator.
type Status int

const (
	// StatusInvalid marks text that is neither provisional nor valid.
	StatusInvalid Status = iota
	// StatusProvisional marks mid-edit text such as "", "-" or "12.".
	StatusProvisional
	// StatusValid marks text that satisfies the match rule and the bounds.
	StatusValid
)

func (s Status) String() string {
	switch s {
	case StatusProvisional:
		return "provisional"
	case StatusValid:
		return "valid"
	default:
		return "invalid"
	}
}

// rule is the derived state of a Range. It is rebuilt as a whole on every
// configuration change and never mutated afterwards.
type rule struct {
	rng     Range
	source  string
	pattern *regexp.Regexp
	hint    string
}

// Validator decides whether candidate strings are acceptable numbers for the
// configured range. The zero value is not usable; call NewValidator.
type Validator struct {
	current rule
}

// NewValidator returns a Validator configured with DefaultRange.
func NewValidator() *Validator {
	v := &Validator{}
	v.current = buildRule(DefaultRange())
	return v
}

// NewValidatorFor returns a Validator configured with r. Conflicting bounds
// fall back to the defaults, the decimal place count is clamped.
func NewValidatorFor(r Range) *Validator {
	v := NewValidator()
	v.Configure(r.Min, r.Max, r.DecimalPlaces)
	return v
}

// Configure replaces the whole configuration in one step. When maxValue < minValue the
// current bounds are retained; decimals is always clamped into [0,4].
func (v *Validator) Configure(minValue, maxValue, decimals int) {
	next := v.current.rng
	if maxValue >= minValue {
		next.Min = minValue
		next.Max = maxValue
	}
	next.DecimalPlaces = ClampDecimalPlaces(decimals)
	v.apply(next)
}

// SetMin updates the lower bound unless it would exceed the current maximum.
func (v *Validator) SetMin(value int) {
	next := v.current.rng
	if value <= next.Max {
		next.Min = value
	}
	v.apply(next)
}

// SetMax updates the upper bound unless it would fall below the current minimum.
func (v *Validator) SetMax(value int) {
	next := v.current.rng
	if value >= next.Min {
		next.Max = value
	}
	v.apply(next)
}

// SetDecimalPlaces updates the decimal place limit, clamped into [0,4].
func (v *Validator) SetDecimalPlaces(places int) {
	next := v.current.rng
	next.DecimalPlaces = ClampDecimalPlaces(places)
	v.apply(next)
}

func (v *Validator) apply(r Range) {
	v.current = buildRule(r)
}

// Range returns the current configuration snapshot.
func (v *Validator) Range() Range {
	return v.current.rng
}

// Pattern returns the source of the current match rule.
func (v *Validator) Pattern() string {
	return v.current.source
}

// Hint describes the current constraint for display next to a rejected edit.
func (v *Validator) Hint() string {
	return v.current.hint
}

// IsValid reports whether candidate is a complete number that matches the
// shape rule and lies within the configured bounds.
func (v *Validator) IsValid(candidate string) bool {
	r := v.current
	if !r.pattern.MatchString(candidate) {
		return false
	}
	value, err := strconv.ParseFloat(candidate, 64)
	if err != nil {
		return false
	}
	return r.rng.Contains(value)
}

// Classify sorts candidate into provisional, valid or invalid.
func (v *Validator) Classify(candidate string) Status {
	if IsProvisional(candidate) {
		return StatusProvisional
	}
	if v.IsValid(candidate) {
		return StatusValid
	}
	return StatusInvalid
}

// IsProvisional reports whether text is an unfinished edit: empty, a lone
// minus sign, or text whose first decimal point is its final character.
func IsProvisional(text string) bool {
	if text == "" || text == "-" {
		return true
	}
	return strings.IndexByte(text, '.') == len(text)-1
}

func buildRule(r Range) rule {
	var sb strings.Builder
	sb.WriteString("^")
	switch {
	case r.RequiresNegative():
		sb.WriteString("-")
	case r.AllowsNegative():
		sb.WriteString("-?")
	}
	sb.WriteString(`\d+`)
	if r.AllowsFraction() {
		fmt.Fprintf(&sb, `(\.\d{1,%d})?`, r.DecimalPlaces)
	}
	sb.WriteString("$")

	source := sb.String()
	return rule{
		rng:     r,
		source:  source,
		pattern: regexp.MustCompile(source),
		hint:    buildHint(r),
	}
}

func buildHint(r Range) string {
	hint := fmt.Sprintf("only values in range [%d~%d] allowed", r.Min, r.Max)
	if r.AllowsFraction() {
		hint += fmt.Sprintf(", decimal places must not exceed %d places", r.DecimalPlaces)
	}
	return hint
}
