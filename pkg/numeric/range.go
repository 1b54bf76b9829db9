package numeric

// Decimal place limits accepted by a Range.
const (
	MinDecimalPlaces = 0
	MaxDecimalPlaces = 4
)

// Default bounds applied to a freshly constructed Validator.
const (
	DefaultMin = 0
	DefaultMax = 100
)

// Range is an immutable snapshot of the numeric constraints of a field.
type Range struct {
	Min           int
	Max           int
	DecimalPlaces int
}

// DefaultRange returns the configuration used by NewValidator.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax}
}

// ClampDecimalPlaces folds any requested decimal place count into [0,4].
func ClampDecimalPlaces(places int) int {
	switch {
	case places <= MinDecimalPlaces:
		return MinDecimalPlaces
	case places >= MaxDecimalPlaces:
		return MaxDecimalPlaces
	default:
		return places
	}
}

// AllowsNegative reports whether a leading minus sign may appear.
func (r Range) AllowsNegative() bool {
	return r.Min < 0
}

// RequiresNegative reports whether every valid value carries a minus sign.
func (r Range) RequiresNegative() bool {
	return r.Max < 0
}

// AllowsFraction reports whether a decimal point may appear.
func (r Range) AllowsFraction() bool {
	return r.DecimalPlaces > 0
}

// Contains reports whether value lies inside [Min, Max].
func (r Range) Contains(value float64) bool {
	return value >= float64(r.Min) && value <= float64(r.Max)
}
