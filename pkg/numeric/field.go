package numeric

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// DefaultSeed is the text a Field starts with.
const DefaultSeed = "0"

// State is the edit state of a Field's committed text.
type State int

const (
	StateEmpty State = iota
	StateProvisional
	StateCommitted
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateProvisional:
		return "provisional"
	case StateCommitted:
		return "committed"
	default:
		return "invalid"
	}
}

// ErrorKind names the two ways a field reports a problem.
type ErrorKind int

const (
	// KindNone means no problem.
	KindNone ErrorKind = iota
	// KindRejectedKeystroke means the proposed edit was discarded.
	KindRejectedKeystroke
	// KindOutOfRange means the held text is outside bounds or malformed.
	KindOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindRejectedKeystroke:
		return "rejected-keystroke"
	case KindOutOfRange:
		return "out-of-range-or-malformed"
	default:
		return "none"
	}
}

// Decision is the verdict on one candidate edit.
type Decision struct {
	Accepted bool
	Hint     string
	Kind     ErrorKind
}

// Result is what KeyPress hands back to the host.
type Result struct {
	Decision
	Text   string
	Cursor int
}

// Selection is a rune range inside the field text.
type Selection struct {
	Start  int
	Length int
}

// Option configures a Field at construction time.
type Option func(*Field)

// WithRange applies min, max and decimal places in one step.
func WithRange(r Range) Option {
	return func(f *Field) {
		f.validator.Configure(r.Min, r.Max, r.DecimalPlaces)
	}
}

// WithSeed replaces DefaultSeed. The seed is loaded without validation.
func WithSeed(seed string) Option {
	return func(f *Field) {
		f.seed = seed
	}
}

// Field is a constrained numeric text box. It is not safe for concurrent use;
// every method runs within the handling of a single UI event.
type Field struct {
	validator *Validator
	seed      string
	text      string
	selection Selection
	hint      string
}

// NewField builds a field with the default range and seed text.
func NewField(options ...Option) *Field {
	f := &Field{
		validator: NewValidator(),
		seed:      DefaultSeed,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.Load(f.seed)
	return f
}

// Validator exposes the rule set backing the field.
func (f *Field) Validator() *Validator {
	return f.validator
}

// Range returns the current configuration.
func (f *Field) Range() Range {
	return f.validator.Range()
}

// SetMin updates the lower bound (ignored when above the maximum).
func (f *Field) SetMin(value int) {
	f.validator.SetMin(value)
	f.refreshHint()
}

// SetMax updates the upper bound (ignored when below the minimum).
func (f *Field) SetMax(value int) {
	f.validator.SetMax(value)
	f.refreshHint()
}

// SetDecimalPlaces updates the decimal place limit, clamped into [0,4].
func (f *Field) SetDecimalPlaces(places int) {
	f.validator.SetDecimalPlaces(places)
	f.refreshHint()
}

// Text returns the committed text.
func (f *Field) Text() string {
	return f.text
}

// Hint returns the pending error hint, empty when there is none.
func (f *Field) Hint() string {
	return f.hint
}

// Problem reports which kind of problem the pending hint describes.
func (f *Field) Problem() ErrorKind {
	if f.hint == "" {
		return KindNone
	}
	if f.State() == StateInvalid {
		return KindOutOfRange
	}
	return KindRejectedKeystroke
}

// State classifies the committed text.
func (f *Field) State() State {
	if f.text == "" {
		return StateEmpty
	}
	switch f.validator.Classify(f.text) {
	case StatusProvisional:
		return StateProvisional
	case StatusValid:
		return StateCommitted
	default:
		return StateInvalid
	}
}

// Valid reports whether the committed text is a complete in-range value.
func (f *Field) Valid() bool {
	return f.State() == StateCommitted
}

// Selection returns the current caret/selection.
func (f *Field) Selection() Selection {
	return f.selection
}

// Select moves the caret or selection, clamped into the text.
func (f *Field) Select(start, length int) {
	n := utf8.RuneCountInString(f.text)
	s, e := clampSelection(n, start, length)
	f.selection = Selection{Start: s, Length: e - s}
}

// SetText assigns text only when it is a complete valid value. Rejected
// text leaves the field unchanged and raises the hint.
func (f *Field) SetText(text string) bool {
	if !f.validator.IsValid(text) {
		f.hint = f.validator.Hint()
		return false
	}
	f.assign(text)
	f.hint = ""
	return true
}

// Load assigns text verbatim. The hint is raised when the loaded text is
// neither provisional nor valid.
func (f *Field) Load(text string) {
	f.assign(text)
	f.refreshHint()
}

func (f *Field) assign(text string) {
	f.text = text
	f.selection = Selection{Start: utf8.RuneCountInString(text)}
}

func (f *Field) refreshHint() {
	if f.State() == StateInvalid {
		f.hint = f.validator.Hint()
		return
	}
	f.hint = ""
}

// AcceptOrReject decides whether candidate, produced by key, may replace the
// committed text. Keys outside digits, '.', '-' and backspace are rejected
// before the range check, as are '-' on a non-negative range and '.' when no
// decimals are allowed; those rejections carry no hint and leave the pending
// hint as it was. Provisional candidates are always accepted.
func (f *Field) AcceptOrReject(key Key, candidate string) Decision {
	r := f.validator.Range()
	if !key.Editable() ||
		(key == '-' && !r.AllowsNegative()) ||
		(key == '.' && !r.AllowsFraction()) {
		return Decision{Kind: KindRejectedKeystroke}
	}

	if IsProvisional(candidate) {
		f.hint = ""
		return Decision{Accepted: true}
	}

	if !f.validator.IsValid(candidate) {
		f.hint = f.validator.Hint()
		return Decision{Hint: f.hint, Kind: KindRejectedKeystroke}
	}
	f.hint = ""
	return Decision{Accepted: true}
}

// KeyPress applies key at the current selection when the resulting text is
// acceptable and reports the outcome.
func (f *Field) KeyPress(key Key) Result {
	sel := f.selection
	candidate := ProposeEdit(f.text, sel.Start, sel.Length, key)
	decision := f.AcceptOrReject(key, candidate)
	if decision.Accepted {
		cursor := caretAfter(utf8.RuneCountInString(f.text), sel.Start, sel.Length, key)
		f.text = candidate
		f.selection = Selection{Start: cursor}
	}
	return Result{
		Decision: decision,
		Text:     f.text,
		Cursor:   f.selection.Start,
	}
}

// OnFocusLost clears any pending hint. The text is left exactly as typed.
func (f *Field) OnFocusLost() {
	f.hint = ""
}

// OnFocusGained selects the whole text and returns the selection the host
// should display.
func (f *Field) OnFocusGained() Selection {
	f.selection = Selection{Length: utf8.RuneCountInString(f.text)}
	return f.selection
}

// Value parses the text as a number. It reports false when the text does not
// parse.
func (f *Field) Value() (float64, bool) {
	value, err := strconv.ParseFloat(f.text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// IntValue rounds Value half to even. It reports false when the text does
// not parse or the result does not fit in 32 bits.
func (f *Field) IntValue() (int, bool) {
	value, ok := f.Value()
	if !ok {
		return 0, false
	}
	rounded := math.RoundToEven(value)
	if rounded < math.MinInt32 || rounded > math.MaxInt32 {
		return 0, false
	}
	return int(rounded), true
}

// ByteValue rounds Value half to even. It reports false when the text does
// not parse or the result is outside [0,255].
func (f *Field) ByteValue() (byte, bool) {
	value, ok := f.Value()
	if !ok {
		return 0, false
	}
	rounded := math.RoundToEven(value)
	if rounded < 0 || rounded > math.MaxUint8 {
		return 0, false
	}
	return byte(rounded), true
}
