package address

import (
	"strings"

	"github.com/goliatone/go-formmask/pkg/numeric"
)

// DefaultAddress seeds a new Field.
const DefaultAddress = "0.0.0.0"

// InvalidHint is raised while the joined address is not a valid IPv4 address.
const InvalidHint = "invalid IPv4 address"

// Separator is the key that moves focus between octets.
const Separator numeric.Key = '.'

// OctetRange constrains every octet field.
var OctetRange = numeric.Range{Min: 0, Max: 255, DecimalPlaces: 0}

// Result is what KeyPress hands back to the host.
type Result struct {
	numeric.Result
	// Octet is the octet the key was delivered to.
	Octet int
	// Focus is the octet holding focus after the key.
	Focus int
	// Consumed is true when the key was a separator and never reached the octet.
	Consumed bool
	// Address is the joined address after the key.
	Address string
}

// Field is a four-octet IPv4 address entry. Like numeric.Field it is driven
// synchronously by a single UI thread.
type Field struct {
	octets [OctetCount]*numeric.Field
	focus  int
	valid  bool
	hint   string
}

// NewField builds an address field seeded with DefaultAddress.
func NewField() *Field {
	return NewFieldWith(DefaultAddress)
}

// NewFieldWith builds an address field seeded with addr. Malformed seeds are
// kept as given and reported through Hint.
func NewFieldWith(addr string) *Field {
	f := &Field{}
	for i := range f.octets {
		f.octets[i] = numeric.NewField(numeric.WithRange(OctetRange))
	}
	f.SetAddress(addr)
	return f
}

// Octet returns the numeric field behind octet i, or nil when out of range.
func (f *Field) Octet(i int) *numeric.Field {
	if i < 0 || i >= OctetCount {
		return nil
	}
	return f.octets[i]
}

// Focus returns the index of the focused octet.
func (f *Field) Focus() int {
	return f.focus
}

// SetAddress splits text on '.' and loads each non-empty group, up to four,
// into the octet at the same position. Octets without a group keep their
// text. Nothing is rejected here; validity is reported through Valid/Hint.
func (f *Field) SetAddress(text string) {
	for i, group := range strings.Split(text, ".") {
		if i >= OctetCount {
			break
		}
		if group == "" {
			continue
		}
		f.octets[i].Load(group)
	}
	f.revalidate()
}

// Address joins the octet texts with '.' whatever their validity.
func (f *Field) Address() string {
	parts := make([]string, OctetCount)
	for i, octet := range f.octets {
		parts[i] = octet.Text()
	}
	return strings.Join(parts, ".")
}

// Bytes returns the parsed address when it is valid.
func (f *Field) Bytes() ([OctetCount]byte, bool) {
	parsed, err := Parse(f.Address())
	if err != nil {
		return parsed, false
	}
	return parsed, true
}

// Valid reports the result of the last validation pass.
func (f *Field) Valid() bool {
	return f.valid
}

// Hint returns the composite error hint, empty while the address is valid.
func (f *Field) Hint() string {
	return f.hint
}

// OnOctetChanged re-validates the joined address. Hosts that edit octet text
// directly call it after each change; KeyPress calls it itself.
func (f *Field) OnOctetChanged(i int) {
	if f.Octet(i) == nil {
		return
	}
	f.revalidate()
}

func (f *Field) revalidate() {
	f.valid = Valid(f.Address())
	if f.valid {
		f.hint = ""
		return
	}
	f.hint = InvalidHint
}

// OnSeparatorKey consumes a '.' typed in octet i and moves focus to the next
// octet when there is one; on the last octet it does nothing else. It
// returns the octet holding focus afterwards.
func (f *Field) OnSeparatorKey(i int) int {
	if f.Octet(i) == nil || i+1 >= OctetCount {
		return f.focus
	}
	f.OnOctetGotFocus(i + 1)
	return f.focus
}

// OnOctetGotFocus moves focus to octet i and selects its whole text.
func (f *Field) OnOctetGotFocus(i int) numeric.Selection {
	octet := f.Octet(i)
	if octet == nil {
		return numeric.Selection{}
	}
	if f.focus != i {
		f.octets[f.focus].OnFocusLost()
	}
	f.focus = i
	return octet.OnFocusGained()
}

// KeyPress delivers key to octet i. Separators are consumed and advance
// focus; everything else goes through the octet's own edit rules, and an
// accepted edit re-validates the address.
func (f *Field) KeyPress(i int, key numeric.Key) Result {
	octet := f.Octet(i)
	if octet == nil {
		return Result{Octet: i, Focus: f.focus, Address: f.Address()}
	}
	if i != f.focus {
		f.focus = i
	}

	if key == Separator {
		focus := f.OnSeparatorKey(i)
		return Result{
			Result:   numeric.Result{Text: octet.Text(), Cursor: octet.Selection().Start},
			Octet:    i,
			Focus:    focus,
			Consumed: true,
			Address:  f.Address(),
		}
	}

	res := octet.KeyPress(key)
	if res.Accepted {
		f.OnOctetChanged(i)
	}
	return Result{
		Result:  res,
		Octet:   i,
		Focus:   f.focus,
		Address: f.Address(),
	}
}
