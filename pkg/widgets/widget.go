package widgets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formmask/pkg/address"
	"github.com/goliatone/go-formmask/pkg/formdef"
	"github.com/goliatone/go-formmask/pkg/numeric"
)

// ErrUnresolved is returned when no widget matches a field definition.
var ErrUnresolved = errors.New("widgets: no widget for field")

// Widget is the host-facing view shared by numeric and address fields.
type Widget interface {
	Name() string
	Kind() formdef.Kind
	Text() string
	Hint() string
	Valid() bool
	// Assign replaces the whole value as if typed at once and reports
	// whether the result is valid.
	Assign(text string) bool
}

// NumericWidget adapts a numeric.Field.
type NumericWidget struct {
	name  string
	Field *numeric.Field
}

func (w *NumericWidget) Name() string { return w.name }
func (w *NumericWidget) Kind() formdef.Kind { return formdef.KindNumeric }
func (w *NumericWidget) Text() string { return w.Field.Text() }
func (w *NumericWidget) Hint() string { return w.Field.Hint() }
func (w *NumericWidget) Valid() bool { return w.Field.Valid() }

// Assign uses the validated setter: rejected text keeps the previous value.
func (w *NumericWidget) Assign(text string) bool {
	return w.Field.SetText(strings.TrimSpace(text))
}

// AddressWidget adapts an address.Field.
type AddressWidget struct {
	name  string
	Field *address.Field
}

func (w *AddressWidget) Name() string { return w.name }
func (w *AddressWidget) Kind() formdef.Kind { return formdef.KindAddress }
func (w *AddressWidget) Text() string { return w.Field.Address() }
func (w *AddressWidget) Hint() string { return w.Field.Hint() }
func (w *AddressWidget) Valid() bool { return w.Field.Valid() }

// Assign loads text into the octets and reports the composite validity.
func (w *AddressWidget) Assign(text string) bool {
	w.Field.SetAddress(strings.TrimSpace(text))
	return w.Field.Valid()
}

// RangeFor derives the numeric configuration of a field definition. Missing
// bounds fall back to the numeric defaults; a lone minimum above the default
// maximum pulls the maximum up with it. Integer fields never allow decimals.
func RangeFor(def formdef.FieldDef) numeric.Range {
	r := numeric.DefaultRange()
	if def.Min != nil {
		r.Min = *def.Min
	}
	if def.Max != nil {
		r.Max = *def.Max
	} else if r.Max < r.Min {
		r.Max = r.Min
	}
	r.DecimalPlaces = numeric.ClampDecimalPlaces(def.DecimalPlaces)
	if strings.EqualFold(def.Type, "integer") {
		r.DecimalPlaces = 0
	}
	return r
}

// Build instantiates the widget the registry resolves for def.
func (r *Registry) Build(def formdef.FieldDef) (Widget, error) {
	name, ok := r.Resolve(def)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnresolved, def.Name)
	}
	switch name {
	case WidgetNumeric:
		opts := []numeric.Option{numeric.WithRange(RangeFor(def))}
		if def.Default != "" {
			opts = append(opts, numeric.WithSeed(def.Default))
		}
		return &NumericWidget{name: def.Name, Field: numeric.NewField(opts...)}, nil
	case WidgetAddress:
		seed := def.Default
		if seed == "" {
			seed = address.DefaultAddress
		}
		return &AddressWidget{name: def.Name, Field: address.NewFieldWith(seed)}, nil
	default:
		return nil, fmt.Errorf("%w %q: widget %q has no builder", ErrUnresolved, def.Name, name)
	}
}

// BuildAll instantiates a widget for every field in def, in order.
func (r *Registry) BuildAll(def formdef.Definition) ([]Widget, error) {
	out := make([]Widget, 0, len(def.Fields))
	for _, field := range def.Fields {
		w, err := r.Build(field)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
