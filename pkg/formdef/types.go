package formdef

// Kind names the widget family a field belongs to.
type Kind string

const (
	// KindNumeric is a constrained numeric text box.
	KindNumeric Kind = "numeric"
	// KindAddress is a four-octet IPv4 address box.
	KindAddress Kind = "ipv4"
)

// Definition is a named list of fields.
type Definition struct {
	Name   string     `json:"name" yaml:"name"`
	Fields []FieldDef `json:"fields" yaml:"fields" validate:"required,min=1,dive"`
}

// FieldDef describes a single widget. Kind may be left empty; the widget
// registry then infers it from Type and Format.
type FieldDef struct {
	Name          string `json:"name" yaml:"name" validate:"required"`
	Label         string `json:"label,omitempty" yaml:"label,omitempty"`
	Help          string `json:"help,omitempty" yaml:"help,omitempty"`
	Kind          Kind   `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=numeric ipv4"`
	Type          string `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=integer number string"`
	Format        string `json:"format,omitempty" yaml:"format,omitempty"`
	Min           *int   `json:"min,omitempty" yaml:"min,omitempty"`
	Max           *int   `json:"max,omitempty" yaml:"max,omitempty"`
	DecimalPlaces int    `json:"decimalPlaces,omitempty" yaml:"decimalPlaces,omitempty"`
	Default       string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Field returns the definition with the given name.
func (d Definition) Field(name string) (FieldDef, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDef{}, false
}

// IntPtr is a small helper for building definitions in code.
func IntPtr(v int) *int {
	return &v
}
