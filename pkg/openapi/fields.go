package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formmask/pkg/formdef"
	"github.com/goliatone/go-formmask/pkg/numeric"
)

var (
	// ErrSchemaNotFound is returned when the named component schema is missing.
	ErrSchemaNotFound = errors.New("openapi: component schema not found")
	// ErrNoFields is returned when a schema has no property a widget can serve.
	ErrNoFields = errors.New("openapi: schema has no numeric or ipv4 properties")
)

// FieldsFromSchema loads doc and converts the properties of the component
// schema called name into field definitions, ordered by property name.
// Properties no widget can represent are skipped.
func FieldsFromSchema(ctx context.Context, doc Document, name string) (formdef.Definition, error) {
	if err := ctx.Err(); err != nil {
		return formdef.Definition{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return formdef.Definition{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return formdef.Definition{}, fmt.Errorf("openapi: load %s: %w", doc.Location(), err)
	}

	if spec.Components == nil {
		return formdef.Definition{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	ref, ok := spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return formdef.Definition{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}

	props := ref.Value.Properties
	names := make([]string, 0, len(props))
	for prop := range props {
		names = append(names, prop)
	}
	sort.Strings(names)

	def := formdef.Definition{Name: name}
	for _, prop := range names {
		field, ok := convertProperty(prop, props[prop])
		if !ok {
			continue
		}
		def.Fields = append(def.Fields, field)
	}
	if len(def.Fields) == 0 {
		return formdef.Definition{}, fmt.Errorf("%w: %q", ErrNoFields, name)
	}

	if err := formdef.Validate(def); err != nil {
		return formdef.Definition{}, fmt.Errorf("openapi: schema %q: %w", name, err)
	}
	return formdef.Normalize(def), nil
}

func convertProperty(name string, ref *openapi3.SchemaRef) (formdef.FieldDef, bool) {
	if ref == nil || ref.Value == nil {
		return formdef.FieldDef{}, false
	}
	src := ref.Value
	field := formdef.FieldDef{
		Name:   name,
		Label:  src.Title,
		Help:   src.Description,
		Type:   firstSchemaType(src.Type),
		Format: src.Format,
	}

	switch field.Type {
	case "integer", "number":
		field.Kind = formdef.KindNumeric
		if src.Min != nil {
			field.Min = boundPtr(math.Ceil(*src.Min))
		}
		if src.Max != nil {
			field.Max = boundPtr(math.Floor(*src.Max))
		}
		field.DecimalPlaces = decimalPlaces(field.Type, src.MultipleOf)
		field.Default = defaultText(src.Default)
		return field, true
	case "string":
		switch strings.ToLower(src.Format) {
		case "ipv4", "ip-address", "ipv4-address":
			field.Kind = formdef.KindAddress
			field.Default = defaultText(src.Default)
			return field, true
		}
	}
	return formdef.FieldDef{}, false
}

// decimalPlaces reads the precision implied by multipleOf: 0.01 allows two
// places. Numbers without multipleOf get the widest precision supported.
func decimalPlaces(schemaType string, multipleOf *float64) int {
	if schemaType == "integer" {
		return 0
	}
	if multipleOf == nil || *multipleOf <= 0 {
		return numeric.MaxDecimalPlaces
	}
	text := strconv.FormatFloat(*multipleOf, 'f', -1, 64)
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	return numeric.ClampDecimalPlaces(len(text) - dot - 1)
}

func boundPtr(v float64) *int {
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	out := int(v)
	return &out
}

func defaultText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return fmt.Sprint(typed)
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
