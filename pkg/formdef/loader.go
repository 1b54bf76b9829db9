package formdef

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned for blank documents.
	ErrEmpty = errors.New("formdef: document is empty")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("formdef: duplicate field name")
	// ErrInvalid wraps struct validation failures.
	ErrInvalid = errors.New("formdef: invalid definition")
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// LoadFile reads and parses a definition file.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a JSON or YAML definition, validates it and normalises it.
// source only labels error messages.
func Parse(data []byte, source string) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("%w: %s", ErrEmpty, source)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		def = Definition{}
		if yerr := yaml.Unmarshal(data, &def); yerr != nil {
			return Definition{}, fmt.Errorf("formdef: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := Validate(def); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", source, err)
	}
	return Normalize(def), nil
}

// Validate checks struct tags and field name uniqueness.
func Validate(def Definition) error {
	if err := structValidator().Struct(def); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalid, describe(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	seen := make(map[string]struct{}, len(def.Fields))
	for _, field := range def.Fields {
		name := strings.TrimSpace(field.Name)
		if _, exists := seen[name]; exists {
			return fmt.Errorf("%w %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Normalize trims names, strips markup from display text and falls back to
// the field name for missing labels.
func Normalize(def Definition) Definition {
	out := Definition{
		Name:   strings.TrimSpace(def.Name),
		Fields: make([]FieldDef, len(def.Fields)),
	}
	for i, field := range def.Fields {
		field.Name = strings.TrimSpace(field.Name)
		field.Label = sanitizeText(field.Label)
		field.Help = sanitizeText(field.Help)
		if field.Label == "" {
			field.Label = field.Name
		}
		field.Type = strings.ToLower(strings.TrimSpace(field.Type))
		field.Format = strings.ToLower(strings.TrimSpace(field.Format))
		field.Default = strings.TrimSpace(field.Default)
		out.Fields[i] = field
	}
	return out
}

func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer().Sanitize(trimmed)))
}
