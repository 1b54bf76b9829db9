package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formmask/pkg/formdef"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetNumeric = "numeric"
	WidgetAddress = "ipv4-address"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field formdef.FieldDef) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for field definitions based on an explicit kind or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry only resolves explicit kinds.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit kind is honoured
// before matcher evaluation.
func (r *Registry) Resolve(field formdef.FieldDef) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate fills in the Kind of every field the registry can resolve to a
// built-in widget, leaving explicit kinds untouched.
func (r *Registry) Decorate(def *formdef.Definition) {
	if r == nil || def == nil {
		return
	}
	for i, field := range def.Fields {
		if field.Kind != "" {
			continue
		}
		name, ok := r.Resolve(field)
		if !ok {
			continue
		}
		switch name {
		case WidgetNumeric:
			def.Fields[i].Kind = formdef.KindNumeric
		case WidgetAddress:
			def.Fields[i].Kind = formdef.KindAddress
		}
	}
}

func explicitWidget(field formdef.FieldDef) string {
	switch field.Kind {
	case formdef.KindNumeric:
		return WidgetNumeric
	case formdef.KindAddress:
		return WidgetAddress
	default:
		return ""
	}
}

func isAddressFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "ipv4", "ip-address", "ipv4-address":
		return true
	default:
		return false
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetAddress, 90, func(field formdef.FieldDef) bool {
		return isAddressFormat(field.Format)
	})

	r.Register(WidgetNumeric, 80, func(field formdef.FieldDef) bool {
		switch strings.ToLower(strings.TrimSpace(field.Type)) {
		case "integer", "number":
			return true
		}
		return field.Min != nil || field.Max != nil || field.DecimalPlaces > 0
	})
}
