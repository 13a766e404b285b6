package hxpipe

import (
	"fmt"

	"github.com/hxkit/hxkit/pkg/htmx"
)

// Args wraps the flexible argument payload of a pending operation: absent,
// a single scalar, a positional list, or a keyword map. Mutators pull their
// parameters out by keyword name and positional index, so callers may use
// whichever shape reads best.
type Args struct {
	value any
}

// NewArgs wraps an argument payload.
func NewArgs(v any) Args {
	return Args{value: v}
}

// Value returns the raw payload.
func (a Args) Value() any {
	return a.value
}

// IsZero reports whether no arguments were supplied.
func (a Args) IsZero() bool {
	return a.value == nil
}

// Field resolves a parameter by keyword (for map payloads) or position
// (for list payloads). A scalar payload is position zero.
func (a Args) Field(key string, pos int) (any, bool) {
	switch v := a.value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := v[key]
		return val, ok
	case []any:
		if pos < 0 || pos >= len(v) {
			return nil, false
		}
		return v[pos], true
	default:
		if pos == 0 {
			return v, true
		}
		return nil, false
	}
}

// StringField resolves a parameter and asserts it is a string.
func (a Args) StringField(key string, pos int) (string, bool) {
	val, ok := a.Field(key, pos)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// SpecField resolves a parameter and converts it to a trigger spec:
// strings stay raw (JSON object or comma list), lists become token lists,
// maps become event maps. An absent parameter is a nil spec.
func (a Args) SpecField(key string, pos int) (htmx.TriggerSpec, error) {
	val, ok := a.Field(key, pos)
	if !ok {
		return nil, nil
	}
	return toTriggerSpec(val)
}

func toTriggerSpec(v any) (htmx.TriggerSpec, error) {
	switch spec := v.(type) {
	case nil:
		return nil, nil
	case string:
		return htmx.TokenString(spec), nil
	case []any:
		tokens := make(htmx.TokenList, 0, len(spec))
		for _, item := range spec {
			tokens = append(tokens, fmt.Sprint(item))
		}
		return tokens, nil
	case []string:
		return htmx.TokenList(spec), nil
	case map[string]any:
		return htmx.EventMap(spec), nil
	default:
		return nil, fmt.Errorf("%w: %T", htmx.ErrInvalidTriggerSpec, v)
	}
}
