package htmx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidTriggerSpec indicates a trigger payload that cannot be normalized
// into events (e.g. a JSON number or boolean). This is a programming error at
// the call site, not a soft parse failure.
var ErrInvalidTriggerSpec = errors.New("htmx: invalid trigger spec")

// TriggerSpec is one of the accepted shapes for trigger events:
//
//   - TokenString: a raw header value, either a JSON object or a
//     comma-separated token list
//   - TokenList: event names without details
//   - EventMap: event names with detail payloads
//   - nil: no events
//
// ParseEvents normalizes any of these into an *Events set.
type TriggerSpec interface {
	triggerSpec()
}

// TokenString is a raw trigger value. A JSON object string carries event
// details; anything else is treated as a comma-separated list of event names.
type TokenString string

// TokenList is a list of event names without details.
type TokenList []string

// EventMap maps event names to detail payloads.
type EventMap map[string]any

func (TokenString) triggerSpec() {}
func (TokenList) triggerSpec()   {}
func (EventMap) triggerSpec()    {}

// Events is an insertion-ordered set of client-side events with optional
// detail payloads. The zero value is not usable; construct with NewEvents or
// ParseEvents.
type Events struct {
	names   []string
	details map[string]any
}

// NewEvents returns an empty event set.
func NewEvents() *Events {
	return &Events{details: make(map[string]any)}
}

// Set adds an event or overwrites the detail of an existing one.
// Overwriting keeps the event's original position.
func (e *Events) Set(name string, detail any) {
	if _, ok := e.details[name]; !ok {
		e.names = append(e.names, name)
	}
	e.details[name] = detail
}

// Get returns the detail for the named event.
func (e *Events) Get(name string) (any, bool) {
	detail, ok := e.details[name]
	return detail, ok
}

// Names returns the event names in insertion order.
func (e *Events) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Len returns the number of events in the set.
func (e *Events) Len() int {
	return len(e.names)
}

// Merge folds other into e, right-biased: on name collision the detail from
// other wins while the event keeps its position in e. New names are appended
// in other's order.
func (e *Events) Merge(other *Events) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		e.Set(name, other.details[name])
	}
}

// Encode serializes the set for an HX-Trigger-style header. When no event
// carries a non-empty detail the compact comma-joined name list is used;
// otherwise the full JSON object form.
func (e *Events) Encode() string {
	if !e.hasDetails() {
		return strings.Join(e.names, ",")
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range e.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		detail, err := json.Marshal(e.details[name])
		if err != nil {
			detail = []byte(`null`)
		}
		buf.Write(detail)
	}
	buf.WriteByte('}')
	return buf.String()
}

// hasDetails reports whether any event carries a non-empty detail, following
// the truthiness rules the compact encoding depends on.
func (e *Events) hasDetails() bool {
	for _, detail := range e.details {
		if detailPresent(detail) {
			return true
		}
	}
	return false
}

func detailPresent(v any) bool {
	switch d := v.(type) {
	case nil:
		return false
	case string:
		return d != ""
	case bool:
		return d
	case float64:
		return d != 0
	case int:
		return d != 0
	case map[string]any:
		return len(d) > 0
	case []any:
		return len(d) > 0
	default:
		return true
	}
}

// ParseEvents normalizes a TriggerSpec into an event set:
//
//   - nil yields an empty set
//   - a TokenString is first decoded as JSON; a decoded object becomes the
//     set as-is, a decoded string or a decode failure falls back to
//     comma-separated tokens, a decoded array is treated as a token list
//   - a TokenList or decoded array maps each trimmed non-empty token to an
//     empty detail
//   - an EventMap is copied with names in sorted order
//
// JSON scalars other than strings (numbers, booleans) cannot represent
// events and return ErrInvalidTriggerSpec. JSON null yields an empty set.
func ParseEvents(in TriggerSpec) (*Events, error) {
	switch v := in.(type) {
	case nil:
		return NewEvents(), nil
	case TokenString:
		return parseTokenString(string(v))
	case TokenList:
		return eventsFromTokens([]string(v)), nil
	case EventMap:
		return eventsFromMap(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTriggerSpec, in)
	}
}

func parseTokenString(raw string) (*Events, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return eventsFromTokens(strings.Split(raw, ",")), nil
	}

	switch d := decoded.(type) {
	case map[string]any:
		return eventsFromMap(d), nil
	case string:
		// Valid JSON that decodes to a string: treat the decoded value as a
		// comma-separated token list, same as an undecodable raw string.
		return eventsFromTokens(strings.Split(d, ",")), nil
	case []any:
		tokens := make([]string, 0, len(d))
		for _, item := range d {
			tokens = append(tokens, fmt.Sprint(item))
		}
		return eventsFromTokens(tokens), nil
	case nil:
		return NewEvents(), nil
	default:
		return nil, fmt.Errorf("%w: JSON %T value %q", ErrInvalidTriggerSpec, decoded, raw)
	}
}

func eventsFromTokens(tokens []string) *Events {
	events := NewEvents()
	for _, token := range tokens {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		events.Set(name, "")
	}
	return events
}

func eventsFromMap(m map[string]any) *Events {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	events := NewEvents()
	for _, name := range names {
		events.Set(name, m[name])
	}
	return events
}

// MergeEvents merges two trigger specs into a single header value.
// The update spec wins on event-name collision. The result round-trips
// through ParseEvents.
func MergeEvents(existing, update TriggerSpec) (string, error) {
	merged, err := ParseEvents(existing)
	if err != nil {
		return "", err
	}
	updates, err := ParseEvents(update)
	if err != nil {
		return "", err
	}
	merged.Merge(updates)
	return merged.Encode(), nil
}
