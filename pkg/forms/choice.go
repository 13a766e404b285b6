package forms

import (
	"fmt"
	"strings"
)

// Choice is one selectable (value, label) pair.
type Choice struct {
	Value string
	Label string
}

// ChoiceList is an ordered list of choices.
type ChoiceList []Choice

// Contains reports whether a value is among the choices.
func (l ChoiceList) Contains(value string) bool {
	for _, c := range l {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Values returns the choice values in order.
func (l ChoiceList) Values() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.Value
	}
	return out
}

// ValidationError reports a submitted value that is not a valid choice.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("forms: %q is not a valid choice for field %q", e.Value, e.Field)
}

// DynamicChoiceField is a choice field whose options are fetched over htmx
// when its dependency inputs change. Without a choice URL it behaves as an
// ordinary static choice field.
type DynamicChoiceField struct {
	Name            string
	Choices         ChoiceList
	AllowNewChoices bool

	choiceURL        string
	dependencyFields []string
	widgetAttrs      map[string]string
	initialChoices   bool
}

// FieldOption configures a DynamicChoiceField.
type FieldOption func(*DynamicChoiceField)

// WithChoiceURL sets the URL options are fetched from. Required for dynamic
// behavior; the endpoint should accept a GET request and return a fragment
// of option elements (or a whole select) to swap in.
func WithChoiceURL(url string) FieldOption {
	return func(f *DynamicChoiceField) {
		f.choiceURL = url
	}
}

// WithDependencyFields sets the CSS selectors of inputs this field depends
// on. A change on any of them reloads the choices, and their values are
// included in the fetch request.
func WithDependencyFields(selectors ...string) FieldOption {
	return func(f *DynamicChoiceField) {
		f.dependencyFields = selectors
	}
}

// WithWidgetAttrs adds or overrides widget attributes. Keys here win over
// the assembled defaults.
func WithWidgetAttrs(attrs map[string]string) FieldOption {
	return func(f *DynamicChoiceField) {
		f.widgetAttrs = attrs
	}
}

// WithChoices supplies the initial choice list.
func WithChoices(choices ...Choice) FieldOption {
	return func(f *DynamicChoiceField) {
		f.Choices = choices
		f.initialChoices = len(choices) > 0
	}
}

// WithAllowNewChoices controls whether validation admits values outside the
// known choice list. Defaults to true.
func WithAllowNewChoices(allow bool) FieldOption {
	return func(f *DynamicChoiceField) {
		f.AllowNewChoices = allow
	}
}

// NewDynamicChoiceField constructs a field.
func NewDynamicChoiceField(name string, opts ...FieldOption) *DynamicChoiceField {
	f := &DynamicChoiceField{
		Name:            name,
		AllowNewChoices: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ChoiceURL returns the configured fetch URL, empty for static fields.
func (f *DynamicChoiceField) ChoiceURL() string {
	return f.choiceURL
}

// Dynamic reports whether the field fetches its choices over htmx.
func (f *DynamicChoiceField) Dynamic() bool {
	return f.choiceURL != ""
}

// WidgetAttrs assembles the HTML attributes for the select element.
// Static fields get only the caller-supplied attributes; dynamic fields get
// the default attribute template with the fetch URL, dependency triggers and
// include selectors filled in, caller attributes overriding.
func (f *DynamicChoiceField) WidgetAttrs() map[string]string {
	if !f.Dynamic() {
		attrs := make(map[string]string, len(f.widgetAttrs))
		for k, v := range f.widgetAttrs {
			attrs[k] = v
		}
		return attrs
	}

	attrs := defaultWidgetAttrs()
	attrs["hx-get"] = f.choiceURL

	if len(f.dependencyFields) > 0 {
		triggers := make([]string, len(f.dependencyFields))
		for i, dep := range f.dependencyFields {
			triggers[i] = "change from:" + dep
		}
		attrs["hx-trigger"] = strings.Join(triggers, ", ")
		attrs["hx-include"] = strings.Join(f.dependencyFields, ", ")
		// Queue cascading reloads so dependent requests serialize instead of
		// racing with stale values in hx-include.
		attrs["hx-sync"] = "closest form:queue"
	}

	if !f.initialChoices {
		// No choices at render time: let the field's own first interaction
		// fetch them.
		attrs["hx-trigger"] += ", click once"
	}

	for k, v := range f.widgetAttrs {
		attrs[k] = v
	}
	return attrs
}

// Widget returns the select widget for this field. A field without a choice
// URL renders as an ordinary static select without any of the dynamic
// machinery.
func (f *DynamicChoiceField) Widget() *SelectWidget {
	if f.Dynamic() {
		return NewDynamicSelectWidget(f.Name, f.WidgetAttrs(), f.Choices)
	}
	return NewSelectWidget(f.Name, f.WidgetAttrs(), f.Choices)
}

// Validate accepts a submitted value that is among the known choices.
// An unknown value is admitted as a new (value, value) choice when
// AllowNewChoices is set; the admitted choice stays valid for the rest of
// this field instance's lifetime. Otherwise a *ValidationError is returned.
func (f *DynamicChoiceField) Validate(value string) error {
	if f.Choices.Contains(value) {
		return nil
	}
	if f.AllowNewChoices {
		f.Choices = append(f.Choices, Choice{Value: value, Label: value})
		return nil
	}
	return &ValidationError{Field: f.Name, Value: value}
}
