package forms

import (
	"html/template"
	"io"
	"sort"
	"strings"
)

// DynamicChoiceClass marks inputs that participate in dynamic choice
// loading; the default hx-include selector picks up every input carrying it.
const DynamicChoiceClass = "dynamic-choice"

// defaultWidgetAttrs is the attribute template for dynamic select widgets.
// Any of these can be overridden through WithWidgetAttrs.
func defaultWidgetAttrs() map[string]string {
	return map[string]string{
		// the url to load choices from, set from the field's choice URL
		"hx-get": "",
		// use outerHTML if the fragment renders a whole select element
		"hx-swap": "innerHTML",
		// all inputs with this class are included in the request for choices;
		// overridden by dependency fields
		"hx-include": "." + DynamicChoiceClass,
		// dependency fields override this to subscribe to their changes
		"hx-trigger":   "change from:previous select." + DynamicChoiceClass,
		"hx-indicator": "previous label",
		"data-tooltip": "Click to load available options. When a selection is changed, dependent choices will be reloaded with the correct options.",
		"script":       "on htmx:afterRequest from me add [@selected] to <option:nth-child(0) /> in me end",
		"class":        DynamicChoiceClass,
	}
}

// UnionTokens returns a space-separated string with the unique tokens from
// all input strings. Used to merge css class lists without duplicates.
func UnionTokens(parts ...string) string {
	seen := make(map[string]bool)
	var tokens []string
	for _, part := range parts {
		for _, token := range strings.Fields(part) {
			if !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	return strings.Join(tokens, " ")
}

var selectTemplate = template.Must(template.New("select").Parse(
	`<select name="{{.Name}}"{{.AttrString}}>
{{- range .Choices}}
<option value="{{.Value}}"{{if .Disable}} hx-disable="true"{{end}}{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>`))

// SelectWidget renders a select element with the assembled attributes.
// On dynamic widgets the option elements carry hx-disable, since their
// reload is triggered by other elements' changes, not by clicks on the
// options themselves; static widgets render plain options.
type SelectWidget struct {
	Name     string
	Attrs    map[string]string
	Choices  ChoiceList
	Selected string
	Dynamic  bool
}

// NewSelectWidget constructs an ordinary static widget. Only the
// caller-supplied attributes are rendered; the widget takes no part in
// dynamic choice loading.
func NewSelectWidget(name string, attrs map[string]string, choices ChoiceList) *SelectWidget {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}

	return &SelectWidget{
		Name:    name,
		Attrs:   copied,
		Choices: choices,
	}
}

// NewDynamicSelectWidget constructs a widget participating in dynamic choice
// loading, merging the dynamic-choice css class into any caller-supplied
// class attribute so other fields' hx-include selectors find it.
func NewDynamicSelectWidget(name string, attrs map[string]string, choices ChoiceList) *SelectWidget {
	w := NewSelectWidget(name, attrs, choices)
	w.Attrs["class"] = UnionTokens(w.Attrs["class"], DynamicChoiceClass)
	w.Dynamic = true
	return w
}

type optionContext struct {
	Value    string
	Label    string
	Selected bool
	Disable  bool
}

type selectContext struct {
	Name       string
	AttrString template.HTMLAttr
	Choices    []optionContext
}

// AttrString renders the attribute map as escaped HTML attributes in sorted
// key order, so output is deterministic.
func (w *SelectWidget) AttrString() template.HTMLAttr {
	keys := make([]string, 0, len(w.Attrs))
	for k := range w.Attrs {
		if w.Attrs[k] == "" && k != "class" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(template.HTMLEscapeString(k))
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(w.Attrs[k]))
		b.WriteByte('"')
	}
	return template.HTMLAttr(b.String())
}

// Render writes the select element HTML.
func (w *SelectWidget) Render(out io.Writer) error {
	ctx := selectContext{
		Name:       w.Name,
		AttrString: w.AttrString(),
		Choices:    make([]optionContext, len(w.Choices)),
	}
	for i, c := range w.Choices {
		ctx.Choices[i] = optionContext{
			Value:    c.Value,
			Label:    c.Label,
			Selected: w.Selected != "" && c.Value == w.Selected,
			Disable:  w.Dynamic,
		}
	}
	return selectTemplate.Execute(out, ctx)
}

// RenderOptions writes only the option elements, for endpoints that return a
// choice fragment to swap into an existing dynamic select. The options carry
// hx-disable like those of a dynamic widget.
func RenderOptions(out io.Writer, choices ChoiceList, selected string) error {
	for _, c := range choices {
		w := optionContext{Value: c.Value, Label: c.Label, Selected: selected != "" && c.Value == selected, Disable: true}
		if err := optionTemplate.Execute(out, w); err != nil {
			return err
		}
	}
	return nil
}

var optionTemplate = template.Must(template.New("option").Parse(
	`<option value="{{.Value}}"{{if .Disable}} hx-disable="true"{{end}}{{if .Selected}} selected{{end}}>{{.Label}}</option>
`))
