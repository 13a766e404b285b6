package hxkit

import (
	"net/http"

	"github.com/hxkit/hxkit/middlewares"
	"github.com/hxkit/hxkit/pkg/forms"
	"github.com/hxkit/hxkit/pkg/fragments"
	"github.com/hxkit/hxkit/pkg/htmx"
	"github.com/hxkit/hxkit/pkg/hxpipe"
	"github.com/hxkit/hxkit/pkg/logger"
)

// Type aliases - public API
type (
	// TriggerSpec is a value accepted wherever client events are declared:
	// a comma-separated token string, a token list, or an event map.
	TriggerSpec = htmx.TriggerSpec

	// TokenString is a comma-separated list of event names.
	TokenString = htmx.TokenString

	// TokenList is a slice of event names.
	TokenList = htmx.TokenList

	// EventMap maps event names to detail payloads.
	EventMap = htmx.EventMap

	// Events is an ordered collection of client events with details.
	Events = htmx.Events

	// SwapStrategy selects how htmx swaps response content into the page.
	SwapStrategy = htmx.SwapStrategy

	// Ops is the ordered per-request collection of pending operations.
	Ops = hxpipe.Ops

	// Args wraps the raw argument value passed to a mutator.
	Args = hxpipe.Args

	// MutatorFunc mutates response headers for one pending operation.
	MutatorFunc = hxpipe.MutatorFunc

	// Registry maps operation names to mutator functions.
	Registry = hxpipe.Registry

	// DynamicChoiceField is a select field whose options load over htmx.
	DynamicChoiceField = forms.DynamicChoiceField

	// Choice is a single select option.
	Choice = forms.Choice

	// ChoiceList is an ordered list of select options.
	ChoiceList = forms.ChoiceList

	// SelectWidget renders a select element with htmx attributes.
	SelectWidget = forms.SelectWidget

	// ContextExtractor extracts a slog attribute from context.
	// Used with the logger package to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Constructors

// NewDynamicChoiceField creates a choice field whose options the client
// reloads over htmx whenever a dependency field changes.
//
// Example:
//
//	city := hxkit.NewDynamicChoiceField("city",
//	    forms.WithChoiceURL("/choices/cities"),
//	    forms.WithDependencyFields("country"),
//	)
func NewDynamicChoiceField(name string, opts ...forms.FieldOption) *DynamicChoiceField {
	return forms.NewDynamicChoiceField(name, opts...)
}

// NewRegistry creates a mutator registry preloaded with the builtin
// header operations.
func NewRegistry() *Registry {
	return hxpipe.NewRegistry()
}

// RegisterOps merges pending operations into the request. The operations
// run against the response headers when the response middleware fires.
func RegisterOps(r *http.Request, ops map[string]any) *http.Request {
	return hxpipe.Register(r, ops)
}

// Message writes an inline message fragment and registers its default
// swap behavior.
func Message(w http.ResponseWriter, r *http.Request, msg string, opts ...fragments.MessageOption) error {
	return fragments.Message(w, r, msg, opts...)
}

// Request helpers

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return htmx.IsHTMX(r)
}

// IsBoosted reports whether the request came from a boosted element.
func IsBoosted(r *http.Request) bool {
	return htmx.IsBoosted(r)
}

// Redirect redirects htmx requests client-side and regular requests with
// an HTTP redirect.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	htmx.Redirect(w, r, url)
}

// Middleware

// HTMXResponse returns the response post-processing middleware.
func HTMXResponse(opts ...middlewares.HTMXOption) func(http.Handler) http.Handler {
	return middlewares.HTMXResponse(opts...)
}

// NotFoundFragment returns the 404 fragment substitution middleware.
func NotFoundFragment(opts ...middlewares.NotFoundOption) func(http.Handler) http.Handler {
	return middlewares.NotFoundFragment(opts...)
}

// RequestID returns the request ID middleware.
func RequestID(opts ...middlewares.RequestIDOption) func(http.Handler) http.Handler {
	return middlewares.RequestID(opts...)
}
