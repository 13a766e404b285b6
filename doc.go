// Package hxkit provides server-side building blocks for htmx applications:
// dynamic choice fields, response post-processing middleware, and helpers
// for the htmx wire protocol.
//
// The packages compose around one idea: handlers (or the requesting
// elements themselves) declare WHAT should happen to the response, and a
// single middleware applies it to the headers just before the response
// leaves. Handlers stay free of header bookkeeping.
//
// # Quick Start
//
// Wrap your router with the response middleware and register operations
// from handlers:
//
//	mux := chi.NewRouter()
//	mux.Get("/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
//	    hxkit.RegisterOps(r, map[string]any{
//	        "retrigger": map[string]any{"events": "contactsUpdated"},
//	        "reselect":  "#detail",
//	    })
//	    renderContact(w, r)
//	})
//
//	http.ListenAndServe(":8080", hxkit.HTMXResponse()(mux))
//
// The middleware merges the contactsUpdated event into HX-Trigger,
// sets HX-Reselect, and disables client-side caching of the fragment.
//
// # Dynamic Choice Fields
//
// Fields in the forms package render select elements whose options reload
// over htmx when a dependency field changes:
//
//	country := hxkit.NewDynamicChoiceField("country",
//	    forms.WithChoiceURL("/choices/countries"),
//	    forms.WithChoices(countries),
//	)
//	city := hxkit.NewDynamicChoiceField("city",
//	    forms.WithChoiceURL("/choices/cities"),
//	    forms.WithDependencyFields("country"),
//	)
//
// # Packages
//
//   - pkg/htmx: wire protocol helpers (headers, event merging, redirects)
//   - pkg/hxpipe: pending-operations container and mutator registry
//   - pkg/forms: dynamic choice fields and select widgets
//   - pkg/fragments: inline message fragments
//   - middlewares: HTMXResponse, NotFoundFragment, RequestID
//   - pkg/logger: structured logging with context extractors
//
// This root package re-exports the most common types and constructors so
// simple applications import one package.
package hxkit
