// Package middlewares provides net/http middleware for htmx applications.
//
// # HTMX Response
//
// HTMXResponse is the orchestration point of the pending-operations
// pipeline. It installs the per-request operations container, merges in any
// operations the request self-describes via the config query parameter, and
// after the handler runs applies the accumulated operations to the response
// headers of htmx requests (with client-side caching disabled):
//
//	handler := middlewares.HTMXResponse()(mux)
//
// A request like
//
//	GET /contacts?config={"retrigger":{"events":"contactsUpdated"}}
//
// gets the contactsUpdated event merged into its HX-Trigger header without
// the contacts handler knowing anything about it.
//
// # Not Found Fragment
//
// NotFoundFragment substitutes an inline message fragment for 404 responses
// on htmx, non-boosted requests, so a missing record surfaces inside the
// page instead of a full error page landing in a fragment slot:
//
//	r.Get("/contacts/{id}", middlewares.NotFoundFragment()(contactHandler).ServeHTTP)
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. Combine
// RequestIDExtractor and HTMXExtractor with the logger package to annotate
// every log line with the request ID and htmx request metadata:
//
//	log := logger.New(
//		middlewares.RequestIDExtractor(),
//		middlewares.HTMXExtractor(),
//	)
//
// # Recommended Order
//
//	handler = middlewares.RequestID()(
//		middlewares.HTMXResponse()(
//			middlewares.NotFoundFragment()(mux),
//		),
//	)
//
// HTMXResponse must wrap NotFoundFragment so the substituted fragment still
// receives pending-operation headers.
package middlewares
