// Package htmx implements the htmx wire contract: request detection, response
// header constants, and composable response-header mutators.
//
// HTMX drives partial-page updates from HTML attributes and interprets a
// fixed set of response headers. This package treats those headers as a
// protocol: constants for every HX-* header, predicates for incoming
// requests, and functions that write the outgoing directives.
//
// # Request Detection
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		if htmx.IsHTMX(r) && !htmx.IsBoosted(r) {
//			// render a fragment instead of a full page
//		}
//	}
//
// # Header Mutators
//
// Mutators operate on http.Header so they compose regardless of where the
// header lives (a live ResponseWriter, a buffered response, a test recorder):
//
//	htmx.Reselect(w.Header(), "#main")
//	htmx.Reswap(w.Header(), htmx.SwapAfterBegin)
//	_ = htmx.Retrigger(w.Header(), htmx.AfterSettle, htmx.TokenString("contactsUpdated"))
//
// # Trigger Events
//
// Trigger headers accept either a compact comma-separated name list or a JSON
// object carrying event details. ParseEvents normalizes any accepted input
// shape (TokenString, TokenList, EventMap, nil) into an insertion-ordered
// Events set, and MergeEvents combines an existing header value with new
// events, right-biased. Retrigger uses the same merge so repeated calls
// accumulate events instead of clobbering the header:
//
//	_ = htmx.Retrigger(h, htmx.AfterReceive, htmx.TokenString("foo")) // HX-Trigger: foo
//	_ = htmx.Retrigger(h, htmx.AfterReceive, htmx.TokenString("bar")) // HX-Trigger: foo,bar
//
// # Navigation
//
// Redirect, Location and Refresh helpers branch on IsHTMX: htmx requests get
// the corresponding HX-* header with a 200 status (the client performs the
// navigation), regular requests get a standard HTTP redirect.
package htmx
