// Package hxpipe queues named response mutations during request handling and
// applies them to the response headers once the handler has finished.
//
// Handlers (or the requesting element itself, through the config query
// parameter) register operations by name against the request's pending-ops
// container; the HTMXResponse middleware drains the container and applies
// each operation to the outgoing headers in registration order. This
// decouples "what should happen to my response" from the view logic that
// produces the response body.
//
// # Registering operations
//
//	func updateContact(w http.ResponseWriter, r *http.Request) {
//		hxpipe.Register(r, map[string]any{
//			"retrigger": map[string]any{"after": "settle", "events": "contactsUpdated"},
//		})
//		// ... render the fragment
//	}
//
// Registration is right-biased: registering an operation name twice keeps
// its position but replaces its arguments.
//
// # Operation names
//
// An operation name is either bare ("reselect") or dotted
// ("myapp.highlight"). Bare names resolve against the builtin module, which
// covers the htmx response-modifying headers: reselect, retarget, reswap,
// retrigger, push_url, replace_url, redirect, refresh. Dotted names resolve
// against modules registered on the Registry; an unknown module or function
// is a hard *LookupError. A misconfigured pipeline fails loudly instead of
// silently dropping effects.
//
// # Argument shapes
//
// Operation arguments are free-form: absent, a single scalar, a positional
// list, or a keyword map. Mutators decode their own arguments through the
// Args accessor, so the same operation can be written any of these ways:
//
//	{"reselect": "#main"}
//	{"reselect": ["#main"]}
//	{"reselect": {"select": "#main"}}
package hxpipe
