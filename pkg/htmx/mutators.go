package htmx

import (
	"fmt"
	"net/http"
)

// Trigger phases accepted by Retrigger and TriggerHeader.
const (
	AfterReceive = ""       // trigger as soon as the response is received
	AfterSettle  = "settle" // trigger after the settle phase
	AfterSwap    = "swap"   // trigger after the swap completes
)

// TriggerHeader returns the response header used to trigger events at the
// given phase. Phases other than AfterReceive, AfterSettle and AfterSwap are
// a usage error.
func TriggerHeader(after string) (string, error) {
	switch after {
	case AfterReceive:
		return HeaderHXTrigger, nil
	case AfterSettle:
		return HeaderHXTriggerAfterSettle, nil
	case AfterSwap:
		return HeaderHXTriggerAfterSwap, nil
	default:
		return "", fmt.Errorf("htmx: unknown trigger phase %q", after)
	}
}

// Reselect sets the HX-Reselect header, choosing which part of the response
// is swapped in. Overrides any hx-select on the triggering element.
func Reselect(h http.Header, selector string) {
	h.Set(HeaderHXReselect, selector)
}

// Retarget sets the HX-Retarget header to change the swap target element.
func Retarget(h http.Header, selector string) {
	h.Set(HeaderHXRetarget, selector)
}

// Reswap sets the HX-Reswap header to change the swap strategy.
func Reswap(h http.Header, strategy SwapStrategy) {
	h.Set(HeaderHXReswap, string(strategy))
}

// PushURL sets the HX-Push-Url header to push a new URL into browser history.
// Pass "false" to prevent the URL update.
func PushURL(h http.Header, url string) {
	h.Set(HeaderHXPushURL, url)
}

// ReplaceURL sets the HX-Replace-Url header to replace the current URL.
// Pass "false" to prevent the URL replacement.
func ReplaceURL(h http.Header, url string) {
	h.Set(HeaderHXReplaceURL, url)
}

// Retrigger merges events into the trigger header for the given phase.
// Any events already present on the header are kept; on name collision the
// new event's detail wins.
func Retrigger(h http.Header, after string, events TriggerSpec) error {
	header, err := TriggerHeader(after)
	if err != nil {
		return err
	}

	merged, err := MergeEvents(TokenString(h.Get(header)), events)
	if err != nil {
		return err
	}

	h.Set(header, merged)
	return nil
}

// ClientRedirect sets the HX-Redirect header for a client-side redirect.
// Unlike Redirect it operates on headers only and never falls back to an
// HTTP redirect; use it when composing response mutations.
func ClientRedirect(h http.Header, url string) {
	h.Set(HeaderHXRedirect, url)
}

// ClientRefresh sets the HX-Refresh header to force a full page reload.
func ClientRefresh(h http.Header) {
	h.Set(HeaderHXRefresh, "true")
}
