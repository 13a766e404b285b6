// Package sanitizer strips unsafe HTML from message content before it is
// swapped into the page.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	messagePolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// messagePolicy allows the basic formatting inline messages use
		messagePolicy = bluemonday.NewPolicy()
		messagePolicy.AllowStandardURLs()
		messagePolicy.AllowElements(
			"p", "br", "span",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre",
		)
		messagePolicy.AllowAttrs("href").OnElements("a")
		messagePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeMessage allows safe formatting tags (p, a, strong, em, lists, code)
// and strips everything dangerous: scripts, event handlers, javascript: URLs.
// Use for message content that may contain markup.
func SanitizeMessage(s string) string {
	initPolicies()
	return messagePolicy.Sanitize(s)
}

// StripHTML removes all HTML, returning plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
