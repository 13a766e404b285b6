package middlewares

import (
	"net/http"

	"github.com/hxkit/hxkit/internal"
	"github.com/hxkit/hxkit/pkg/fragments"
	"github.com/hxkit/hxkit/pkg/htmx"
)

// DefaultNotFoundMessage is shown when a handler reports a missing resource.
const DefaultNotFoundMessage = "One or more of the requested resources was not found"

// NotFoundConfig configures the 404-fragment middleware.
type NotFoundConfig struct {
	Message string // fragment message text
	Style   string // fragment css classes
}

// NotFoundOption configures NotFoundConfig.
type NotFoundOption func(*NotFoundConfig)

// WithNotFoundMessage sets the fragment message text.
func WithNotFoundMessage(msg string) NotFoundOption {
	return func(cfg *NotFoundConfig) {
		cfg.Message = msg
	}
}

// WithNotFoundStyle sets the fragment css classes.
func WithNotFoundStyle(style string) NotFoundOption {
	return func(cfg *NotFoundConfig) {
		cfg.Style = style
	}
}

// NotFoundFragment returns middleware that substitutes an inline message
// fragment for 404 responses on htmx, non-boosted requests. A missing record
// then shows up as a message inside the page instead of a full error page
// swapped into a fragment slot. Boosted and regular requests pass through
// untouched, as do all non-404 responses.
//
// Wrap it around handlers, not the router: a path the router cannot resolve
// should keep its ordinary 404 page.
func NotFoundFragment(opts ...NotFoundOption) func(http.Handler) http.Handler {
	cfg := &NotFoundConfig{
		Message: DefaultNotFoundMessage,
		Style:   "alert-error",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !htmx.IsHTMX(r) || htmx.IsBoosted(r) {
				next.ServeHTTP(w, r)
				return
			}

			buf := internal.NewBufferedResponseWriter()
			next.ServeHTTP(buf, r)

			if buf.Status() != http.StatusNotFound {
				_ = buf.FlushTo(w)
				return
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_ = fragments.Render(w, cfg.Message, cfg.Style, "")
		})
	}
}
