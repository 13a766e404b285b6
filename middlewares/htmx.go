package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hxkit/hxkit/internal"
	"github.com/hxkit/hxkit/pkg/htmx"
	"github.com/hxkit/hxkit/pkg/hxpipe"
	"github.com/hxkit/hxkit/pkg/logger"
)

// DefaultConfigParam is the query parameter checked for self-configuration.
const DefaultConfigParam = "config"

// hxInfoKey is the context key for htmx request metadata.
type hxInfoKey struct{}

type hxInfo struct {
	boosted bool
	target  string
	trigger string
}

// HTMXConfig configures the htmx response middleware.
type HTMXConfig struct {
	Registry    *hxpipe.Registry // mutator registry (default: hxpipe.Default())
	Logger      *slog.Logger     // dispatch failure logger (default: discard)
	ConfigParam string           // self-configuration query parameter name
}

// HTMXOption configures HTMXConfig.
type HTMXOption func(*HTMXConfig)

// WithRegistry sets the mutator registry operations dispatch against.
func WithRegistry(reg *hxpipe.Registry) HTMXOption {
	return func(cfg *HTMXConfig) {
		cfg.Registry = reg
	}
}

// WithLogger sets the logger for dispatch failures.
func WithLogger(log *slog.Logger) HTMXOption {
	return func(cfg *HTMXConfig) {
		cfg.Logger = log
	}
}

// WithConfigParam renames the self-configuration query parameter.
func WithConfigParam(name string) HTMXOption {
	return func(cfg *HTMXConfig) {
		cfg.ConfigParam = name
	}
}

// HTMXResponse returns middleware that post-processes htmx responses.
//
// For every request it installs the pending-operations container and merges
// in any operations the request self-describes through the config query
// parameter. For htmx requests it additionally disables client-side caching
// and, just before the first byte of the response leaves, dispatches the
// accumulated operations against the response headers in registration order.
//
// Handlers must register operations before writing the response body;
// headers are immutable once the body streams.
//
// A dispatch failure is a misconfiguration and fails loudly: remaining
// operations are aborted, the error is logged, and if the handler has not
// written yet the response becomes a 500.
func HTMXResponse(opts ...HTMXOption) func(http.Handler) http.Handler {
	cfg := &HTMXConfig{
		Registry:    hxpipe.Default(),
		Logger:      logger.NewNope(),
		ConfigParam: DefaultConfigParam,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := hxpipe.WithOps(r.Context())
			if htmx.IsHTMX(r) {
				ctx = context.WithValue(ctx, hxInfoKey{}, hxInfo{
					boosted: htmx.IsBoosted(r),
					target:  r.Header.Get(htmx.HeaderHXTarget),
					trigger: r.Header.Get(htmx.HeaderHXTriggerName),
				})
			}
			r = r.WithContext(ctx)

			// The requesting element may describe its own post-processing;
			// malformed config is ignored rather than surfaced to the client.
			if raw := r.URL.Query().Get(cfg.ConfigParam); raw != "" {
				if ops := hxpipe.ParseConfig(raw); ops != nil {
					hxpipe.Register(r, ops)
				}
			}

			if !htmx.IsHTMX(r) {
				next.ServeHTTP(w, r)
				return
			}

			ww := internal.NewResponseWriter(w)

			var applied bool
			var applyErr error
			apply := func() error {
				if applied {
					return nil
				}
				applied = true
				ww.Header().Set("Cache-Control", htmx.CacheControlNoStore)
				if ops, ok := hxpipe.FromContext(r.Context()); ok && ops.Len() > 0 {
					return cfg.Registry.Apply(ww.Header(), ops)
				}
				return nil
			}
			ww.OnBeforeWrite(func() {
				applyErr = apply()
			})

			next.ServeHTTP(ww, r)

			switch {
			case applyErr != nil:
				// Response already in flight; nothing to unsend.
				cfg.Logger.ErrorContext(r.Context(), "htmx response processing failed",
					"error", applyErr,
					"path", r.URL.Path,
				)
			case !ww.Written():
				if err := apply(); err != nil {
					cfg.Logger.ErrorContext(r.Context(), "htmx response processing failed",
						"error", err,
						"path", r.URL.Path,
					)
					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}
		})
	}
}

// HTMXExtractor returns a ContextExtractor for use with the logger package.
// Requests passing through HTMXResponse log an "htmx" group with the
// boosted flag and the originating target/trigger element names.
func HTMXExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		info, ok := ctx.Value(hxInfoKey{}).(hxInfo)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("htmx",
			slog.Bool("boosted", info.boosted),
			slog.String("target", info.target),
			slog.String("trigger", info.trigger),
		), true
	}
}
