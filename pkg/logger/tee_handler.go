package logger

import (
	"context"
	"log/slog"
)

// teeHandler duplicates records to a primary and a secondary destination,
// typically stdout plus Sentry. Each side keeps its own level filtering, so
// the secondary can receive only warnings and errors while the primary logs
// everything.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func newTeeHandler(primary, secondary slog.Handler) slog.Handler {
	return &teeHandler{primary: primary, secondary: secondary}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.primary.Enabled(ctx, level) || h.secondary.Enabled(ctx, level)
}

// Handle delivers the record to every side that wants it. Records are cloned
// since handlers may retain them past the call.
func (h *teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	for _, side := range []slog.Handler{h.primary, h.secondary} {
		if !side.Enabled(ctx, rec.Level) {
			continue
		}
		if err := side.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newTeeHandler(h.primary.WithAttrs(attrs), h.secondary.WithAttrs(attrs))
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return newTeeHandler(h.primary.WithGroup(name), h.secondary.WithGroup(name))
}
