// Package logger provides structured slog loggers with per-request context
// attribute extraction and optional Sentry delivery.
//
// Context extractors let request-scoped values (request IDs, htmx request
// metadata set by the middlewares package) appear on every log line without
// threading the logger through handler signatures:
//
//	log := logger.New(middlewares.RequestIDExtractor(), middlewares.HTMXExtractor())
//	log.InfoContext(r.Context(), "choices reloaded", "count", n)
//
// NewWithSentry mirrors New but also forwards warnings and errors to Sentry
// when a DSN is configured; without a DSN it degrades to stdout-only.
package logger
