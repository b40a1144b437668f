// Package observability groups the logging, metrics and tracing infrastructure.
//
// Subpackages:
//   - logging: slog JSON/text loggers with request-scoped context propagation
//   - metrics: Prometheus counters and histograms for announcement store operations
//   - tracing: OpenTelemetry provider setup, HTTP middleware and span helpers
//
// Example usage:
//
//	logger := logging.NewLogger(cfg.Log.Level)
//	slog.SetDefault(logger)
//
//	shutdown := tracing.InitProvider("noticeboard", version)
//	defer func() { _ = shutdown(ctx) }()
package observability
