// Package tracing wires OpenTelemetry into the service.
//
// InitProvider installs an SDK tracer provider and the W3C trace-context
// propagator. Middleware opens a server span per HTTP request and StartSpan
// opens child spans for use-case operations.
//
// Example usage:
//
//	shutdown := tracing.InitProvider("noticeboard", version)
//	defer func() { _ = shutdown(context.Background()) }()
//
//	func (s *Service) Page(ctx context.Context, c pagination.Criteria) (...) {
//	    ctx, span := tracing.StartSpan(ctx, "announcement.Page")
//	    defer span.End()
//	}
package tracing
