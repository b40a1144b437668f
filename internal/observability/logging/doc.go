// Package logging builds the service's slog loggers and carries a
// request-scoped logger through the request context.
//
//	logger := logging.NewLogger(cfg.Log.Level)
//	handler = logging.Middleware(logger)(handler)
//
//	// inside a handler
//	logging.FromContext(r.Context()).Info("announcement created", slog.Int64("id", a.ID))
package logging
