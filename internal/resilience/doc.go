// Package resilience groups the fault tolerance helpers used around the announcement store.
//
// The package supports:
//   - A circuit breaker in front of every store query, so a failing database is
//     reported as unavailable instead of piling up slow requests
//   - Retry with exponential backoff and jitter for the startup connectivity check
//
// Usage Example:
//
//	guarded := circuitbreaker.NewDBCircuitBreaker(sqlDB)
//	repo := postgres.NewAnnouncementRepo(guarded)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return sqlDB.PingContext(ctx)
//	})
package resilience
