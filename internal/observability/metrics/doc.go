// Package metrics provides Prometheus metrics for announcement store operations.
//
// It covers:
//   - Store query latency by operation and outcome
//   - Announcement mutations (create, update, delete) by outcome
//   - Connection pool statistics for the Postgres backend
//
// HTTP request metrics live with the HTTP middleware; pagination metrics live
// in the pagination package. All metrics are registered with the Prometheus
// default registry and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	n, err := repo.Count(ctx, keyword)
//	metrics.RecordStoreOperation("count", time.Since(start), err)
package metrics
