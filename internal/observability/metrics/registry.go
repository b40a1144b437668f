package metrics

import (
	"database/sql"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// StoreOperationDuration tracks announcement store call latency.
	// Labels: operation (count, fetch_range, list, get, create, update, delete), result
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "announcement_store_operation_duration_seconds",
			Help:    "Announcement store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation", "result"},
	)

	// MutationsTotal counts create, update and delete calls by outcome.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "announcement_mutations_total",
			Help: "Total number of announcement mutations",
		},
		[]string{"operation", "result"},
	)
)

// RegisterDBStats exposes sql.DBStats (open, in-use, idle, wait counts) for db.
// It is a no-op when the collector is already registered.
func RegisterDBStats(reg prometheus.Registerer, db *sql.DB, dbName string) error {
	err := reg.Register(collectors.NewDBStatsCollector(db, dbName))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}
