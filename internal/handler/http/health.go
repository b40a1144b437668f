// Package http provides HTTP handlers and middleware for the noticeboard API.
// It includes health check endpoints, metrics collection, rate limiting and the
// middleware chain shared by the announcement handlers.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Check status values.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// DBProbe is the part of *sql.DB the health checks use.
type DBProbe interface {
	PingContext(ctx context.Context) error
	Stats() sql.DBStats
}

// BreakerProbe reports the state of the store circuit breaker.
type BreakerProbe interface {
	State() gobreaker.State
}

// HealthHandler handles health check endpoint requests.
// It checks database connectivity, pool statistics and the store circuit breaker.
// With the in-memory backend DB stays nil and InMemory is set.
type HealthHandler struct {
	DB       DBProbe
	Breaker  BreakerProbe
	InMemory bool
	Version  string
}

// ServeHTTP returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	switch {
	case h.DB != nil:
		checks["database"] = h.checkDatabase(ctx)
	case h.InMemory:
		checks["database"] = CheckStatus{Status: StatusHealthy, Message: "in-memory store"}
	default:
		checks["database"] = CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
	}
	if checks["database"].Status == StatusUnhealthy {
		allHealthy = false
	}

	if h.Breaker != nil {
		cb := h.checkBreaker()
		checks["circuit_breaker"] = cb
		if cb.Status == StatusUnhealthy {
			allHealthy = false
		}
	}

	// degraded is a warning, not a failure
	status := StatusHealthy
	statusCode := http.StatusOK
	if !allHealthy {
		status = StatusUnhealthy
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}

// checkDatabase pings the database and reports connection pool statistics.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  StatusUnhealthy,
			Message: "ping failed",
		}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	// MaxOpenConnections 0 means unlimited; utilization is undefined
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilizationPercent := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilizationPercent

	if utilizationPercent >= 80.0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: StatusHealthy, Details: details}
}

// checkBreaker maps closed to healthy, half-open to degraded and open to unhealthy.
func (h *HealthHandler) checkBreaker() CheckStatus {
	state := h.Breaker.State()
	details := map[string]any{"state": state.String()}
	switch state {
	case gobreaker.StateOpen:
		return CheckStatus{Status: StatusUnhealthy, Message: "store circuit open", Details: details}
	case gobreaker.StateHalfOpen:
		return CheckStatus{Status: StatusDegraded, Message: "store circuit probing", Details: details}
	default:
		return CheckStatus{Status: StatusHealthy, Details: details}
	}
}

// ReadyHandler handles readiness probe requests.
// It reports ready when the store can take traffic.
type ReadyHandler struct {
	DB       DBProbe
	Breaker  BreakerProbe
	InMemory bool
}

// ServeHTTP returns 200 OK if ready, or 503 Service Unavailable otherwise.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	switch {
	case h.DB == nil && h.InMemory:
		// nothing to ping
	case h.DB == nil:
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	default:
		if err := h.DB.PingContext(ctx); err != nil {
			http.Error(w, "database not ready", http.StatusServiceUnavailable)
			return
		}
	}

	if h.Breaker != nil && h.Breaker.State() == gobreaker.StateOpen {
		http.Error(w, "store circuit open", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
