package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a pagination request with structured fields.
func LogRequest(logger *slog.Logger, requestID string, c Criteria) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"keyword", c.Keyword,
		"page", c.PageNumber,
		"size", c.PageSize)
}

// LogResponse logs a computed page with the number of rows returned and the duration.
func LogResponse(logger *slog.Logger, requestID string, result PageResult, returnedCount int, duration time.Duration) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"total_records", result.TotalRecords,
		"total_pages", result.TotalPages,
		"current_page", result.CurrentPage,
		"range_start", result.RangeStart,
		"range_end", result.RangeEnd,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds())
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID string, c Criteria, err error, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"keyword", c.Keyword,
		"page", c.PageNumber,
		"size", c.PageSize,
		"error", err.Error(),
		"error_type", errorType)
}
