package announcement

import (
	"log/slog"
	"net/http"
	"time"

	"noticeboard/internal/common/pagination"
	"noticeboard/internal/handler/http/requestid"
	"noticeboard/internal/handler/http/respond"
	"noticeboard/internal/observability/logging"
	annUC "noticeboard/internal/usecase/announcement"
)

// ListHandler serves one page of announcements with its pagination metadata.
type ListHandler struct {
	Svc           *annUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP handles GET /announcements?q=&page=&size=.
// A non-integer page or size, or a size outside 1..MaxPageSize, is a 400.
// Any integer page is clamped into range.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	reqID := requestid.FromContext(ctx)
	logger := h.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	criteria, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		pagination.RecordRequest(http.StatusBadRequest, criteria.PageNumber)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pagination.LogRequest(logger, reqID, criteria)

	page, err := h.Svc.Page(ctx, criteria)
	if err != nil {
		code := respond.StatusFor(err)
		pagination.LogError(logger, reqID, criteria, err, errorType(code))
		pagination.RecordRequest(code, criteria.PageNumber)
		respond.FromError(w, err)
		return
	}

	response := pagination.NewResponse(toDTOs(page.Items), pagination.NewMetadata(page.Result, criteria.PageSize))

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, page.Result.CurrentPage)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, reqID, page.Result, len(page.Items), duration)

	respond.JSON(w, http.StatusOK, response)
}

func errorType(code int) string {
	switch {
	case code == http.StatusBadRequest:
		return "validation"
	case code == http.StatusServiceUnavailable:
		return "database"
	default:
		return "internal"
	}
}
