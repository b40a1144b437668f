package announcement

import (
	"log/slog"
	"net/http"

	"noticeboard/internal/common/pagination"
	annUC "noticeboard/internal/usecase/announcement"
)

// Register registers all announcement HTTP handlers with the given mux.
// Literal segments (nav, all) take precedence over the {id} wildcard.
func Register(mux *http.ServeMux, svc *annUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /announcements", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /announcements/nav", NavHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET /announcements/all", AllHandler{Svc: svc})
	mux.Handle("GET /announcements/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /announcements", CreateHandler{Svc: svc})
	mux.Handle("PUT /announcements/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /announcements/{id}", DeleteHandler{Svc: svc})
}
