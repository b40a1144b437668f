package announcement

import (
	"net/http"

	"noticeboard/internal/common/pagination"
	"noticeboard/internal/handler/http/respond"
	annUC "noticeboard/internal/usecase/announcement"
)

// NavHandler serves only the navigation tokens for a listing.
type NavHandler struct {
	Svc           *annUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP handles GET /announcements/nav?q=&page=&size=.
// The body is {"nav": ["<", "11", ..., "20", ">"]}.
func (h NavHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	criteria, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	tokens, err := h.Svc.PageNavigation(r.Context(), criteria)
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, NavResponse{Nav: tokens})
}
