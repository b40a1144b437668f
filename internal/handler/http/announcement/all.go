package announcement

import (
	"net/http"

	"noticeboard/internal/handler/http/respond"
	annUC "noticeboard/internal/usecase/announcement"
)

// AllHandler serves every announcement, newest first, without paging.
type AllHandler struct{ Svc *annUC.Service }

// ServeHTTP handles GET /announcements/all.
func (h AllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		respond.FromError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(items))
}
