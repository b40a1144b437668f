package announcement

import (
	"encoding/json"
	"fmt"
	"net/http"

	"noticeboard/internal/handler/http/pathutil"
	"noticeboard/internal/handler/http/respond"
	annUC "noticeboard/internal/usecase/announcement"
)

type UpdateHandler struct{ Svc *annUC.Service }

// ServeHTTP handles PUT /announcements/{id}. Only title and contents change.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := h.Svc.Update(r.Context(), annUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Contents: req.Contents,
	}); err != nil {
		respond.FromError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
