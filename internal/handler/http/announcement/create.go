package announcement

import (
	"encoding/json"
	"fmt"
	"net/http"

	"noticeboard/internal/handler/http/respond"
	annUC "noticeboard/internal/usecase/announcement"
)

type CreateHandler struct{ Svc *annUC.Service }

// ServeHTTP handles POST /announcements.
// On success it answers 201 with the stored announcement and a Location header.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	a, err := h.Svc.Create(r.Context(), annUC.CreateInput{
		OwnerID:  req.OwnerID,
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		respond.FromError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/announcements/%d", a.ID))
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
