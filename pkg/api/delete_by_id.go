package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"staffdir/pkg/i18n"
)

// DeleteResponse carries the toast message for a completed deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// HandleDeleteById handles DELETE requests to remove an employee.
// Removing an absent identifier is a no-op, answered with 204 so the
// operation stays idempotent. Selection pruning happens through the
// store's change notification, not here.
func (h *Handler) HandleDeleteById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	record, err := h.store.FindByID(id)
	if err != nil {
		log.Printf("INFO: Delete of absent employee %q, nothing to do", id)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.store.Remove(id)

	log.Printf("INFO: Deleted employee %q (%s)", id, record.FullName())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DeleteResponse{
		Message: i18n.FromRequest(r).Tf("toast.deleteSuccess", record.FullName()),
	})
}
