package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"staffdir/pkg/i18n"
)

// HandleGetById handles GET requests to retrieve a specific employee by ID
func (h *Handler) HandleGetById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	record, err := h.store.FindByID(id)
	if err != nil {
		log.Printf("WARN: Employee %q not found: %v", id, err)
		WriteJSONError(w, http.StatusNotFound, i18n.FromRequest(r).T("error.notFound"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
