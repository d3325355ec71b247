package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"staffdir/pkg/domain"
	"staffdir/pkg/i18n"
)

// HandleReplaceById handles PUT requests to replace an employee
// entirely. The identifier comes from the path; an ID in the body is
// ignored. This is a full replacement, never a merge.
func (h *Handler) HandleReplaceById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	loc := i18n.FromRequest(r)

	var input domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, loc.T("error.invalidBody"))
		return
	}
	input.ID = id

	if status, key := h.validateEmployee(input, id); status != 0 {
		log.Printf("WARN: Update of %q rejected (%s)", id, key)
		WriteJSONError(w, status, loc.T(key))
		return
	}

	if err := h.store.Update(input); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Printf("WARN: Update failed, employee %q not found", id)
			WriteJSONError(w, http.StatusNotFound, loc.T("error.notFound"))
			return
		}
		log.Printf("ERROR: Update of %q failed: %v", id, err)
		WriteJSONError(w, http.StatusInternalServerError, loc.T("error.internal"))
		return
	}

	log.Printf("INFO: Updated employee %q (%s)", id, input.FullName())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MutationResponse{
		Employee: input,
		Message:  loc.Tf("toast.updateSuccess", input.FullName()),
	})
}
