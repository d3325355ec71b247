package api

import (
	"encoding/json"
	"log"
	"net/http"

	"staffdir/pkg/domain"
	"staffdir/pkg/i18n"
)

// MutationResponse carries the stored record and the localized toast
// message composed from the operation's outcome and the record's name.
type MutationResponse struct {
	Employee domain.Employee `json:"employee"`
	Message  string          `json:"message"`
}

// HandleCreate handles POST requests to add an employee. Validation
// happens here, before the store is touched; the identifier is
// assigned by the store.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromRequest(r)

	var input domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("ERROR: Decoding body failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, loc.T("error.invalidBody"))
		return
	}

	if status, key := h.validateEmployee(input, ""); status != 0 {
		log.Printf("WARN: Create rejected (%s)", key)
		WriteJSONError(w, status, loc.T(key))
		return
	}

	record, err := h.store.Add(input)
	if err != nil {
		log.Printf("ERROR: Add failed: %v", err)
		WriteJSONError(w, http.StatusInternalServerError, loc.T("error.internal"))
		return
	}

	log.Printf("INFO: Created employee %q (%s)", record.ID, record.FullName())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(MutationResponse{
		Employee: record,
		Message:  loc.Tf("toast.createSuccess", record.FullName()),
	})
}
