package api

import (
	"encoding/json"
	"log"
	"net/http"

	"staffdir/pkg/i18n"
)

// SelectionResponse is the current selection state.
type SelectionResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// ToggleRequest flips one identifier's membership.
type ToggleRequest struct {
	ID string `json:"id"`
}

// SetSelectionRequest selects or deselects many identifiers at once,
// used by the select-all checkbox over the current page.
type SetSelectionRequest struct {
	IDs      []string `json:"ids"`
	Selected bool     `json:"selected"`
}

// HandleGetSelection handles GET requests for the selection state.
func (h *Handler) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	h.writeSelection(w)
}

// HandleToggleSelection handles POST requests that flip one
// identifier's selection. The identifier does not have to belong to the
// currently displayed page; selection is independent of paging.
func (h *Handler) HandleToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		log.Printf("ERROR: Invalid toggle request: %v", err)
		WriteJSONError(w, http.StatusBadRequest, i18n.FromRequest(r).T("error.invalidBody"))
		return
	}

	h.selection.Toggle(req.ID)
	h.writeSelection(w)
}

// HandleSetSelection handles POST requests that select or deselect a
// batch of identifiers.
func (h *Handler) HandleSetSelection(w http.ResponseWriter, r *http.Request) {
	var req SetSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Invalid selection request: %v", err)
		WriteJSONError(w, http.StatusBadRequest, i18n.FromRequest(r).T("error.invalidBody"))
		return
	}

	h.selection.SetMany(req.IDs, req.Selected)
	h.writeSelection(w)
}

func (h *Handler) writeSelection(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SelectionResponse{
		IDs:   h.selection.IDs(),
		Count: h.selection.Count(),
	})
}
