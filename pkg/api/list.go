package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"staffdir/pkg/domain"
	"staffdir/pkg/paginate"
	"staffdir/pkg/query"
)

// ListResponse is one page of the filtered directory plus everything
// the pagination bar needs to render itself.
type ListResponse struct {
	Items      []domain.Employee `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
	Markers    []int             `json:"markers"`
}

// HandleList handles GET requests for the filtered, paginated employee
// listing. It runs the view pipeline over the latest snapshot:
// filter, then paginate, then page markers. Out-of-range page numbers
// are clamped, never rejected.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page := intQueryParam(r, "page", 1)
	pageSize := intQueryParam(r, "pageSize", DefaultPageSize)

	filtered := query.Filter(h.store.GetAll(), search)
	result := paginate.Paginate(filtered, pageSize, page)

	log.Printf("INFO: handleList search=%q page=%d -> %d/%d items", search, result.ClampedPage, len(result.Items), len(filtered))

	response := ListResponse{
		Items:      result.Items,
		Page:       result.ClampedPage,
		PageSize:   pageSize,
		TotalPages: result.TotalPages,
		TotalItems: len(filtered),
		Markers:    paginate.Markers(result.TotalPages, result.ClampedPage),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// intQueryParam reads a positive integer query parameter, falling back
// to def for missing or non-numeric values. Range clamping is the
// pagination engine's job, not the parser's.
func intQueryParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
