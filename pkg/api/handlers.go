package api

import (
	"staffdir/pkg/domain"
	"staffdir/pkg/selection"
)

// DefaultPageSize matches the directory's list view.
const DefaultPageSize = 10

// Handler provides the HTTP handlers of the employee API. It is the
// command layer: business-rule validation happens here, before the
// record store is touched.
type Handler struct {
	store     domain.RecordStore
	selection *selection.Tracker
}

// NewHandler creates an API handler with dependency injection.
func NewHandler(store domain.RecordStore, tracker *selection.Tracker) *Handler {
	return &Handler{
		store:     store,
		selection: tracker,
	}
}
