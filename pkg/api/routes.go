package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Employee listing and creation
	router.HandleFunc("/api/employees", h.HandleList).Methods("GET")
	router.HandleFunc("/api/employees", h.HandleCreate).Methods("POST")

	// Employee operations (by ID)
	router.HandleFunc("/api/employees/{id}", h.HandleGetById).Methods("GET")
	router.HandleFunc("/api/employees/{id}", h.HandleReplaceById).Methods("PUT") // Complete replacement
	router.HandleFunc("/api/employees/{id}", h.HandleDeleteById).Methods("DELETE")

	// Selection state shared by the table and list views
	router.HandleFunc("/api/selection", h.HandleGetSelection).Methods("GET")
	router.HandleFunc("/api/selection/toggle", h.HandleToggleSelection).Methods("POST")
	router.HandleFunc("/api/selection/all", h.HandleSetSelection).Methods("POST")

	router.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
}
