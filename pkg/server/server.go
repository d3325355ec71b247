// Package server assembles the HTTP surface of the directory: the
// employee API, the websocket change feed, CORS for the browser app,
// request logging and metrics. It also wires the change observers that
// keep the derived state (selection, change feed, gauges) in step with
// the record store.
package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"staffdir/pkg/api"
	"staffdir/pkg/domain"
	"staffdir/pkg/selection"
	"staffdir/pkg/ws"
)

// Server holds references to the store, router, selection tracker and
// change-feed hub.
type Server struct {
	router    *mux.Router
	handler   http.Handler
	store     domain.RecordStore
	selection *selection.Tracker
	hub       *ws.Hub
	metrics   *metrics

	subscriptions []int
}

// NewServer builds the full handler chain around the given store.
// allowedOrigins is the browser origin list for CORS; empty means
// same-origin only.
func NewServer(store domain.RecordStore, allowedOrigins []string) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		store:     store,
		selection: selection.NewTracker(),
		hub:       ws.NewHub(),
		metrics:   newMetrics(),
	}

	handler := api.NewHandler(store, s.selection)
	handler.RegisterRoutes(s.router)

	s.router.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(s.hub, w, r)
	}).Methods("GET")
	s.router.Handle("/metrics", s.metrics.handler()).Methods("GET")

	s.router.Use(requestLoggerMiddleware)
	s.router.Use(s.metrics.middleware)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	s.handler = cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type", "Accept-Language"},
	}).Handler(s.router)

	s.wireObservers()
	return s
}

// wireObservers registers the derived-state observers. Registration
// order matters: the selection prune runs before the broadcast so a
// client re-fetching on the event already sees the pruned selection.
func (s *Server) wireObservers() {
	s.subscriptions = append(s.subscriptions, s.store.Subscribe(s.pruneSelection))
	s.subscriptions = append(s.subscriptions, s.store.Subscribe(s.refreshGauges))
	s.subscriptions = append(s.subscriptions, s.store.Subscribe(s.hub.BroadcastChanged))
}

// pruneSelection drops selected identifiers that no longer exist.
// Filtering and paging never reach this path; only store mutations do.
func (s *Server) pruneSelection() {
	records := s.store.GetAll()
	valid := make([]string, 0, len(records))
	for _, rec := range records {
		valid = append(valid, rec.ID)
	}
	s.selection.Prune(valid)
}

func (s *Server) refreshGauges() {
	s.metrics.employeeCount.Set(float64(len(s.store.GetAll())))
}

// Start runs the change-feed hub loop.
func (s *Server) Start() {
	go s.hub.Run()
	s.refreshGauges()
}

// Stop detaches the observers and disconnects change-feed clients.
func (s *Server) Stop() {
	for _, id := range s.subscriptions {
		s.store.Unsubscribe(id)
	}
	s.subscriptions = nil
	s.hub.Stop()
}

// Handler exposes the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Selection exposes the tracker, mainly for tests.
func (s *Server) Selection() *selection.Tracker {
	return s.selection
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}
