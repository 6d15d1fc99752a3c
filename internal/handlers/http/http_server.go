package http

import (
	"context"
	"net/http"
	"time"

	"assemblyStatApp/internal/domain/repository"
	"assemblyStatApp/internal/domain/useCases"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Server represents an HTTP server with all routes configured
type Server struct {
	store    repository.StoreReader
	stats    useCases.StatisticsService
	launcher useCases.SimulationRunner
	stream   useCases.StreamPublisher
	router   chi.Router
	server   *http.Server
}

// CORSOptions selects between wildcard mode (any origin, no credentials)
// and explicit mode (known origins, credentials allowed).
type CORSOptions struct {
	Wildcard bool
	Origins  []string
}

// NewServer creates a new HTTP server with configured routes
func NewServer(addr string, store repository.StoreReader, stats useCases.StatisticsService,
	launcher useCases.SimulationRunner, stream useCases.StreamPublisher, corsOpts CORSOptions) *Server {

	router := chi.NewRouter()

	s := &Server{
		store:    store,
		stats:    stats,
		launcher: launcher,
		stream:   stream,
		router:   router,
		server: &http.Server{
			Addr:        addr,
			Handler:     router,
			ReadTimeout: 15 * time.Second,
			// Safe for /stream: the websocket upgrade hijacks the
			// connection and clears its deadlines
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	router.Use(corsMiddleware(corsOpts))
	s.registerRoutes()

	return s
}

func corsMiddleware(opts CORSOptions) func(http.Handler) http.Handler {
	if opts.Wildcard {
		// Browsers reject credentialed requests against a literal "*",
		// so wildcard mode keeps credentials off
		return cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
		})
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   opts.Origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}

// registerRoutes configures all HTTP routes
func (s *Server) registerRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/stats", s.handleStats)

	s.router.Get("/orders", s.handleOrders)
	s.router.Get("/orders/completed", s.handleCompletedOrders)
	s.router.Get("/orders/incomplete", s.handleIncompleteOrders)
	s.router.Get("/orders/customer/{customer_name}", s.handleOrdersByCustomer)
	s.router.Get("/orders/{order_id}", s.handleOrder)

	s.router.Get("/stations", s.handleStations)
	s.router.Get("/stations/{station_name}/history", s.handleStationHistory)

	s.router.Post("/simulation/run", s.handleRunSimulation)

	// WebSocket endpoint
	s.router.Get("/stream", s.stream.Handler())
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.stream.Close()
	return s.server.Shutdown(ctx)
}
