package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"assemblyStatApp/internal/app/dto"
	"assemblyStatApp/internal/domain/model"
	"assemblyStatApp/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

const defaultLimit = 100

// handleRoot lists the available endpoints, mirroring the API index the
// dashboard expects.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Assembly Line Simulator API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"orders":             "/orders",
			"orders_by_customer": "/orders/customer/{name}",
			"completed_orders":   "/orders/completed",
			"incomplete_orders":  "/orders/incomplete",
			"stations":           "/stations",
			"stats":              "/stats",
			"simulation":         "/simulation/run",
			"stream":             "/stream",
		},
	})
}

// handleHealth reports liveness. A missing store is still healthy: the
// store only appears after the first simulation run.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.store.StoreExists() {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "not_initialized",
			"message":  "Database will be created on first simulation run",
		})
		return
	}
	if _, err := s.store.CountOrders(r.Context(), repository.FilterAll); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.ComputeStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromStats(stats))
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	s.listOrders(w, r, repository.FilterAll)
}

func (s *Server) handleCompletedOrders(w http.ResponseWriter, r *http.Request) {
	s.listOrders(w, r, repository.FilterCompleted)
}

func (s *Server) handleIncompleteOrders(w http.ResponseWriter, r *http.Request) {
	s.listOrders(w, r, repository.FilterIncomplete)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request, filter repository.OrderFilter) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	orders, err := s.store.ListOrders(r.Context(), limit, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (s *Server) handleOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "customer_name")
	orders, err := s.store.ListOrdersByCustomer(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	order, err := s.store.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrder(order))
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	totals, err := s.store.StationTotals(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromStations(totals))
}

func (s *Server) handleStationHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "station_name")
	records, err := s.store.StationHistory(r.Context(), name, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromStations(records))
}

func (s *Server) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	result, err := s.launcher.Run(r.Context(), req.ToModel())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromSimulationResult(result))
}

// parseLimit reads the limit query parameter, defaulting to 100.
// A malformed or non-positive value is a client error.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		writeDetail(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}

// writeError maps domain errors onto HTTP status codes. Store-missing and
// entity-missing both surface as 404 for single-entity lookups; list
// queries never reach here for a missing store.
func writeError(w http.ResponseWriter, err error) {
	var simErr *model.SimulationError
	switch {
	case errors.Is(err, model.ErrStoreUnavailable):
		writeDetail(w, http.StatusNotFound, "Database not found. Run simulation first to create database.")
	case errors.Is(err, model.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, model.ErrExecutableNotFound):
		writeDetail(w, http.StatusNotFound, "Simulation executable not found. Please build the project first.")
	case errors.Is(err, model.ErrRunInProgress):
		writeDetail(w, http.StatusConflict, "A simulation run is already in progress")
	case errors.Is(err, model.ErrSimulationTimedOut):
		writeDetail(w, http.StatusGatewayTimeout, "Simulation timed out")
	case errors.As(err, &simErr):
		writeDetail(w, http.StatusInternalServerError, "Simulation failed: "+simErr.Stderr)
	default:
		writeDetail(w, http.StatusInternalServerError, err.Error())
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
