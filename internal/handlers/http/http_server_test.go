package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	httphandlers "assemblyStatApp/internal/handlers/http"

	"assemblyStatApp/internal/domain/model"
	"assemblyStatApp/internal/domain/service"
	"assemblyStatApp/internal/handlers/websocket"
	"assemblyStatApp/internal/infrastructure/storage"
	"assemblyStatApp/pkg/utils"
)

// stubRunner lets handler tests choose the launcher outcome.
type stubRunner struct {
	result *model.SimulationResult
	err    error
	gotReq *model.SimulationRequest
}

func (r *stubRunner) Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationResult, error) {
	r.gotReq = &req
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func newTestServer(t *testing.T, seeded bool, runner *stubRunner) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "assembly_line.db")
	if seeded {
		if err := utils.SeedStore(path, utils.SampleOrders(), utils.SampleStations()); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}

	store := storage.NewSQLiteRepository(path)
	stats := service.NewStatsService(store, store)
	publisher := websocket.NewStatsStreamPublisher(stats, time.Hour, true, nil)
	if runner == nil {
		runner = &stubRunner{result: &model.SimulationResult{RunID: "test", Status: "success"}}
	}

	srv := httphandlers.NewServer(":0", store, stats, runner, publisher,
		httphandlers.CORSOptions{Wildcard: true})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d for %s, got %d", wantStatus, url, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	ts := newTestServer(t, true, nil)

	var stats struct {
		TotalOrders       int     `json:"total_orders"`
		CompletedOrders   int     `json:"completed_orders"`
		IncompleteOrders  int     `json:"incomplete_orders"`
		CompletionRate    float64 `json:"completion_rate"`
		MostActiveStation *string `json:"most_active_station"`
	}
	getJSON(t, ts.URL+"/stats", http.StatusOK, &stats)

	if stats.TotalOrders != 3 || stats.CompletedOrders != 2 || stats.IncompleteOrders != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.CompletionRate != 66.67 {
		t.Errorf("expected completion rate 66.67, got %v", stats.CompletionRate)
	}
	if stats.MostActiveStation == nil || *stats.MostActiveStation != "Frame Assembly" {
		t.Errorf("unexpected most active station: %v", stats.MostActiveStation)
	}
}

func TestStatsEndpointMissingStore(t *testing.T) {
	ts := newTestServer(t, false, nil)

	var stats struct {
		TotalOrders       int     `json:"total_orders"`
		CompletionRate    float64 `json:"completion_rate"`
		MostActiveStation *string `json:"most_active_station"`
	}
	getJSON(t, ts.URL+"/stats", http.StatusOK, &stats)

	if stats.TotalOrders != 0 || stats.CompletionRate != 0.0 || stats.MostActiveStation != nil {
		t.Errorf("expected zero snapshot for missing store, got %+v", stats)
	}
}

func TestOrderEndpoints(t *testing.T) {
	ts := newTestServer(t, true, nil)

	var orders []map[string]any
	getJSON(t, ts.URL+"/orders", http.StatusOK, &orders)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}

	orders = nil
	getJSON(t, ts.URL+"/orders/completed", http.StatusOK, &orders)
	if len(orders) != 2 {
		t.Errorf("expected 2 completed orders, got %d", len(orders))
	}

	orders = nil
	getJSON(t, ts.URL+"/orders/incomplete", http.StatusOK, &orders)
	if len(orders) != 1 {
		t.Errorf("expected 1 incomplete order, got %d", len(orders))
	}

	orders = nil
	getJSON(t, ts.URL+"/orders/customer/Chloe", http.StatusOK, &orders)
	if len(orders) != 2 {
		t.Errorf("expected 2 orders for Chloe, got %d", len(orders))
	}

	orders = nil
	getJSON(t, ts.URL+"/orders?limit=1", http.StatusOK, &orders)
	if len(orders) != 1 {
		t.Errorf("expected limit=1 to return 1 order, got %d", len(orders))
	}

	var order map[string]any
	getJSON(t, ts.URL+"/orders/ORD-001", http.StatusOK, &order)
	if order["customer_name"] != "Chloe" {
		t.Errorf("unexpected order payload: %v", order)
	}

	getJSON(t, ts.URL+"/orders/ORD-999", http.StatusNotFound, nil)
}

func TestMissingStoreAsymmetry(t *testing.T) {
	ts := newTestServer(t, false, nil)

	// List endpoints hide the missing store behind empty results
	var orders []map[string]any
	getJSON(t, ts.URL+"/orders", http.StatusOK, &orders)
	if len(orders) != 0 {
		t.Errorf("expected empty list for missing store, got %d orders", len(orders))
	}

	var stations []map[string]any
	getJSON(t, ts.URL+"/stations", http.StatusOK, &stations)
	if len(stations) != 0 {
		t.Errorf("expected empty station list for missing store, got %d", len(stations))
	}

	// Single-entity lookups surface it as not-found
	getJSON(t, ts.URL+"/orders/ORD-001", http.StatusNotFound, nil)
}

func TestInvalidLimit(t *testing.T) {
	ts := newTestServer(t, true, nil)
	getJSON(t, ts.URL+"/orders?limit=banana", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/orders?limit=-5", http.StatusBadRequest, nil)
}

func TestStationEndpoints(t *testing.T) {
	ts := newTestServer(t, true, nil)

	var stations []map[string]any
	getJSON(t, ts.URL+"/stations", http.StatusOK, &stations)
	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(stations))
	}
	if stations[0]["station_name"] != "Frame Assembly" {
		t.Errorf("expected busiest station first, got %v", stations[0]["station_name"])
	}
	if stations[0]["items_processed"] != float64(7) {
		t.Errorf("expected 7 items processed, got %v", stations[0]["items_processed"])
	}

	var history []map[string]any
	getJSON(t, ts.URL+"/stations/Paint Shop/history", http.StatusOK, &history)
	if len(history) != 2 {
		t.Errorf("expected 2 snapshots, got %d", len(history))
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, true, nil)

	var health map[string]string
	getJSON(t, ts.URL+"/health", http.StatusOK, &health)
	if health["status"] != "healthy" || health["database"] != "connected" {
		t.Errorf("unexpected health payload: %v", health)
	}
}

func TestHealthEndpointMissingStore(t *testing.T) {
	ts := newTestServer(t, false, nil)

	var health map[string]string
	getJSON(t, ts.URL+"/health", http.StatusOK, &health)
	if health["status"] != "healthy" || health["database"] != "not_initialized" {
		t.Errorf("unexpected health payload: %v", health)
	}
}

func TestRootEndpoint(t *testing.T) {
	ts := newTestServer(t, false, nil)

	var root map[string]any
	getJSON(t, ts.URL+"/", http.StatusOK, &root)
	if root["message"] != "Assembly Line Simulator API" {
		t.Errorf("unexpected root payload: %v", root)
	}
	if _, ok := root["endpoints"].(map[string]any); !ok {
		t.Errorf("expected endpoint map in root payload")
	}
}

func TestRunSimulationEndpoint(t *testing.T) {
	runner := &stubRunner{result: &model.SimulationResult{RunID: "run-1", Status: "success", Output: "ok"}}
	ts := newTestServer(t, false, runner)

	body := bytes.NewBufferString(`{"stations_file_1": "MyStations.txt"}`)
	resp, err := http.Post(ts.URL+"/simulation/run", "application/json", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["status"] != "success" || result["run_id"] != "run-1" {
		t.Errorf("unexpected result payload: %v", result)
	}

	// Named file passed through, omitted fields defaulted
	if runner.gotReq.StationsFile1 != "MyStations.txt" {
		t.Errorf("expected custom stations file, got %q", runner.gotReq.StationsFile1)
	}
	if runner.gotReq.CustomerOrdersFile != "data/CustomerOrders.txt" {
		t.Errorf("expected default orders file, got %q", runner.gotReq.CustomerOrdersFile)
	}
}

func TestRunSimulationEmptyBodyUsesDefaults(t *testing.T) {
	runner := &stubRunner{result: &model.SimulationResult{RunID: "run-2", Status: "success"}}
	ts := newTestServer(t, false, runner)

	resp, err := http.Post(ts.URL+"/simulation/run", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if runner.gotReq.StationsFile1 != "data/Stations1.txt" {
		t.Errorf("expected default stations file, got %q", runner.gotReq.StationsFile1)
	}
}

func TestRunSimulationErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{model.ErrExecutableNotFound, http.StatusNotFound},
		{model.ErrRunInProgress, http.StatusConflict},
		{model.ErrSimulationTimedOut, http.StatusGatewayTimeout},
		{&model.SimulationError{ExitCode: 1, Stderr: "boom"}, http.StatusInternalServerError},
	}

	for _, c := range cases {
		ts := newTestServer(t, false, &stubRunner{err: c.err})
		resp, err := http.Post(ts.URL+"/simulation/run", "application/json", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != c.want {
			t.Errorf("error %v: expected status %d, got %d", c.err, c.want, resp.StatusCode)
		}
	}
}
