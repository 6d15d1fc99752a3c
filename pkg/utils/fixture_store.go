package utils

import (
	"assemblyStatApp/internal/domain/model"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store fixtures for tests and local demos. The real store is produced by
// the simulation executable; this writer exists so the read path can be
// exercised without building and running the simulator.

const schemaSQL = `
CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id TEXT UNIQUE NOT NULL,
    customer_name TEXT NOT NULL,
    product TEXT NOT NULL,
    is_completed INTEGER NOT NULL DEFAULT 0,
    total_items INTEGER NOT NULL DEFAULT 0,
    filled_items INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    completed_at TEXT
);
CREATE TABLE IF NOT EXISTS station_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    station_name TEXT NOT NULL,
    items_processed INTEGER NOT NULL DEFAULT 0,
    inventory_remaining INTEGER NOT NULL DEFAULT 0,
    timestamp TEXT NOT NULL
);`

// SeedStore creates a store file at path with the simulation's schema and
// the given rows.
func SeedStore(path string, orders []model.Order, stations []model.StationRecord) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, o := range orders {
		completed := 0
		if o.IsCompleted {
			completed = 1
		}
		var completedAt any
		if o.CompletedAt != nil {
			completedAt = *o.CompletedAt
		}
		_, err := db.Exec(`INSERT INTO orders
			(order_id, customer_name, product, is_completed, total_items, filled_items, created_at, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			o.OrderID, o.CustomerName, o.Product, completed,
			o.TotalItems, o.FilledItems, o.CreatedAt, completedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order %s: %w", o.OrderID, err)
		}
	}

	for _, rec := range stations {
		_, err := db.Exec(`INSERT INTO station_history
			(station_name, items_processed, inventory_remaining, timestamp)
			VALUES (?, ?, ?, ?)`,
			rec.StationName, rec.ItemsProcessed, rec.InventoryRemaining, rec.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert station snapshot: %w", err)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }

// SampleOrders returns three orders (two completed, one not), enough to
// cover the interesting aggregation states.
func SampleOrders() []model.Order {
	return []model.Order{
		{
			OrderID:      "ORD-001",
			CustomerName: "Chloe",
			Product:      "Racing Bike",
			IsCompleted:  true,
			TotalItems:   4,
			FilledItems:  4,
			CreatedAt:    "2024-03-01 10:00:00",
			CompletedAt:  strPtr("2024-03-01 10:05:00"),
		},
		{
			OrderID:      "ORD-002",
			CustomerName: "Ranjeet",
			Product:      "Mountain Bike",
			IsCompleted:  true,
			TotalItems:   3,
			FilledItems:  3,
			CreatedAt:    "2024-03-01 10:01:00",
			CompletedAt:  strPtr("2024-03-01 10:07:00"),
		},
		{
			OrderID:      "ORD-003",
			CustomerName: "Chloe",
			Product:      "City Bike",
			IsCompleted:  false,
			TotalItems:   5,
			FilledItems:  2,
			CreatedAt:    "2024-03-01 10:02:00",
		},
	}
}

// SampleStations returns snapshots for two stations where Frame Assembly
// is strictly the busiest.
func SampleStations() []model.StationRecord {
	return []model.StationRecord{
		{StationName: "Frame Assembly", ItemsProcessed: 3, InventoryRemaining: 12, Timestamp: "2024-03-01 10:03:00"},
		{StationName: "Frame Assembly", ItemsProcessed: 4, InventoryRemaining: 8, Timestamp: "2024-03-01 10:06:00"},
		{StationName: "Paint Shop", ItemsProcessed: 2, InventoryRemaining: 20, Timestamp: "2024-03-01 10:04:00"},
		{StationName: "Paint Shop", ItemsProcessed: 3, InventoryRemaining: 17, Timestamp: "2024-03-01 10:05:00"},
	}
}
