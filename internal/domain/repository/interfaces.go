// Package repository defines all the repository interfaces used by domain services.
// Following the dependency inversion principle, domain logic depends on these interfaces,
// and infrastructure implementations provide concrete implementations.
package repository

import (
	"assemblyStatApp/internal/domain/model"
	"context"
)

// OrderFilter narrows order list queries by completion state.
type OrderFilter int

const (
	FilterAll OrderFilter = iota
	FilterCompleted
	FilterIncomplete
)

// OrderReader defines read-only access to the orders collection.
// Implementations never create, update, or delete rows; the external
// simulation process owns all writes.
type OrderReader interface {
	// ListOrders returns up to limit orders most-recent-first. Completed
	// orders sort by completed_at, everything else by created_at.
	// A missing store yields an empty slice, not an error.
	ListOrders(ctx context.Context, limit int, filter OrderFilter) ([]model.Order, error)

	// GetOrder returns a single order by its unique order_id.
	// Returns model.ErrStoreUnavailable when the store file is missing and
	// model.ErrNotFound when the store exists but the order does not.
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)

	// ListOrdersByCustomer returns all orders for one customer,
	// most-recent-first, unbounded. Empty slice when the store is missing.
	ListOrdersByCustomer(ctx context.Context, customerName string) ([]model.Order, error)

	// CountOrders returns the number of orders matching the filter.
	// Zero when the store is missing.
	CountOrders(ctx context.Context, filter OrderFilter) (int, error)
}

// StationReader defines read-only access to the station_history collection.
type StationReader interface {
	// StationTotals returns per-station aggregates (summed items processed,
	// max inventory remaining, latest timestamp), ordered by total
	// descending, truncated to limit. Empty slice when the store is missing.
	StationTotals(ctx context.Context, limit int) ([]model.StationRecord, error)

	// StationHistory returns raw snapshots for one station,
	// most-recent-first, truncated to limit.
	StationHistory(ctx context.Context, stationName string, limit int) ([]model.StationRecord, error)
}

// StoreReader combines both record collections behind one store handle.
type StoreReader interface {
	OrderReader
	StationReader

	// StoreExists reports whether the store file is present on disk.
	// Used by the health endpoint; never an error.
	StoreExists() bool
}
