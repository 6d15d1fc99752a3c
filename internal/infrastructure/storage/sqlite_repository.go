package storage

import (
	"assemblyStatApp/internal/domain/model"
	"assemblyStatApp/internal/domain/repository"
	"context"
	"database/sql"
	"errors"
	"os"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the StoreReader interface over the shared
// SQLite store written by the external simulation process. It is strictly
// read-only: every query opens a short-lived connection, so the store file
// is never held open between requests and the simulation can replace it
// freely between runs.
//
// The schema (orders, station_history) is owned by the simulation; this
// repository only assumes the column layout, it never creates tables.
type SQLiteRepository struct {
	path string
}

func NewSQLiteRepository(path string) *SQLiteRepository {
	return &SQLiteRepository{path: path}
}

// Ensure SQLiteRepository implements the StoreReader interface
var _ repository.StoreReader = (*SQLiteRepository)(nil)

// StoreExists reports whether the store file has been created yet.
// The file appears on the first simulation run.
func (r *SQLiteRepository) StoreExists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// open returns a fresh read-only handle to the store. Callers must close it.
func (r *SQLiteRepository) open() (*sql.DB, error) {
	return sql.Open("sqlite", "file:"+r.path+"?mode=ro")
}

const orderColumns = "order_id, customer_name, product, is_completed, total_items, filled_items, created_at, completed_at"

func scanOrder(row interface{ Scan(...any) error }) (model.Order, error) {
	var o model.Order
	var completed int
	var completedAt sql.NullString
	err := row.Scan(&o.OrderID, &o.CustomerName, &o.Product, &completed,
		&o.TotalItems, &o.FilledItems, &o.CreatedAt, &completedAt)
	if err != nil {
		return model.Order{}, err
	}
	o.IsCompleted = completed != 0
	if completedAt.Valid {
		o.CompletedAt = &completedAt.String
	}
	return o, nil
}

// ListOrders returns up to limit orders most-recent-first. The completed
// filter sorts by completed_at, everything else by created_at, matching
// what the stored timestamps mean for each lifecycle state.
func (r *SQLiteRepository) ListOrders(ctx context.Context, limit int, filter repository.OrderFilter) ([]model.Order, error) {
	if !r.StoreExists() {
		return []model.Order{}, nil
	}

	var query string
	switch filter {
	case repository.FilterCompleted:
		query = "SELECT " + orderColumns + " FROM orders WHERE is_completed = 1 ORDER BY completed_at DESC LIMIT ?"
	case repository.FilterIncomplete:
		query = "SELECT " + orderColumns + " FROM orders WHERE is_completed = 0 ORDER BY created_at DESC LIMIT ?"
	default:
		query = "SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC LIMIT ?"
	}

	return r.queryOrders(ctx, "ListOrders", query, limit)
}

// GetOrder returns a single order by its unique order_id. Unlike the list
// queries, a missing store here is a real error: the caller asked for one
// specific entity and there is nowhere to look it up.
func (r *SQLiteRepository) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	if !r.StoreExists() {
		return nil, model.ErrStoreUnavailable
	}

	db, err := r.open()
	if err != nil {
		return nil, &model.QueryError{Op: "GetOrder", Err: err}
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_id = ?", orderID)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, &model.QueryError{Op: "GetOrder", Err: err}
	}
	return &o, nil
}

// ListOrdersByCustomer returns all orders for one customer, newest first.
func (r *SQLiteRepository) ListOrdersByCustomer(ctx context.Context, customerName string) ([]model.Order, error) {
	if !r.StoreExists() {
		return []model.Order{}, nil
	}
	return r.queryOrders(ctx, "ListOrdersByCustomer",
		"SELECT "+orderColumns+" FROM orders WHERE customer_name = ? ORDER BY created_at DESC", customerName)
}

// CountOrders returns the number of orders matching the filter, zero when
// the store has not been created yet.
func (r *SQLiteRepository) CountOrders(ctx context.Context, filter repository.OrderFilter) (int, error) {
	if !r.StoreExists() {
		return 0, nil
	}

	db, err := r.open()
	if err != nil {
		return 0, &model.QueryError{Op: "CountOrders", Err: err}
	}
	defer db.Close()

	query := "SELECT COUNT(*) FROM orders"
	switch filter {
	case repository.FilterCompleted:
		query += " WHERE is_completed = 1"
	case repository.FilterIncomplete:
		query += " WHERE is_completed = 0"
	}

	var count int
	if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, &model.QueryError{Op: "CountOrders", Err: err}
	}
	return count, nil
}

// StationTotals returns the per-station aggregate view: total items
// processed across every snapshot, current (max) inventory, and the latest
// snapshot timestamp, busiest station first.
func (r *SQLiteRepository) StationTotals(ctx context.Context, limit int) ([]model.StationRecord, error) {
	if !r.StoreExists() {
		return []model.StationRecord{}, nil
	}

	db, err := r.open()
	if err != nil {
		return nil, &model.QueryError{Op: "StationTotals", Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT station_name, SUM(items_processed) AS total_processed,
		       MAX(inventory_remaining) AS current_inventory,
		       MAX(timestamp) AS last_update
		FROM station_history
		GROUP BY station_name
		ORDER BY total_processed DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, &model.QueryError{Op: "StationTotals", Err: err}
	}
	defer rows.Close()

	records := []model.StationRecord{}
	for rows.Next() {
		var rec model.StationRecord
		var total, inventory sql.NullInt64
		var ts sql.NullString
		if err := rows.Scan(&rec.StationName, &total, &inventory, &ts); err != nil {
			return nil, &model.QueryError{Op: "StationTotals", Err: err}
		}
		rec.ItemsProcessed = int(total.Int64)
		rec.InventoryRemaining = int(inventory.Int64)
		rec.Timestamp = ts.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.QueryError{Op: "StationTotals", Err: err}
	}
	return records, nil
}

// StationHistory returns raw snapshots for one station, newest first.
func (r *SQLiteRepository) StationHistory(ctx context.Context, stationName string, limit int) ([]model.StationRecord, error) {
	if !r.StoreExists() {
		return []model.StationRecord{}, nil
	}

	db, err := r.open()
	if err != nil {
		return nil, &model.QueryError{Op: "StationHistory", Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT station_name, items_processed, inventory_remaining, timestamp
		FROM station_history
		WHERE station_name = ?
		ORDER BY timestamp DESC
		LIMIT ?`, stationName, limit)
	if err != nil {
		return nil, &model.QueryError{Op: "StationHistory", Err: err}
	}
	defer rows.Close()

	records := []model.StationRecord{}
	for rows.Next() {
		var rec model.StationRecord
		if err := rows.Scan(&rec.StationName, &rec.ItemsProcessed, &rec.InventoryRemaining, &rec.Timestamp); err != nil {
			return nil, &model.QueryError{Op: "StationHistory", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.QueryError{Op: "StationHistory", Err: err}
	}
	return records, nil
}

func (r *SQLiteRepository) queryOrders(ctx context.Context, op, query string, args ...any) ([]model.Order, error) {
	db, err := r.open()
	if err != nil {
		return nil, &model.QueryError{Op: op, Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &model.QueryError{Op: op, Err: err}
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, &model.QueryError{Op: op, Err: err}
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.QueryError{Op: op, Err: err}
	}
	return orders, nil
}
