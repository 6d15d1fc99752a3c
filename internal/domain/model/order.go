package model

// Order represents one customer fulfillment request tracked by the
// external simulation. The simulation is the only writer; this service
// treats orders as read-only rows.
type Order struct {
	OrderID      string
	CustomerName string
	Product      string
	IsCompleted  bool
	TotalItems   int
	FilledItems  int
	CreatedAt    string
	CompletedAt  *string
}

// StationRecord is one timestamped snapshot of a station's throughput.
// Rows are append-only: the simulation writes a new snapshot per tick and
// never updates one in place. The same type carries the aggregated
// per-station view (summed items, max inventory, latest timestamp).
type StationRecord struct {
	StationName        string
	ItemsProcessed     int
	InventoryRemaining int
	Timestamp          string
}

// Stats holds the aggregate view derived from orders and station history.
// It is recomputed on demand and never persisted.
type Stats struct {
	TotalOrders       int
	CompletedOrders   int
	IncompleteOrders  int
	CompletionRate    float64
	MostActiveStation *string
}
