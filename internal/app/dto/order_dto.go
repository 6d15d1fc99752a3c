package dto

import (
	"assemblyStatApp/internal/domain/model"
)

// OrderDTO represents a data transfer object for order records.
// JSON field names mirror the persisted column names.
type OrderDTO struct {
	OrderID      string  `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Product      string  `json:"product"`
	IsCompleted  bool    `json:"is_completed"`
	TotalItems   int     `json:"total_items"`
	FilledItems  int     `json:"filled_items"`
	CreatedAt    string  `json:"created_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

// FromOrder creates an OrderDTO from a domain model
func FromOrder(o *model.Order) *OrderDTO {
	return &OrderDTO{
		OrderID:      o.OrderID,
		CustomerName: o.CustomerName,
		Product:      o.Product,
		IsCompleted:  o.IsCompleted,
		TotalItems:   o.TotalItems,
		FilledItems:  o.FilledItems,
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
	}
}

func FromOrders(orders []model.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, len(orders))
	for i := range orders {
		dtos[i] = FromOrder(&orders[i])
	}
	return dtos
}

// StationDTO represents a data transfer object for station snapshots and
// per-station aggregates; both share the same wire shape.
type StationDTO struct {
	StationName        string `json:"station_name"`
	ItemsProcessed     int    `json:"items_processed"`
	InventoryRemaining int    `json:"inventory_remaining"`
	Timestamp          string `json:"timestamp"`
}

func FromStation(rec *model.StationRecord) *StationDTO {
	return &StationDTO{
		StationName:        rec.StationName,
		ItemsProcessed:     rec.ItemsProcessed,
		InventoryRemaining: rec.InventoryRemaining,
		Timestamp:          rec.Timestamp,
	}
}

func FromStations(records []model.StationRecord) []*StationDTO {
	dtos := make([]*StationDTO, len(records))
	for i := range records {
		dtos[i] = FromStation(&records[i])
	}
	return dtos
}

// StatsDTO represents a data transfer object for the aggregate snapshot
type StatsDTO struct {
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	IncompleteOrders  int     `json:"incomplete_orders"`
	CompletionRate    float64 `json:"completion_rate"`
	MostActiveStation *string `json:"most_active_station"`
}

func FromStats(s *model.Stats) *StatsDTO {
	return &StatsDTO{
		TotalOrders:       s.TotalOrders,
		CompletedOrders:   s.CompletedOrders,
		IncompleteOrders:  s.IncompleteOrders,
		CompletionRate:    s.CompletionRate,
		MostActiveStation: s.MostActiveStation,
	}
}
