package ports

import (
	"context"

	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"
)

// OrderRepository persists terminal order records for the order-history
// and admin views. Only terminal orders (Done or Failed) are stored; the
// pipeline itself keeps no state between requests.
type OrderRepository interface {
	// Add persists a terminal order record.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order record by its NEXYE identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
