// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the payment gateway.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines and price breakdown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPaidStatus retrieves all orders awaiting fulfillment.
	// Used by the shipping workflow to find paid orders to hand over.
	GetAllInPaidStatus(ctx context.Context) ([]*order.Order, error)
}
