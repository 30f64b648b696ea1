// Package ports defines the outbound interfaces of the dispatch core.
// These contracts sit between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrOrderBusy is returned when exclusive access to an order record could not
// be acquired within the bounded wait. The order itself is untouched; the
// caller may safely retry. Retrying is the caller's decision, never the
// repository's.
var ErrOrderBusy = errors.New("order is busy, retry later")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders based on
// their status and courier binding.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must be valid; returns errs.ObjectNotFoundError when no such
	// order exists in storage.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and acquires exclusive access to its
	// record for the remainder of the unit of work. The lock covers exactly
	// one order; operations on other orders are never blocked by it.
	//
	// The wait for the lock is bounded: when another transaction holds the
	// record past the bound, GetForUpdate returns ErrOrderBusy without
	// touching the order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInNewStatus retrieves the open offer board: every order still in
	// New status, oldest first.
	GetAllInNewStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllNewCreatedBefore retrieves unclaimed orders created before the
	// cutoff, oldest first. Used by the offer reminder to republish offers
	// nobody has picked up.
	GetAllNewCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
