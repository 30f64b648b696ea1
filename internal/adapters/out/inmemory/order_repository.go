package inmemory

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over the in-memory store.
// Writes are staged in the owning unit of work and become visible on Commit.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// Add stages a new order for insertion on Commit.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.stage(func() {
		r.store.orders[snapshot.ID()] = snapshot
	})
	return nil
}

// Update stages changes to an existing order for application on Commit.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.RLock()
	_, exists := r.store.orders[aggregate.ID()]
	r.store.mu.RUnlock()
	if !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.uow.stage(func() {
		r.store.orders[snapshot.ID()] = snapshot
	})
	return nil
}

// Get retrieves a snapshot of an order without locking it.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	stored, ok := r.store.orders[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return cloneOrder(stored)
}

// GetForUpdate retrieves an order and takes its row lock for the rest of the
// unit of work. The wait for a contended lock is bounded; exceeding it is
// reported as ports.ErrOrderBusy.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if !r.uow.holdsLock(id) {
		if err := r.store.acquireRowLock(ctx, id); err != nil {
			return nil, err
		}
		r.uow.holdLock(id)
	}

	return r.Get(ctx, id)
}

// GetAllInNewStatus retrieves the open offer board, oldest first.
func (r *OrderRepository) GetAllInNewStatus(_ context.Context) ([]*order.Order, error) {
	return r.collectNew(func(o *order.Order) bool { return true })
}

// GetAllNewCreatedBefore retrieves unclaimed orders created before the cutoff,
// oldest first.
func (r *OrderRepository) GetAllNewCreatedBefore(
	_ context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	return r.collectNew(func(o *order.Order) bool { return o.CreatedAt().Before(cutoff) })
}

func (r *OrderRepository) collectNew(keep func(*order.Order) bool) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, stored := range r.store.orders {
		if stored.Status() != order.New || !keep(stored) {
			continue
		}

		snapshot, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}
