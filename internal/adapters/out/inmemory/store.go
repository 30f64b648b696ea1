// Package inmemory provides a process-local persistence backend with the same
// transactional contract as the PostgreSQL adapter. It backs development runs
// and concurrency tests without a database: claim arbitration still goes
// through per-order row locks with a bounded wait, so two couriers racing for
// one offer resolve exactly as they would against PostgreSQL.
package inmemory

import (
	"context"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"
)

// defaultLockWait mirrors the lock_timeout used by the PostgreSQL adapter.
const defaultLockWait = 500 * time.Millisecond

// Store holds all dispatch state for one process. Aggregates are stored as
// snapshots and cloned on every read, so callers can never mutate stored
// state without going through a unit of work.
type Store struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]*order.Order
	couriers map[kernel.UUID]*courier.Courier
	tariff   pricing.Tariff

	lockMu   sync.Mutex
	locks    map[kernel.UUID]chan struct{}
	lockWait time.Duration
}

// NewStore creates an empty in-memory store with the default lock wait bound.
// The store starts with the constructed empty tariff, so an unconfigured store
// quotes every route at zero instead of failing tariff validation.
func NewStore() *Store {
	tariff, err := pricing.NewTariff(nil, nil)
	if err != nil {
		// empty rule and surcharge sets always construct
		panic(err)
	}

	return &Store{
		orders:   make(map[kernel.UUID]*order.Order),
		couriers: make(map[kernel.UUID]*courier.Courier),
		tariff:   tariff,
		locks:    make(map[kernel.UUID]chan struct{}),
		lockWait: defaultLockWait,
	}
}

// SetLockWait overrides the bounded row-lock wait. Tests use a short wait to
// keep contention scenarios fast.
func (s *Store) SetLockWait(d time.Duration) {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	s.lockWait = d
}

// SetTariff installs the pricing configuration served by TariffRepository.
func (s *Store) SetTariff(t pricing.Tariff) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tariff = t
	return nil
}

// AddCourier registers a courier identity for claim authorization.
func (s *Store) AddCourier(c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.couriers[c.ID()] = cloneCourier(c)
	return nil
}

// lockFor returns the row lock channel for an order, creating it on first use.
// A buffered channel of size one acts as a mutex that supports a timed acquire.
func (s *Store) lockFor(id kernel.UUID) chan struct{} {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[id] = lock
	}
	return lock
}

// acquireRowLock takes the per-order lock, waiting at most the configured
// bound. An expired wait reports ports.ErrOrderBusy, matching the PostgreSQL
// adapter's lock_timeout behavior.
func (s *Store) acquireRowLock(ctx context.Context, id kernel.UUID) error {
	s.lockMu.Lock()
	wait := s.lockWait
	s.lockMu.Unlock()

	lock := s.lockFor(id)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case lock <- struct{}{}:
		return nil
	case <-timer.C:
		return ports.ErrOrderBusy
	case <-ctx.Done():
		return ctx.Err()
	}
}

// releaseRowLock frees the per-order lock taken by acquireRowLock.
func (s *Store) releaseRowLock(id kernel.UUID) {
	<-s.lockFor(id)
}

// cloneOrder makes an independent snapshot of an order through the aggregate's
// own restore path, so invariants are re-checked on every boundary crossing.
func cloneOrder(o *order.Order) (*order.Order, error) {
	var courierID *kernel.UUID
	if id := o.CourierID(); id != nil {
		v := *id
		courierID = &v
	}

	return order.RestoreOrder(
		o.ID(), o.ClientID(), courierID,
		o.Origin(), o.Destination(),
		o.Comment(), o.DistanceKm(), o.Price(),
		o.Status(), o.CreatedAt(), o.UpdatedAt(),
	)
}

func cloneCourier(c *courier.Courier) *courier.Courier {
	clone, err := courier.RestoreCourier(c.ID(), c.ExternalCode(), c.Name(), c.Phone(), c.IsBlocked())
	if err != nil {
		// c passed Validate before storage; restore from valid state cannot fail.
		panic(err)
	}
	return clone
}
