package inmemory

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// UnitOfWorkFactory creates in-memory units of work over a shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to one store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork provides transactional semantics over the in-memory store:
// writes are staged until Commit, and row locks taken by GetForUpdate are
// held until Commit or Rollback.
type UnitOfWork struct {
	store  *Store
	active bool

	heldLocks []kernel.UUID
	staged    []stagedWrite
}

type stagedWrite struct {
	apply func()
}

// Begin marks the unit of work active. Calling Begin on an already active
// instance is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies the staged writes atomically and releases all row locks.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ports.ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	for _, write := range uow.staged {
		write.apply()
	}
	uow.store.mu.Unlock()

	uow.finish()
	return nil
}

// Rollback discards the staged writes and releases all row locks.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ports.ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// OrderRepository returns an order repository whose writes are staged in this
// unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, uow: uow}
}

// TariffRepository returns the store-backed tariff repository.
func (uow *UnitOfWork) TariffRepository() ports.TariffRepository {
	return &TariffRepository{store: uow.store}
}

// IdentityResolver returns the store-backed courier identity resolver.
func (uow *UnitOfWork) IdentityResolver() ports.IdentityResolver {
	return &IdentityResolver{store: uow.store}
}

func (uow *UnitOfWork) stage(apply func()) {
	uow.staged = append(uow.staged, stagedWrite{apply: apply})
}

func (uow *UnitOfWork) holdLock(id kernel.UUID) {
	uow.heldLocks = append(uow.heldLocks, id)
}

func (uow *UnitOfWork) holdsLock(id kernel.UUID) bool {
	for _, held := range uow.heldLocks {
		if held == id {
			return true
		}
	}
	return false
}

func (uow *UnitOfWork) finish() {
	for _, id := range uow.heldLocks {
		uow.store.releaseRowLock(id)
	}

	uow.heldLocks = nil
	uow.staged = nil
	uow.active = false
}
