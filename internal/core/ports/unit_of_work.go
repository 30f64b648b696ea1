package ports

import (
	"context"
	"errors"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit of
// work has no transaction in progress. Both storage backends share this
// sentinel, so callers classify the misuse without knowing which store they
// run against.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the lifecycle.
//
// Locks taken inside the transaction (see OrderRepository.GetForUpdate) are
// released by Commit or Rollback, which bounds the critical section to the
// unit of work.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns ErrNoActiveTransaction when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns ErrNoActiveTransaction when no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// TariffRepository returns a TariffRepository bound to the current
	// transaction started by Begin().
	TariffRepository() TariffRepository

	// IdentityResolver returns an IdentityResolver bound to the current
	// transaction started by Begin().
	IdentityResolver() IdentityResolver
}
