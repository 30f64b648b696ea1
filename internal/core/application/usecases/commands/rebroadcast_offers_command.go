package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRebroadcastOffersCommandIsNotConstructed = errors.New(
		"RebroadcastOffersCommand must be created via NewRebroadcastOffersCommand constructor",
	)
)

// RebroadcastOffersCommand re-publishes offers that have been sitting
// unclaimed for longer than the configured age. Scheduled, not user-invoked:
// the reminder keeps stale offers visible to couriers who came online after
// the initial broadcast.
type RebroadcastOffersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRebroadcastOffersCommand creates a command to re-publish offers older
// than the given age.
func NewRebroadcastOffersCommand(olderThan time.Duration) (RebroadcastOffersCommand, error) {
	if olderThan <= 0 {
		return RebroadcastOffersCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return RebroadcastOffersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RebroadcastOffersCommand) Validate() error {
	return c.guard.Validate(ErrRebroadcastOffersCommandIsNotConstructed)
}

// OlderThan returns the minimum age an offer must reach before it is
// re-published.
func (c RebroadcastOffersCommand) OlderThan() time.Duration {
	return c.olderThan
}
