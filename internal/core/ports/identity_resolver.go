package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// IdentityResolver resolves courier identities for claim authorization.
// It is a read-only port: the dispatch core never creates or mutates
// identities, it only checks who is acting and whether they are blocked.
type IdentityResolver interface {
	// Resolve retrieves a courier identity by its internal identifier.
	// Returns errs.ObjectNotFoundError when the identity is unknown.
	Resolve(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// ResolveByCode retrieves a courier identity by the external code the
	// inbound channel presents. Returns errs.ObjectNotFoundError when the
	// code is unknown.
	ResolveByCode(ctx context.Context, externalCode string) (*courier.Courier, error)
}
