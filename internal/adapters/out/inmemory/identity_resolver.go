package inmemory

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// IdentityResolver resolves courier identities registered on the store.
type IdentityResolver struct {
	store *Store
}

// Resolve retrieves a courier identity by its internal identifier.
func (r *IdentityResolver) Resolve(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id.String())
	}
	return cloneCourier(stored), nil
}

// ResolveByCode retrieves a courier identity by its external code.
func (r *IdentityResolver) ResolveByCode(_ context.Context, externalCode string) (*courier.Courier, error) {
	if externalCode == "" {
		return nil, errs.NewValueIsRequiredError("externalCode")
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, stored := range r.store.couriers {
		if stored.ExternalCode() == externalCode {
			return cloneCourier(stored), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("courier", externalCode)
}
