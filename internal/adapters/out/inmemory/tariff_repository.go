package inmemory

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// TariffRepository serves the tariff installed on the store. A store without
// an installed tariff serves the empty tariff, which quotes zero.
type TariffRepository struct {
	store *Store
}

// GetCurrent returns the effective tariff.
func (r *TariffRepository) GetCurrent(_ context.Context) (pricing.Tariff, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.tariff, nil
}
