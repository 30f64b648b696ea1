package ports

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// TariffRepository provides the pricing context used to quote new orders.
// Tariffs are configuration, not aggregates: the core only ever reads the
// currently effective one. Editing tariffs is an operator concern handled
// outside this system.
type TariffRepository interface {
	// GetCurrent returns the currently effective tariff. An installation with
	// no pricing rows returns an empty (but valid) tariff, which quotes every
	// route at zero — callers log this as a probable misconfiguration.
	GetCurrent(ctx context.Context) (pricing.Tariff, error)
}
