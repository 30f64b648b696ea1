// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetUnclaimedOrdersQueryIsNotConstructed = errors.New(
		"GetUnclaimedOrdersQuery must be created via NewGetUnclaimedOrdersQuery constructor",
	)
)

// GetUnclaimedOrdersQuery retrieves the open offer board: every order still in
// "new" status, oldest first, so the longest-waiting offers surface first.
//
// Example:
//
//	query := NewGetUnclaimedOrdersQuery()
//	handler := NewGetUnclaimedOrdersQueryHandler(db)
//
//	offers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open offers: %w", err)
//	}
//
//	fmt.Printf("%d offers waiting for a courier\n", len(offers))
type GetUnclaimedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnclaimedOrdersQuery creates a query to retrieve unclaimed orders.
// This is a parameterless query that fetches the whole offer board.
func NewGetUnclaimedOrdersQuery() GetUnclaimedOrdersQuery {
	return GetUnclaimedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnclaimedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnclaimedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedOrdersQueryIsNotConstructed)
}

// GetUnclaimedOrdersQueryResponse represents one open offer on the board:
// everything a courier sees before deciding to claim.
type GetUnclaimedOrdersQueryResponse struct {
	ID          kernel.UUID
	Origin      kernel.Location
	Destination kernel.Location
	Comment     string
	DistanceKm  float64
	Price       float64
	CreatedAt   time.Time
}
