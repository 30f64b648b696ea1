package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetCourierActiveOrdersQueryIsNotConstructed = errors.New(
		"GetCourierActiveOrdersQuery must be created via NewGetCourierActiveOrdersQuery constructor",
	)
)

// GetCourierActiveOrdersQuery retrieves a courier's in-flight orders: claimed
// but not yet completed, each annotated with the transitions the courier may
// legally request next.
//
// Example:
//
//	query, err := NewGetCourierActiveOrdersQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	active, err := handler.Handle(ctx, query)
//	for _, o := range active {
//	    fmt.Printf("Order %s (%s), next: %v\n", o.ID, o.Status, o.NextActions)
//	}
type GetCourierActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierActiveOrdersQuery creates a query for a courier's active orders.
func NewGetCourierActiveOrdersQuery(courierID kernel.UUID) (GetCourierActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierActiveOrdersQuery{}, err
	}

	return GetCourierActiveOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCourierActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetCourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the identity of the courier whose orders are requested.
func (q GetCourierActiveOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierActiveOrdersQueryResponse represents one in-flight order together
// with the lifecycle actions currently available to the courier.
type GetCourierActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	Status      order.Status
	Origin      kernel.Location
	Destination kernel.Location
	Comment     string
	Price       float64
	NextActions []order.Status
}
