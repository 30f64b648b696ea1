package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderEvent is the structured fact emitted after a committed order
// transition. The core emits data only; rendering it into user-facing text is
// the delivery channel's concern.
type OrderEvent struct {
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	CourierID  *kernel.UUID
	Status     order.Status
	OccurredAt time.Time
}

// OrderDetail is the full order snapshot sent to the claiming courier and
// broadcast with open offers: everything a courier needs to act on the order.
type OrderDetail struct {
	OrderEvent

	Origin      kernel.Location
	Destination kernel.Location
	Comment     string
	DistanceKm  float64
	Price       float64
}

// NewOrderEvent builds an event from an order's current state.
func NewOrderEvent(o *order.Order) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID(),
		ClientID:   o.ClientID(),
		CourierID:  o.CourierID(),
		Status:     o.Status(),
		OccurredAt: o.UpdatedAt(),
	}
}

// NewOrderDetail builds a full snapshot from an order's current state.
func NewOrderDetail(o *order.Order) OrderDetail {
	return OrderDetail{
		OrderEvent:  NewOrderEvent(o),
		Origin:      o.Origin(),
		Destination: o.Destination(),
		Comment:     o.Comment(),
		DistanceKm:  o.DistanceKm(),
		Price:       o.Price(),
	}
}

// Notifier is the outbound notification port, invoked after every committed
// transition — one client notification per transition, plus offer lifecycle
// messages to the courier pool.
//
// Notification is fire-and-forget with respect to the transition: by the time
// a Notifier method runs, the transition is committed, and a delivery failure
// never rolls it back. Handlers log failures and move on.
type Notifier interface {
	// NotifyClient informs the order's client about a committed transition.
	NotifyClient(ctx context.Context, event OrderEvent) error

	// NotifyCourier sends the claiming courier the full order detail after a
	// successful claim.
	NotifyCourier(ctx context.Context, detail OrderDetail) error

	// PublishOffer broadcasts a new (or re-advertised) open offer to the
	// courier pool.
	PublishOffer(ctx context.Context, detail OrderDetail) error

	// SuppressOffer makes the open offer broadcast for an order inert after
	// the order has been claimed, so stale offers stop soliciting claims.
	SuppressOffer(ctx context.Context, orderID kernel.UUID) error
}
