package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrAlreadyClaimed is returned when a claim reaches an order that is no
	// longer in New status — some courier won the race first.
	ErrAlreadyClaimed = errors.New("order is already claimed")

	// ErrNotOwner is returned when a transition is requested by a courier
	// other than the one bound to the order. The order is never mutated.
	ErrNotOwner = errors.New("order is owned by another courier")

	// ErrInvalidTransition is returned when the requested target status is not
	// the immediate successor of the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order is the delivery order aggregate. It is created from a dispatch
// request with a one-time quoted distance and price, and afterwards changes
// only through the lifecycle methods Claim and AdvanceTo.
//
// Invariants:
//   - distance and price are computed at creation and never recomputed
//   - courier binding happens exactly once, on the claim edge, and is never
//     released or reassigned
//   - the status sequence observed over the order's lifetime is a prefix of
//     new, assigned, to_a, to_b, arrived, completed
//   - every post-claim transition is restricted to the bound courier
type Order struct {
	id          kernel.UUID
	clientID    kernel.UUID
	courierID   *kernel.UUID
	origin      kernel.Location
	destination kernel.Location
	comment     string
	distanceKm  float64
	price       float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a freshly dispatched order in New status with no courier.
// The distance and price are the one-time quote computed by the caller; they
// must be non-negative and are stored verbatim.
//
// Parameters:
//   - id: unique order identifier
//   - clientID: identity of the client who requested the delivery
//   - origin, destination: validated pickup and drop-off coordinates
//   - comment: optional free-form note for the courier
//   - distanceKm, price: the quote, already rounded by the pricing model
//   - createdAt: creation timestamp, also used as the initial updatedAt
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	comment string,
	distanceKm float64,
	price float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRoute(origin, destination),
		o.setQuote(distanceKm, price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation-time quote. It validates the stored status and the consistency
// between status and courier binding, so a corrupted row cannot materialize
// as a structurally invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	courierID *kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	comment string,
	distanceKm float64,
	price float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRoute(origin, destination),
		o.setQuote(distanceKm, price),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identity of the client who requested the delivery.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CourierID returns the bound courier's identity, or nil before the claim.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// Origin returns the pickup coordinate (point A).
func (o *Order) Origin() kernel.Location {
	return o.origin
}

// Destination returns the drop-off coordinate (point B).
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// Comment returns the optional client note, empty when none was given.
func (o *Order) Comment() string {
	return o.comment
}

// DistanceKm returns the quoted route distance in kilometers.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// Price returns the one-time quoted price. It never changes after creation.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last committed transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Claim binds the order to a courier, moving it from New to Assigned.
// The binding is monotonic: it happens at most once and is never released.
// If the order has left New status the claim fails with ErrAlreadyClaimed and
// nothing is mutated — this is the losing side of a concurrent claim race.
//
// The caller must hold exclusive access to the order record for the duration
// of the read-check-write; Claim itself is the check-and-write part.
func (o *Order) Claim(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status != New {
		return fmt.Errorf("%w: status is %s", ErrAlreadyClaimed, o.status)
	}

	o.courierID = &courierID
	o.status = Assigned
	o.updatedAt = at
	return nil
}

// AdvanceTo moves the order to the target status on behalf of a courier.
//
// Business rules enforced, in order:
//   - the acting courier must be the bound courier (ErrNotOwner otherwise;
//     an unclaimed order has no owner, so every advance on it fails the same way)
//   - the target must be the immediate successor of the current status
//     (ErrInvalidTransition otherwise, including repeats of a passed edge)
//
// A failed advance never mutates the order.
func (o *Order) AdvanceTo(courierID kernel.UUID, target Status, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return fmt.Errorf("%w: order %s", ErrNotOwner, o.id)
	}

	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}

	o.status = target
	o.updatedAt = at
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the requesting client's identity.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setRoute validates and sets the pickup and drop-off coordinates.
func (o *Order) setRoute(origin, destination kernel.Location) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	o.origin = origin
	o.destination = destination
	return nil
}

// setQuote validates and sets the one-time distance and price quote.
func (o *Order) setQuote(distanceKm, price float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is negative", distanceKm))
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	o.distanceKm = distanceKm
	o.price = price
	return nil
}
