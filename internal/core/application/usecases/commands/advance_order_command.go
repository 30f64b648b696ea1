package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a courier's request to move their order one
// step forward along the delivery lifecycle: to_a, to_b or arrived. Completion
// is not an advance target; it has its own explicitly authorized command.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, courierID, order.ToPickup)
//	if err != nil {
//	    return err
//	}
//
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // stale request — the order already moved past this edge
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// The target must be one of the courier-driven statuses (to_a, to_b, arrived).
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	target order.Status,
) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setCourierID(courierID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being advanced.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identity of the acting courier.
func (c AdvanceOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Target returns the requested target status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	switch target {
	case order.ToPickup, order.ToDropoff, order.Arrived:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s is not an advance target", target))
	}
}
