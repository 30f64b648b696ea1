package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to dispatch a new delivery order
// between two geographic points. The distance and price are quoted by the
// handler at creation time and never recomputed afterwards.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, origin, destination, "call on arrival")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s offered to the courier pool", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	origin      kernel.Location
	destination kernel.Location
	comment     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to dispatch a new delivery order.
// Validates that both identifiers and both coordinates are properly
// constructed. The comment is optional and may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	origin kernel.Location,
	destination kernel.Location,
	comment string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setRoute(origin, destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identity of the requesting client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Origin returns the pickup coordinate (point A).
func (c CreateOrderCommand) Origin() kernel.Location {
	return c.origin
}

// Destination returns the drop-off coordinate (point B).
func (c CreateOrderCommand) Destination() kernel.Location {
	return c.destination
}

// Comment returns the optional note for the courier.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRoute(origin, destination kernel.Location) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}

	c.origin = origin
	c.destination = destination
	return nil
}
