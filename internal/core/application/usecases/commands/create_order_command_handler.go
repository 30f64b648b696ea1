package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Quotes the route through the currently effective tariff, persists the order
// in "new" status, and offers it to the courier pool.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewCreateOrderCommand(orderID, clientID, origin, destination, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now an open offer any courier may claim
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
	notifier   ports.Notifier
	quoter     services.OrderQuoter
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a PricingUoWFactory for transactional persistence and a Notifier
// for the post-commit offer broadcast.
func NewCreateOrderCommandHandler(
	uowFactory PricingUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		quoter:     services.NewOrderQuoter(),
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
//
// The quote is computed exactly once, inside the same transaction that
// persists the order, against the tariff effective at that moment. After the
// commit the offer is broadcast to the courier pool and the client is informed;
// notification failures are logged and never undo the committed order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tariff, err := uow.TariffRepository().GetCurrent(ctx)
	if err != nil {
		return err
	}
	if tariff.IsEmpty() {
		h.logger.WarnContext(ctx, "Current tariff has no rules, quoting zero price",
			"order_id", cmd.OrderID().String())
	}

	quote, err := h.quoter.QuoteRoute(cmd.Origin(), cmd.Destination(), tariff, now)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ClientID(),
		cmd.Origin(), cmd.Destination(),
		cmd.Comment(), quote.DistanceKm, quote.Price, now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	detail := ports.NewOrderDetail(newOrder)
	if err = h.notifier.PublishOffer(ctx, detail); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish offer", "order_id", newOrder.ID().String(), "error", err)
	}
	if err = h.notifier.NotifyClient(ctx, detail.OrderEvent); err != nil {
		h.logger.WarnContext(ctx, "Failed to notify client", "order_id", newOrder.ID().String(), "error", err)
	}

	return nil
}
