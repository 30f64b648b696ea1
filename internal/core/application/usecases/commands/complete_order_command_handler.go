package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CompleteOrderCommandHandler handles the terminal transition of the order
// lifecycle. It reuses the aggregate's AdvanceTo with the Completed target,
// which enforces both the arrived→completed edge and the courier binding.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for completion operations.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "complete_order_handler"),
	}
}

// Handle processes the completion command.
//
// Typed failure outcomes:
//   - errs.ObjectNotFoundError: unknown order
//   - order.ErrNotOwner: the acting courier is not the bound courier
//   - order.ErrInvalidTransition: the order has not arrived yet, or is
//     already completed
//   - ports.ErrOrderBusy: record lock not acquired within the bounded wait
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	completedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = completedOrder.AdvanceTo(cmd.CourierID(), order.Completed, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, completedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyClient(ctx, ports.NewOrderEvent(completedOrder)); err != nil {
		h.logger.WarnContext(ctx, "Failed to notify client", "order_id", completedOrder.ID().String(), "error", err)
	}

	return nil
}
