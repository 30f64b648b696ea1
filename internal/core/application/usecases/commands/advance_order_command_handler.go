package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"
)

// AdvanceOrderCommandHandler handles courier-driven lifecycle transitions.
// The order record is mutated under the same exclusive lock discipline as the
// claim, so a double-submitted advance observes the first one's result and
// fails with order.ErrInvalidTransition instead of applying twice.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for advance operations.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the advance command.
//
// Typed failure outcomes:
//   - errs.ObjectNotFoundError: unknown order
//   - order.ErrNotOwner: the acting courier is not the bound courier
//   - order.ErrInvalidTransition: target is not the immediate successor
//   - ports.ErrOrderBusy: record lock not acquired within the bounded wait
//
// On success the client is notified after the commit.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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
	advancedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = advancedOrder.AdvanceTo(cmd.CourierID(), cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, advancedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyClient(ctx, ports.NewOrderEvent(advancedOrder)); err != nil {
		h.logger.WarnContext(ctx, "Failed to notify client", "order_id", advancedOrder.ID().String(), "error", err)
	}

	return nil
}
