package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"
)

// ClaimOrderCommandHandler handles the business logic for claiming an open
// offer. This is the arbitration point of the dispatch engine: the order
// record is read under an exclusive lock, the claim is checked and written
// while the lock is held, and the lock is released by the commit. Whatever
// interleaving the callers produce, exactly one claim per order succeeds.
//
// The notifications — full detail to the winning courier, confirmation to the
// client, suppression of the open offer — run after the commit, outside the
// critical section.
type ClaimOrderCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(
	uowFactory ClaimUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "claim_order_handler"),
	}
}

// Handle processes the claim command.
//
// Typed failure outcomes:
//   - ErrCourierIsBlocked: the courier may not claim offers
//   - errs.ObjectNotFoundError: unknown courier or order
//   - order.ErrAlreadyClaimed: another courier won the race; by the time the
//     loser gets this error the winner's claim is already committed
//   - ports.ErrOrderBusy: the record lock could not be acquired within the
//     bounded wait; the order is untouched and the caller may retry
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	claimant, err := uow.IdentityResolver().Resolve(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if claimant.IsBlocked() {
		return ErrCourierIsBlocked
	}

	orderRepo := uow.OrderRepository()
	claimedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = claimedOrder.Claim(cmd.CourierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, claimedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	detail := ports.NewOrderDetail(claimedOrder)
	if err = h.notifier.NotifyCourier(ctx, detail); err != nil {
		h.logger.WarnContext(ctx, "Failed to notify courier", "order_id", claimedOrder.ID().String(), "error", err)
	}
	if err = h.notifier.NotifyClient(ctx, detail.OrderEvent); err != nil {
		h.logger.WarnContext(ctx, "Failed to notify client", "order_id", claimedOrder.ID().String(), "error", err)
	}
	if err = h.notifier.SuppressOffer(ctx, claimedOrder.ID()); err != nil {
		h.logger.WarnContext(ctx, "Failed to suppress offer", "order_id", claimedOrder.ID().String(), "error", err)
	}

	return nil
}
