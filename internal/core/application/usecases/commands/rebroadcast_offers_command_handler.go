package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/ports"
)

// RebroadcastOffersCommandHandler re-publishes stale unclaimed offers.
type RebroadcastOffersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRebroadcastOffersCommandHandler creates a handler for offer reminders.
func NewRebroadcastOffersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RebroadcastOffersCommandHandler {
	return RebroadcastOffersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "rebroadcast_offers_handler"),
	}
}

// Handle re-publishes every offer that has waited longer than the command's
// age bound. Read-only: no transaction is opened, and a failed publish for one
// offer never blocks the rest.
func (h RebroadcastOffersCommandHandler) Handle(
	ctx context.Context, cmd RebroadcastOffersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	stale, err := uow.OrderRepository().GetAllNewCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, o := range stale {
		if publishErr := h.notifier.PublishOffer(ctx, ports.NewOrderDetail(o)); publishErr != nil {
			h.logger.WarnContext(ctx, "failed to re-publish offer",
				"order_id", o.ID().String(),
				"error", publishErr,
			)
		}
	}

	if len(stale) > 0 {
		h.logger.InfoContext(ctx, "re-published stale offers", "count", len(stale))
	}

	return nil
}
