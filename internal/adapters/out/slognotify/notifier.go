// Package slognotify implements the notification port on top of structured
// logging. It is the default for local development, where there is no broker:
// every notification the engine would send is visible in the process log.
package slognotify

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Notifier logs every notification instead of delivering it.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a logging notifier.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger.With("component", "notifier")}
}

// NotifyClient logs a status change addressed to the ordering client.
func (n *Notifier) NotifyClient(_ context.Context, event ports.OrderEvent) error {
	n.logger.Info("client notification",
		"order_id", event.OrderID.String(),
		"client_id", event.ClientID.String(),
		"status", event.Status.String(),
	)
	return nil
}

// NotifyCourier logs the order detail addressed to the claiming courier.
func (n *Notifier) NotifyCourier(_ context.Context, detail ports.OrderDetail) error {
	courierID := ""
	if detail.CourierID != nil {
		courierID = detail.CourierID.String()
	}

	n.logger.Info("courier notification",
		"order_id", detail.OrderID.String(),
		"courier_id", courierID,
		"status", detail.Status.String(),
		"distance_km", detail.DistanceKm,
		"price", detail.Price,
	)
	return nil
}

// PublishOffer logs a new offer broadcast.
func (n *Notifier) PublishOffer(_ context.Context, detail ports.OrderDetail) error {
	n.logger.Info("offer published",
		"order_id", detail.OrderID.String(),
		"distance_km", detail.DistanceKm,
		"price", detail.Price,
	)
	return nil
}

// SuppressOffer logs an offer withdrawal.
func (n *Notifier) SuppressOffer(_ context.Context, orderID kernel.UUID) error {
	n.logger.Info("offer suppressed", "order_id", orderID.String())
	return nil
}
