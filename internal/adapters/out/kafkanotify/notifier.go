// Package kafkanotify publishes order lifecycle notifications to a Kafka
// topic. Every message is keyed by order ID, so all events of one order land
// on the same partition and consumers observe them in emission order.
//
// The engine treats notification delivery as fire-and-forget: callers log a
// failed publish and move on, they never roll back the business transaction
// behind it.
package kafkanotify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Event names carried in the envelope. Consumers route on these.
const (
	eventClientStatusChanged = "client.status_changed"
	eventCourierOrderClaimed = "courier.order_claimed"
	eventOfferPublished      = "offer.published"
	eventOfferSuppressed     = "offer.suppressed"
)

// messageWriter abstracts the Kafka writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier implements ports.Notifier on top of a Kafka topic.
type Notifier struct {
	writer messageWriter
	logger *slog.Logger
}

// NewNotifier creates a notifier publishing to the given broker and topic.
func NewNotifier(brokerAddr, topic string, logger *slog.Logger) *Notifier {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokerAddr),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return NewNotifierWithWriter(writer, logger)
}

// NewNotifierWithWriter creates a notifier over a caller-supplied writer.
// Used by tests to capture messages without a broker.
func NewNotifierWithWriter(writer messageWriter, logger *slog.Logger) *Notifier {
	return &Notifier{
		writer: writer,
		logger: logger.With("component", "kafka_notifier"),
	}
}

// Close shuts down the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}

// NotifyClient publishes a status change addressed to the ordering client.
func (n *Notifier) NotifyClient(ctx context.Context, event ports.OrderEvent) error {
	return n.publish(ctx, envelopeFromEvent(eventClientStatusChanged, event))
}

// NotifyCourier publishes the full order detail addressed to the courier who
// just claimed it.
func (n *Notifier) NotifyCourier(ctx context.Context, detail ports.OrderDetail) error {
	return n.publish(ctx, envelopeFromDetail(eventCourierOrderClaimed, detail))
}

// PublishOffer broadcasts a new unclaimed order to the courier audience.
func (n *Notifier) PublishOffer(ctx context.Context, detail ports.OrderDetail) error {
	return n.publish(ctx, envelopeFromDetail(eventOfferPublished, detail))
}

// SuppressOffer tells the courier audience an offer is no longer claimable.
func (n *Notifier) SuppressOffer(ctx context.Context, orderID kernel.UUID) error {
	return n.publish(ctx, eventEnvelope{
		Event:      eventOfferSuppressed,
		OrderID:    orderID.String(),
		OccurredAt: time.Now().UTC(),
	})
}

func (n *Notifier) publish(ctx context.Context, envelope eventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(envelope.OrderID),
		Value: payload,
	}
	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	n.logger.Debug("notification published",
		"event", envelope.Event,
		"order_id", envelope.OrderID,
	)
	return nil
}

// eventEnvelope is the wire format of one notification. Detail fields are
// omitted on bare status events.
type eventEnvelope struct {
	Event      string        `json:"event"`
	OrderID    string        `json:"order_id"`
	ClientID   string        `json:"client_id,omitempty"`
	CourierID  string        `json:"courier_id,omitempty"`
	Status     string        `json:"status,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
	Route      *routePayload `json:"route,omitempty"`
	Comment    string        `json:"comment,omitempty"`
	DistanceKm float64       `json:"distance_km,omitempty"`
	Price      float64       `json:"price,omitempty"`
}

type routePayload struct {
	OriginLat      float64 `json:"origin_lat"`
	OriginLon      float64 `json:"origin_lon"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLon float64 `json:"destination_lon"`
}

func envelopeFromEvent(name string, event ports.OrderEvent) eventEnvelope {
	envelope := eventEnvelope{
		Event:      name,
		OrderID:    event.OrderID.String(),
		ClientID:   event.ClientID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
	if event.CourierID != nil {
		envelope.CourierID = event.CourierID.String()
	}
	return envelope
}

func envelopeFromDetail(name string, detail ports.OrderDetail) eventEnvelope {
	envelope := envelopeFromEvent(name, detail.OrderEvent)
	envelope.Route = &routePayload{
		OriginLat:      detail.Origin.Latitude(),
		OriginLon:      detail.Origin.Longitude(),
		DestinationLat: detail.Destination.Latitude(),
		DestinationLon: detail.Destination.Longitude(),
	}
	envelope.Comment = detail.Comment
	envelope.DistanceKm = detail.DistanceKm
	envelope.Price = detail.Price
	return envelope
}
