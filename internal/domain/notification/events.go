package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"

	"salonbooking/internal/domain"
)

// LifecycleEvent is published once per dispatched appointment transition.
type LifecycleEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	AppointmentID   string    `json:"appointment_id"`
	BusinessID      string    `json:"business_id"`
	CustomerID      string    `json:"customer_id"`
	StylistID       *string   `json:"stylist_id,omitempty"`
	Status          string    `json:"status"`
	AppointmentDate time.Time `json:"appointment_date"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func newLifecycleEvent(a *domain.Appointment, action domain.NotificationAction) LifecycleEvent {
	return LifecycleEvent{
		EventID:         uuid.NewString(),
		EventType:       "appointment." + string(action),
		AppointmentID:   a.ID,
		BusinessID:      a.BusinessID,
		CustomerID:      a.CustomerID,
		StylistID:       a.StylistID,
		Status:          string(a.Status),
		AppointmentDate: a.AppointmentDate.UTC(),
		OccurredAt:      time.Now().UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, ev LifecycleEvent) error
	Close() error
}

// KafkaPublisher keys messages by appointment id so one appointment's events
// stay on one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:      brokers,
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: int(kafka.RequireOne),
		}),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev LifecycleEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	headers := []kafka.Header{
		{Key: "event_id", Value: []byte(ev.EventID)},
		{Key: "event_type", Value: []byte(ev.EventType)},
	}
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(ev.AppointmentID),
		Value:   payload,
		Headers: carrier.headers,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// headerCarrier adapts kafka headers to the W3C trace propagator.
type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, h := range c.headers {
		if h.Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}
