package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/google/uuid"
)

type EventType string

const (
	// Published after a committed write
	PaymentCreatedEvent       EventType = "payment.created"
	PaymentStatusUpdatedEvent EventType = "payment.status.updated"
	ProductStockReducedEvent  EventType = "product.stock.reduced"

	// Commands accepted by the consumer
	PaymentStatusUpdateCommand EventType = "payment.status.update"
)

const ServiceName = "storefront-api"

type Event struct {
	ID            uuid.UUID       `json:"id"`
	EventType     EventType       `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	Timestamp     time.Time       `json:"timestamp"`
	Service       string          `json:"service"`
	CorrelationID uuid.UUID       `json:"correlation_id"`
}

func NewEvent(eventType EventType, payload interface{}) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("event payload serialization error: %w", err)
	}
	return Event{
		ID:            uuid.New(),
		EventType:     eventType,
		Payload:       body,
		Timestamp:     time.Now(),
		Service:       ServiceName,
		CorrelationID: uuid.New(),
	}, nil
}

func (e Event) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 {
		return fmt.Errorf("event %s has no payload", e.EventType)
	}
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return fmt.Errorf("event %s payload: %w", e.EventType, err)
	}
	return nil
}

type PaymentCreatedPayload struct {
	Payment domain.PaymentView `json:"payment"`
}

type PaymentStatusUpdatedPayload struct {
	PaymentID      uuid.UUID            `json:"payment_id"`
	PreviousStatus domain.PaymentStatus `json:"previous_status"`
	Status         domain.PaymentStatus `json:"status"`
}

type ProductStockReducedPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Remaining int       `json:"remaining"`
}

type PaymentStatusUpdatePayload struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Status    string    `json:"status"`
}

// Publisher delivers events to the message bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
