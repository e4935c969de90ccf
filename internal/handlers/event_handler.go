package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/messaging"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/google/uuid"
)

// EventHandler applies commands that arrive over the message bus.
type EventHandler struct {
	paymentService *service.PaymentService
}

func NewEventHandler(paymentService *service.PaymentService) *EventHandler {
	return &EventHandler{
		paymentService: paymentService,
	}
}

func (h *EventHandler) HandleEvent(ctx context.Context, event events.Event) error {
	switch event.EventType {
	case events.PaymentStatusUpdateCommand:
		return h.handlePaymentStatusUpdate(ctx, event)
	default:
		log.Printf("Unhandled event type: %s", event.EventType)
		return nil
	}
}

func (h *EventHandler) handlePaymentStatusUpdate(ctx context.Context, event events.Event) error {
	var payload events.PaymentStatusUpdatePayload
	if err := event.DecodePayload(&payload); err != nil {
		return err
	}
	if payload.PaymentID == uuid.Nil {
		return fmt.Errorf("missing or invalid payment_id")
	}

	status, err := domain.ParsePaymentStatus(payload.Status)
	if err != nil {
		return err
	}

	if _, err := h.paymentService.UpdatePaymentStatus(ctx, payload.PaymentID, status); err != nil {
		log.Printf("Payment status command error: %v", err)
		return err
	}
	return nil
}

func (h *EventHandler) StartConsuming(consumer *messaging.Consumer) error {
	routingKeys := []string{
		messaging.RoutingKey("*", string(events.PaymentStatusUpdateCommand)),
	}
	return consumer.ConsumeEvents(routingKeys, h.HandleEvent)
}
