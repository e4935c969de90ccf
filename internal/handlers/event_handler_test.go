package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/repository/memory"
	"github.com/Rovan44/shopping-app-44/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePaymentStatusUpdateCommand(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	payments := service.NewPaymentService(store, nil, nil)
	modes := service.NewPaymentModeService(store)
	handler := NewEventHandler(payments)

	mode, err := modes.CreatePaymentMode(ctx, domain.PaymentModeRequest{Mode: "UPI"})
	require.NoError(t, err)
	amount := decimal.NewFromInt(99)
	created, err := payments.CreatePayment(ctx, domain.CreatePaymentRequest{PaymentModeID: mode.ID, Amount: &amount})
	require.NoError(t, err)

	event, err := events.NewEvent(events.PaymentStatusUpdateCommand, events.PaymentStatusUpdatePayload{
		PaymentID: created.ID,
		Status:    "completed",
	})
	require.NoError(t, err)
	require.NoError(t, handler.HandleEvent(ctx, event))

	got, err := payments.GetPaymentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.Status)

	event, err = events.NewEvent(events.PaymentStatusUpdateCommand, events.PaymentStatusUpdatePayload{
		PaymentID: uuid.New(),
		Status:    "FAILED",
	})
	require.NoError(t, err)
	assert.True(t, domain.IsNotFound(handler.HandleEvent(ctx, event)))

	event, err = events.NewEvent(events.PaymentStatusUpdateCommand, events.PaymentStatusUpdatePayload{
		PaymentID: created.ID,
		Status:    "LOST",
	})
	require.NoError(t, err)
	assert.True(t, domain.IsValidation(handler.HandleEvent(ctx, event)))

	event = events.Event{EventType: events.PaymentStatusUpdateCommand, Payload: json.RawMessage(`{}`)}
	assert.Error(t, handler.HandleEvent(ctx, event))

	event = events.Event{EventType: events.PaymentCreatedEvent}
	assert.NoError(t, handler.HandleEvent(ctx, event))
}
