package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/gateway"
	"github.com/Rovan44/shopping-app-44/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []events.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.EventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.EventType)
	}
	return types
}

type fakeGateway struct {
	calls    int
	response *gateway.PaymentResponse
	err      error
}

func (g *fakeGateway) ProcessPayment(_ context.Context, request gateway.PaymentRequest) (*gateway.PaymentResponse, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if g.response != nil {
		return g.response, nil
	}
	return &gateway.PaymentResponse{Status: domain.PaymentStatusPending, TransactionID: request.TransactionID}, nil
}

var errGatewayDown = errors.New("gateway down")

type fixture struct {
	store     *memory.Store
	publisher *recordingPublisher
	gateway   *fakeGateway
	payments  *PaymentService
	modes     *PaymentModeService
	products  *ProductService
	dashboard *DashboardService
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     memory.NewStore(),
		publisher: &recordingPublisher{},
		gateway:   &fakeGateway{},
		clock:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	f.payments = NewPaymentService(f.store, f.gateway, f.publisher).WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	})
	f.modes = NewPaymentModeService(f.store)
	f.products = NewProductService(f.store, f.publisher)
	f.dashboard = NewDashboardService(f.store)
	return f
}

func (f *fixture) mode(t *testing.T, name string, active bool) *domain.PaymentMode {
	t.Helper()
	mode, err := f.modes.CreatePaymentMode(context.Background(), domain.PaymentModeRequest{Mode: name, IsActive: &active})
	require.NoError(t, err)
	return mode
}

func (f *fixture) pay(t *testing.T, mode *domain.PaymentMode, amount string) *domain.PaymentView {
	t.Helper()
	value := decimal.RequireFromString(amount)
	view, err := f.payments.CreatePayment(context.Background(), domain.CreatePaymentRequest{
		PaymentModeID: mode.ID,
		Amount:        &value,
	})
	require.NoError(t, err)
	return view
}

func amount(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}
