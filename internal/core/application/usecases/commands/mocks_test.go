package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, key kernel.OrderKey) (*order.Order, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyTransition(ctx context.Context, key kernel.OrderKey, from order.Status, entry order.HistoryEntry) error {
	args := m.Called(ctx, key, from, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) SetSuspension(ctx context.Context, key kernel.OrderKey, suspension order.Suspension) error {
	args := m.Called(ctx, key, suspension)
	return args.Error(0)
}

func (m *MockOrderRepository) ClearSuspension(ctx context.Context, key kernel.OrderKey, at time.Time) error {
	args := m.Called(ctx, key, at)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendEvent(ctx context.Context, key kernel.OrderKey, entry order.EventEntry) error {
	args := m.Called(ctx, key, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByTenant(ctx context.Context, tenantID string) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, tenantID string, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, tenantID string, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindStaleSuspensions(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockWorkflowOrchestrator struct{ mock.Mock }

func (m *MockWorkflowOrchestrator) Resume(ctx context.Context, taskToken string, result any) error {
	args := m.Called(ctx, taskToken, result)
	return args.Error(0)
}

func testKey(t *testing.T) kernel.OrderKey {
	t.Helper()
	key, err := kernel.NewOrderKey("LIMA_CENTRO", kernel.NewUUID().String())
	require.NoError(t, err)
	return key
}

func storedOrder(t *testing.T, key kernel.OrderKey) *order.Order {
	t.Helper()
	item, err := order.NewItem("prod-1", 2, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(key, "cust-1", []order.Item{item}, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	return o
}
