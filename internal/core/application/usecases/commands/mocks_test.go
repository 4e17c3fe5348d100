package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/jre"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(
	ctx context.Context, sellerID string, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAssigned(ctx context.Context, sellerID string) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAssignedForRunner(
	ctx context.Context, sellerID, operatorID, jreID string,
) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID, operatorID, jreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOtpRepository struct{ mock.Mock }

func (m *MockOtpRepository) Put(ctx context.Context, record *otp.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOtpRepository) Update(ctx context.Context, record *otp.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOtpRepository) Get(ctx context.Context, id string) (*otp.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*otp.Record), args.Error(1)
}

func (m *MockOtpRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOtpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OtpRepository() ports.OtpRepository {
	args := m.Called()
	return args.Get(0).(ports.OtpRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockResolver struct{ mock.Mock }

func (m *MockResolver) Resolve(ctx context.Context, jreID string) (jre.Contact, error) {
	args := m.Called(ctx, jreID)
	return args.Get(0).(jre.Contact), args.Error(1)
}

func mustMobile(t *testing.T, digits string) kernel.Mobile {
	t.Helper()
	m, err := kernel.NewMobile(digits)
	require.NoError(t, err)
	return m
}

func restoreOrder(t *testing.T, sellerID, operatorID, jreID string, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:         kernel.NewUUID(),
		SellerID:   sellerID,
		OperatorID: operatorID,
		JREID:      jreID,
		Details:    order.Details{ProductName: "Gold Chain"},
		Specs:      order.Specs{NetWt: 10, GrossWt: 10.4},
		Status:     status,
	})
	require.NoError(t, err)
	return o
}
