package commands_test

import (
	"context"
	"testing"
	"time"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/coupon"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/refund"
	"aftersales/internal/core/domain/model/shipment"
	"aftersales/internal/core/ports"

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

func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockComplaintRepository struct{ mock.Mock }

func (m *MockComplaintRepository) Add(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*complaint.Complaint, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*complaint.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) GetAllUnderInvestigation(ctx context.Context) ([]*complaint.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*complaint.Complaint), args.Error(1)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) Add(ctx context.Context, a *shipment.Attempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttemptRepository) Update(ctx context.Context, a *shipment.Attempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAttemptRepository) Get(ctx context.Context, orderID kernel.UUID, attemptNumber int) (*shipment.Attempt, error) {
	args := m.Called(ctx, orderID, attemptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Attempt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) NextAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockCouponRepository struct{ mock.Mock }

func (m *MockCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, r *refund.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Update(ctx context.Context, r *refund.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*refund.Request), args.Error(1)
}

func (m *MockRefundRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.Request, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*refund.Request), args.Error(1)
}

type MockNotificationOutbox struct{ mock.Mock }

func (m *MockNotificationOutbox) Add(ctx context.Context, i *notification.Intent) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockNotificationOutbox) Update(ctx context.Context, i *notification.Intent) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockNotificationOutbox) Get(ctx context.Context, id kernel.UUID) (*notification.Intent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Intent), args.Error(1)
}

func (m *MockNotificationOutbox) GetAllPending(ctx context.Context, limit int) ([]*notification.Intent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Intent), args.Error(1)
}

// MockUoW satisfies every graded unit of work interface in the package.
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

func (m *MockUoW) ComplaintRepository() ports.ComplaintRepository {
	args := m.Called()
	return args.Get(0).(ports.ComplaintRepository)
}

func (m *MockUoW) AttemptRepository() ports.AttemptRepository {
	args := m.Called()
	return args.Get(0).(ports.AttemptRepository)
}

func (m *MockUoW) CouponRepository() ports.CouponRepository {
	args := m.Called()
	return args.Get(0).(ports.CouponRepository)
}

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

func (m *MockUoW) NotificationOutbox() ports.NotificationOutbox {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutbox)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAttemptUoWFactory struct{ mock.Mock }

func (m *MockAttemptUoWFactory) Create() commands.AttemptUoW {
	args := m.Called()
	return args.Get(0).(commands.AttemptUoW)
}

type MockComplaintUoWFactory struct{ mock.Mock }

func (m *MockComplaintUoWFactory) Create() commands.ComplaintUoW {
	args := m.Called()
	return args.Get(0).(commands.ComplaintUoW)
}

type MockResolutionUoWFactory struct{ mock.Mock }

func (m *MockResolutionUoWFactory) Create() commands.ResolutionUoW {
	args := m.Called()
	return args.Get(0).(commands.ResolutionUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Notify(ctx context.Context, i *notification.Intent) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

// Fixtures shared by the handler tests.

func placedOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Bluetooth Speaker", 2499.0, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
		method, 2499.0, "Meera Iyer", "meera@example.com", "+91-9222222222", "")
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()
	o := placedOrder(t, method)
	require.NoError(t, o.StartProcessing())
	require.NoError(t, o.MarkShipped(time.Now().AddDate(0, 0, -2)))
	require.NoError(t, o.MarkDelivered(time.Now().AddDate(0, 0, -1)))
	return o
}

func investigatingComplaint(t *testing.T, o *order.Order, complaintType complaint.ComplaintType) *complaint.Complaint {
	t.Helper()
	c, err := complaint.NewComplaint(kernel.NewUUID(), o.ID(), o.UserID(),
		complaintType, "item arrived broken", nil, time.Now())
	require.NoError(t, err)
	return c
}

func approvedComplaint(t *testing.T, o *order.Order, complaintType complaint.ComplaintType) *complaint.Complaint {
	t.Helper()
	c := investigatingComplaint(t, o, complaintType)
	cp, err := coupon.NewApologyCoupon(time.Now())
	require.NoError(t, err)
	require.NoError(t, c.Approve(cp, "verified"))
	return c
}

func pickedUpComplaint(t *testing.T, o *order.Order, complaintType complaint.ComplaintType) *complaint.Complaint {
	t.Helper()
	c := approvedComplaint(t, o, complaintType)
	require.NoError(t, c.SchedulePickup(time.Now().AddDate(0, 0, 1)))
	require.NoError(t, c.MarkPickedUp(time.Now().AddDate(0, 0, 2)))
	return c
}
