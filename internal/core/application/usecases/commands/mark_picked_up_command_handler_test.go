package commands_test

import (
	"testing"
	"time"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkPickedUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := approvedComplaint(t, testOrder, complaint.TypeReturn)
	require.NoError(t, testComplaint.SchedulePickup(time.Now().AddDate(0, 0, 1)))

	cmd, err := commands.NewMarkPickedUpCommand(testComplaint.ID())
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		complaintRepo.On("Update", ctx, testComplaint).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.AnythingOfType("*notification.Intent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplaintUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, complaint.PickedUp, testComplaint.PickupStatus())
	assert.NotNil(t, testComplaint.PickupCompletedAt())

	queuedIntent := outbox.Calls[0].Arguments.Get(1).(*notification.Intent)
	assert.Equal(t, notification.TypePickupCompleted, queuedIntent.IntentType())
}

func TestMarkPickedUpCommandHandler_Handle_AlreadyPickedUp(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := pickedUpComplaint(t, testOrder, complaint.TypeReturn)

	cmd, err := commands.NewMarkPickedUpCommand(testComplaint.ID())
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplaintUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestMarkPickedUpCommandHandler_Handle_NotScheduled(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := approvedComplaint(t, testOrder, complaint.TypeReturn)

	cmd, err := commands.NewMarkPickedUpCommand(testComplaint.ID())
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplaintUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestMarkPickedUpCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkPickedUpCommand{} // not constructed properly

	factory := new(MockComplaintUoWFactory)
	handler := commands.NewMarkPickedUpCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkPickedUpCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
