package commands_test

import (
	"testing"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReplacementOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := pickedUpComplaint(t, testOrder, complaint.TypeDamaged)
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewCreateReplacementOrderCommand(testComplaint.ID(), replacementID)
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		complaintRepo.On("Update", ctx, testComplaint).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.AnythingOfType("*notification.Intent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResolutionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateReplacementOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, complaint.ResolutionReplacement, testComplaint.ResolutionType())
	assert.True(t, testComplaint.ReplacementOrderID().IsEqual(replacementID))

	createdOrder := orderRepo.Calls[1].Arguments.Get(1).(*order.Order)
	assert.True(t, createdOrder.ID().IsEqual(replacementID))
	assert.Equal(t, order.TypeReplacement, createdOrder.OrderType())
	assert.Zero(t, createdOrder.TotalAmount())
	assert.True(t, createdOrder.ParentOrderID().IsEqual(testOrder.ID()))

	queuedIntent := outbox.Calls[0].Arguments.Get(1).(*notification.Intent)
	assert.Equal(t, notification.TypeReplacementCreated, queuedIntent.IntentType())

	complaintRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestCreateReplacementOrderCommandHandler_Handle_WarrantyType(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodCard)
	testComplaint := pickedUpComplaint(t, testOrder, complaint.TypeWarranty)
	replacementID := kernel.NewUUID()

	cmd, err := commands.NewCreateReplacementOrderCommand(testComplaint.ID(), replacementID)
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	outbox := new(MockNotificationOutbox)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		complaintRepo.On("Update", ctx, testComplaint).Return(nil).Once(),
		uow.On("NotificationOutbox").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.AnythingOfType("*notification.Intent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResolutionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateReplacementOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	createdOrder := orderRepo.Calls[1].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.TypeWarrantyReplacement, createdOrder.OrderType())
}

func TestCreateReplacementOrderCommandHandler_Handle_SecondRemedy(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := pickedUpComplaint(t, testOrder, complaint.TypeDamaged)
	require.NoError(t, testComplaint.AttachReplacement(kernel.NewUUID()))

	cmd, err := commands.NewCreateReplacementOrderCommand(testComplaint.ID(), kernel.NewUUID())
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResolutionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateReplacementOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateReplacementOrderCommandHandler_Handle_PickupIncomplete(t *testing.T) {
	ctx := t.Context()
	testOrder := deliveredOrder(t, order.PaymentMethodUPI)
	testComplaint := approvedComplaint(t, testOrder, complaint.TypeDamaged)

	cmd, err := commands.NewCreateReplacementOrderCommand(testComplaint.ID(), kernel.NewUUID())
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		complaintRepo.On("Get", ctx, testComplaint.ID()).Return(testComplaint, nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockResolutionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateReplacementOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestCreateReplacementOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateReplacementOrderCommand{} // not constructed properly

	factory := new(MockResolutionUoWFactory)
	handler := commands.NewCreateReplacementOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateReplacementOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
