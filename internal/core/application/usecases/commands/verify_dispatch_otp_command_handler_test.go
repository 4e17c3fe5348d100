package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/otp"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingRecord(t *testing.T, code otp.PlainCode, issuedAt time.Time) *otp.Record {
	t.Helper()
	record, err := otp.NewRecord(mustMobile(t, "9876543210"), code, otp.DispatchDetails{
		GroupKey:     "op-1_jre-1",
		OperatorID:   "op-1",
		JREID:        "jre-1",
		OrdersCount:  2,
		TotalItems:   2,
		TotalWeight:  20.8,
		TotalPackets: 2,
	}, issuedAt)
	require.NoError(t, err)
	return record
}

func verifyCommand(t *testing.T, record *otp.Record, code string) commands.VerifyDispatchOtpCommand {
	t.Helper()
	cmd, err := commands.NewVerifyDispatchOtpCommand("seller-1", "op-1", "jre-1", record.ID(), code)
	require.NoError(t, err)
	return cmd
}

func TestVerifyDispatchOtpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	cmd := verifyCommand(t, record, "123456")

	orders := []*order.Order{
		restoreOrder(t, "seller-1", "op-1", "jre-1", order.Assigned),
		restoreOrder(t, "seller-1", "op-1", "jre-1", order.Assigned),
	}

	orderRepo := new(MockOrderRepository)
	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).Return(record, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllAssignedForRunner", mock.Anything, "seller-1", "op-1", "jre-1").
			Return(orders, nil).Once(),
		otpRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, orders[0]).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, orders[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(nil).Twice()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, publisher, commands.NewDispatchGate())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, record.IsVerified())
	assert.Equal(t, "seller-1", record.VerifiedBy())
	for _, o := range orders {
		assert.Equal(t, order.PickedUp, o.Status())
		assert.Equal(t, "jre-1", o.PickedUpBy())
		assert.Equal(t, "seller-1", o.VerifiedBy())
		assert.True(t, o.OTPVerified())
		assert.Equal(t, record.ID(), o.OTPReference())
		assert.NotNil(t, o.Stages().PickedUpAt)
	}
	otpRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestVerifyDispatchOtpCommandHandler_Handle_MalformedCode(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	cmd := verifyCommand(t, record, "12ab56")

	factory := new(MockUoWFactory)

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifyDispatchOtpCommandHandler_Handle_RecordNotFound(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	cmd := verifyCommand(t, record, "123456")

	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).
			Return(nil, errs.NewObjectNotFoundError("otpId", record.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestVerifyDispatchOtpCommandHandler_Handle_ExpiredDeletesRecord(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC().Add(-11*time.Minute))
	cmd := verifyCommand(t, record, "123456")

	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).Return(record, nil).Once(),
		otpRepo.On("Delete", mock.Anything, record.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCredentialExpired)
	otpRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyDispatchOtpCommandHandler_Handle_AlreadyUsed(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	require.NoError(t, record.MarkVerified("seller-1", time.Now().UTC()))
	cmd := verifyCommand(t, record, "123456")

	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCredentialAlreadyUsed)
	// the record is preserved for the audit trail
	otpRepo.AssertNotCalled(t, "Delete", mock.Anything, record.ID())
}

func TestVerifyDispatchOtpCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	cmd := verifyCommand(t, record, "654321")

	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.False(t, record.IsVerified())
}

func TestVerifyDispatchOtpCommandHandler_Handle_NoOrdersLeavesOtpPending(t *testing.T) {
	ctx := t.Context()
	record := pendingRecord(t, "123456", time.Now().UTC())
	cmd := verifyCommand(t, record, "123456")

	orderRepo := new(MockOrderRepository)
	otpRepo := new(MockOtpRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OtpRepository").Return(otpRepo).Once(),
		otpRepo.On("Get", mock.Anything, record.ID()).Return(record, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllAssignedForRunner", mock.Anything, "seller-1", "op-1", "jre-1").
			Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyDispatchOtpCommandHandler(factory, nil, commands.NewDispatchGate())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoAssignedOrdersFound)
	assert.False(t, record.IsVerified())
	uow.AssertNotCalled(t, "Commit", ctx)
}
