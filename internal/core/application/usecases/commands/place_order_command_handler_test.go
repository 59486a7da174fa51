package commands_test

import (
	"context"
	"errors"
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/delivery"
	"checkout/internal/core/domain/model/discount"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
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
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllInPaidStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, amount kernel.Money, details map[string]string) (bool, error) {
	args := m.Called(ctx, amount, details)
	return args.Bool(0), args.Error(1)
}

func placeOrderCommand(t *testing.T, deliveryStrategy delivery.Strategy) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), newTestCustomer(t), newTestCart(t),
		discount.NewFixedAmountDiscount(kernel.MustMoney("10.00")), deliveryStrategy,
		map[string]string{"weight": "2.0"},
		map[string]string{"method": "card"})
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_PaymentAccepted(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, delivery.NewCourier())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		// 85.00*2 - 10.00 discount + 400.00 courier
		gateway.On("Charge", ctx, kernel.MustMoney("560.00"), cmd.PaymentDetails()).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Paid, placed.Status())
	assert.Equal(t, "560.00", placed.Total().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PaymentDeclined(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, delivery.NewPickup())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		gateway.On("Charge", ctx, mock.Anything, cmd.PaymentDetails()).Return(false, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NoDeliveryStrategy(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, nil)

	gateway := new(MockPaymentGateway)
	factory := new(MockOrderUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	placed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, placed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	// Pricing failed, so nothing was charged and nothing was persisted.
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, delivery.NewPickup())

	gateway := new(MockPaymentGateway)
	gateway.On("Charge", ctx, mock.Anything, cmd.PaymentDetails()).
		Return(false, errors.New("gateway unreachable")).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	placed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, placed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderUoWFactory), new(MockPaymentGateway))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, delivery.NewPickup())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		gateway.On("Charge", ctx, mock.Anything, cmd.PaymentDetails()).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, delivery.NewPickup())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	gateway := new(MockPaymentGateway)
	mock.InOrder(
		gateway.On("Charge", ctx, mock.Anything, cmd.PaymentDetails()).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, gateway)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
