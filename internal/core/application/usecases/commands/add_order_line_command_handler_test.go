package commands_test

import (
	"context"
	"errors"
	"testing"

	"sale/internal/core/application/usecases/commands"
	"sale/internal/core/domain/model/kernel"
	"sale/internal/core/domain/model/order"
	"sale/internal/core/domain/model/product"
	"sale/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLineOrderRepository struct{ mock.Mock }

func (m *MockLineOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLineOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLineOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLineProductRepository struct{ mock.Mock }

func (m *MockLineProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockLineProductRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockLineUoW struct{ mock.Mock }

func (m *MockLineUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLineUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLineUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLineUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLineUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockLineUoWFactory struct{ mock.Mock }

func (m *MockLineUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newDraftOrder(t *testing.T, code string) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), code, "WEBSITE")
	require.NoError(t, err)
	return aggregate
}

func newCatalogItem(t *testing.T, code string) *product.Product {
	t.Helper()
	item, err := product.NewProduct(kernel.NewUUID(), code, "a product")
	require.NoError(t, err)
	return item
}

func TestAddOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderLineCommand("SO-000001", "plop", validLineInput())

	aggregate := newDraftOrder(t, "SO-000001")
	item := newCatalogItem(t, "plop")

	orderRepo := new(MockLineOrderRepository)
	productRepo := new(MockLineProductRepository)
	uow := new(MockLineUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", mock.Anything, "SO-000001").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "plop").Return(item, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, aggregate.Lines(), 1)

	line := aggregate.Lines()[0]
	require.True(t, line.AmountUntaxed().Equal(decimal.RequireFromString("83.33")))
	require.True(t, line.AmountTotal().Equal(decimal.RequireFromString("100")))

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddOrderLineCommand{} // not constructed properly
	factory := new(MockLineUoWFactory)
	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddOrderLineCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderLineCommand("SO-404", "plop", validLineInput())

	orderRepo := new(MockLineOrderRepository)
	uow := new(MockLineUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", mock.Anything, "SO-404").Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_InvalidPricingInput(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderLineCommand("SO-000001", "plop", order.LineInput{
		Quantity: decimal.NewFromInt(1),
		UnitTax:  decimal.NewFromInt(20),
		// no price supplied at all
	})

	aggregate := newDraftOrder(t, "SO-000001")
	item := newCatalogItem(t, "plop")

	orderRepo := new(MockLineOrderRepository)
	productRepo := new(MockLineProductRepository)
	uow := new(MockLineUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", mock.Anything, "SO-000001").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "plop").Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidPricingInput)
	require.Empty(t, aggregate.Lines())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderLineCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrderLineCommand("SO-000001", "plop", validLineInput())

	aggregate := newDraftOrder(t, "SO-000001")
	item := newCatalogItem(t, "plop")

	orderRepo := new(MockLineOrderRepository)
	productRepo := new(MockLineProductRepository)
	uow := new(MockLineUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByCode", mock.Anything, "SO-000001").Return(aggregate, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetByCode", mock.Anything, "plop").Return(item, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLineUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderLineCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
