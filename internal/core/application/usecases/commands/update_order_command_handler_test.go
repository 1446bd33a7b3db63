package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id, userID uint64, items []order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, userID, 1, 2, 3, "new", 0, items)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_ReplaceItems_Success(t *testing.T) {
	ctx := context.Background()
	actor := clientCaller(1)

	// Remove product 10 and bump product 11; total is recomputed over the
	// remaining set at current prices, fetching each product once.
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{},
		[]commands.LineItemInput{
			{ProductID: 10, Quantity: 0},
			{ProductID: 11, Quantity: 3},
		})
	require.NoError(t, err)

	existing := storedOrder(t, 5, 1, []order.LineItem{
		{ProductID: 10, Quantity: 2},
		{ProductID: 11, Quantity: 1},
	})

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*order.Order)
			require.Equal(t, []order.LineItem{{ProductID: 11, Quantity: 3}}, updated.LineItems())
			require.Equal(t, int64(2100), updated.TotalAmount())
		}).
		Return(nil).Once()

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, uint64(11)).Return(storedProduct(t, 11, 700), nil).Once()

	methodRepo := new(MockMethodRepository)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ForeignOrder_Forbidden(t *testing.T) {
	ctx := context.Background()
	actor := clientCaller(1)
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(storedOrder(t, 5, 2, nil), nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderCommandHandler_Handle_AdminCanTouchForeignOrder(t *testing.T) {
	ctx := context.Background()
	actor := adminCaller(1)
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(storedOrder(t, 5, 2, nil), nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	methodRepo := new(MockMethodRepository)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertNotCalled(t, "ProductRepository")
}

func TestUpdateOrderCommandHandler_Handle_StatusOnlyPatch_KeepsStoredTotal(t *testing.T) {
	ctx := context.Background()
	actor := clientCaller(1)

	// No products list in the command: the stored total must survive even if
	// catalog prices have moved since the order was placed.
	newStatus := "delivered"
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{Status: &newStatus}, nil)
	require.NoError(t, err)

	existing, err := order.RestoreOrder(5, 1, 1, 2, 3, "new", 500,
		[]order.LineItem{{ProductID: 10, Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*order.Order)
			require.Equal(t, "delivered", updated.Status())
			require.Equal(t, int64(500), updated.TotalAmount())
			require.Equal(t, []order.LineItem{{ProductID: 10, Quantity: 2}}, updated.LineItems())
			require.False(t, updated.LineItemsTouched())
		}).
		Return(nil).Once()

	methodRepo := new(MockMethodRepository)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertNotCalled(t, "ProductRepository")
}

func TestUpdateOrderCommandHandler_Handle_EmptyItemsList_RecomputesTotal(t *testing.T) {
	ctx := context.Background()
	actor := clientCaller(1)

	// A supplied-but-empty products list keeps the stored items and recomputes
	// the total over them at current prices.
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{},
		[]commands.LineItemInput{})
	require.NoError(t, err)

	existing, err := order.RestoreOrder(5, 1, 1, 2, 3, "new", 500,
		[]order.LineItem{{ProductID: 10, Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*order.Order)
			require.Equal(t, int64(800), updated.TotalAmount())
		}).
		Return(nil).Once()

	productRepo := new(MockProductRepository)
	productRepo.On("Get", ctx, uint64(10)).Return(storedProduct(t, 10, 400), nil).Once()

	methodRepo := new(MockMethodRepository)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("MethodRepository").Return(methodRepo).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ForeignAddressPatch_NotAccessible(t *testing.T) {
	ctx := context.Background()
	// Admins update any order, but the address must still be their own.
	actor := adminCaller(1)
	newAddress := uint64(7)
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{AddressID: &newAddress}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(storedOrder(t, 5, 2, nil), nil).Once()

	addrRepo := new(MockAddressRepository)
	addrRepo.On("Get", ctx, uint64(7)).Return(ownedAddress(t, 7, 2), nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AddressRepository").Return(addrRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddressNotAccessible)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderCommandHandler_Handle_MissingAddressPatch_NotAccessible(t *testing.T) {
	ctx := context.Background()
	actor := clientCaller(1)
	newAddress := uint64(7)
	cmd, err := commands.NewUpdateOrderCommand(actor, 5, order.Patch{AddressID: &newAddress}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).Return(storedOrder(t, 5, 1, nil), nil).Once()

	addrRepo := new(MockAddressRepository)
	addrRepo.On("Get", ctx, uint64(7)).
		Return(nil, errs.NewObjectNotFoundError("address", uint64(7))).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AddressRepository").Return(addrRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddressNotAccessible)
}

func TestUpdateOrderCommandHandler_Handle_MissingOrder_Fails(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderCommand(clientCaller(1), 5, order.Patch{}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, uint64(5)).
		Return(nil, errs.NewObjectNotFoundError("order", uint64(5))).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
