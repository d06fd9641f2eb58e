package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Exists(code kernel.ProductCode) bool {
	args := m.Called(code)
	return args.Bool(0)
}

func (m *MockProductCatalog) Price(code kernel.ProductCode) (kernel.Price, error) {
	args := m.Called(code)
	return args.Get(0).(kernel.Price), args.Error(1)
}

type MockAddressChecker struct{ mock.Mock }

func (m *MockAddressChecker) Check(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(order.CheckedAddress), args.Error(1)
}

type MockLetterRenderer struct{ mock.Mock }

func (m *MockLetterRenderer) Render(priced order.PricedOrder) ports.Letter {
	args := m.Called(priced)
	return args.Get(0).(ports.Letter)
}

type MockAcknowledgementSender struct{ mock.Mock }

func (m *MockAcknowledgementSender) Deliver(ctx context.Context, ack ports.OrderAcknowledgement) ports.SendResult {
	args := m.Called(ctx, ack)
	return args.Get(0).(ports.SendResult)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	args := m.Called(ctx, scope, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	args := m.Called(ctx, scope, key)
	return args.Error(0)
}

type MockPlacedOrderRepository struct{ mock.Mock }

func (m *MockPlacedOrderRepository) Add(ctx context.Context, priced order.PricedOrder) error {
	args := m.Called(ctx, priced)
	return args.Error(0)
}

func (m *MockPlacedOrderRepository) Get(_ context.Context, _ kernel.OrderID) (order.PricedOrder, error) {
	return order.PricedOrder{}, errors.New("not implemented in mock")
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) AddEvent(ctx context.Context, evt order.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(_ context.Context, _ int) ([]ports.OutboxMessage, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOutboxRepository) MarkPublished(_ context.Context, _ ports.OutboxMessage) error {
	return errors.New("not implemented in mock")
}

type MockPlaceOrderUoW struct{ mock.Mock }

func (m *MockPlaceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) PlacedOrderRepository() ports.PlacedOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PlacedOrderRepository)
}

func (m *MockPlaceOrderUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

// handlerFixture wires a full workflow over mocked collaborators, defaulted
// to the happy path: every code exists at 10.00, every address passes, the
// acknowledgement is delivered, the id lock is granted.
type handlerFixture struct {
	catalog     *MockProductCatalog
	checker     *MockAddressChecker
	renderer    *MockLetterRenderer
	sender      *MockAcknowledgementSender
	idempotency *MockIdempotencyStore
	orderRepo   *MockPlacedOrderRepository
	outboxRepo  *MockOutboxRepository
	uow         *MockPlaceOrderUoW
	factory     *MockPlaceOrderUoWFactory
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		catalog:     new(MockProductCatalog),
		checker:     new(MockAddressChecker),
		renderer:    new(MockLetterRenderer),
		sender:      new(MockAcknowledgementSender),
		idempotency: new(MockIdempotencyStore),
		orderRepo:   new(MockPlacedOrderRepository),
		outboxRepo:  new(MockOutboxRepository),
		uow:         new(MockPlaceOrderUoW),
		factory:     new(MockPlaceOrderUoWFactory),
	}

	price, err := kernel.NewPrice("Price", 10.0)
	require.NoError(t, err)

	f.catalog.On("Exists", mock.Anything).Return(true).Maybe()
	f.catalog.On("Price", mock.Anything).Return(price, nil).Maybe()
	f.checker.On("Check", mock.Anything, mock.Anything).
		Return(order.NewCheckedAddress(validRawAddress()), nil).Maybe()
	f.renderer.On("Render", mock.Anything).Return(ports.Letter{Body: "thank you"}).Maybe()
	f.sender.On("Deliver", mock.Anything, mock.Anything).Return(ports.Sent).Maybe()
	f.idempotency.On("TryLock", mock.Anything, "place-order", mock.Anything).Return(true, nil).Maybe()

	f.factory.On("Create").Return(f.uow).Maybe()
	f.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	f.uow.On("Commit", mock.Anything).Return(nil).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.uow.On("PlacedOrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("OutboxRepository").Return(f.outboxRepo).Maybe()
	f.orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.outboxRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Maybe()

	return f
}

func (f *handlerFixture) handler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		f.factory,
		services.NewOrderValidator(f.catalog, f.checker),
		services.NewOrderPricer(f.catalog),
		services.NewOrderAcknowledger(f.renderer, f.sender),
		f.idempotency,
	)
}

func validRawAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "1 Analytical Row",
		City:         "London",
		ZipCode:      "12345",
	}
}

func validRawOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "ORD-0001",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		},
		ShippingAddress: validRawAddress(),
		BillingAddress:  validRawAddress(),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "line-1", ProductCode: "W1001", Quantity: 5},
		},
	}
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	f := newHandlerFixture(t)
	h := f.handler()

	events, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, order.EventTypeAcknowledgementSent, events[0].EventType())
	assert.Equal(t, order.EventTypeOrderPlaced, events[1].EventType())
	assert.Equal(t, order.EventTypeBillableOrderPlaced, events[2].EventType())

	placed, ok := events[1].(order.OrderPlaced)
	require.True(t, ok)
	assert.InDelta(t, 50.0, placed.PricedOrder().AmountToBill().Value(), 1e-9)

	billing, ok := events[2].(order.BillableOrderPlaced)
	require.True(t, ok)
	assert.InDelta(t, 50.0, billing.AmountToBill().Value(), 1e-9)

	f.orderRepo.AssertNumberOfCalls(t, "Add", 1)
	f.outboxRepo.AssertNumberOfCalls(t, "AddEvent", 3)
	f.uow.AssertCalled(t, "Commit", mock.Anything)
	// The id claim survives a successful run.
	f.idempotency.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnacknowledgedOrderOmitsAckEvent(t *testing.T) {
	f := newHandlerFixture(t)
	f.sender.ExpectedCalls = nil
	f.sender.On("Deliver", mock.Anything, mock.Anything).Return(ports.NotSent)

	h := f.handler()
	events, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, order.EventTypeOrderPlaced, events[0].EventType())
	assert.Equal(t, order.EventTypeBillableOrderPlaced, events[1].EventType())
	f.outboxRepo.AssertNumberOfCalls(t, "AddEvent", 2)
}

func TestPlaceOrderCommandHandler_Handle_ValidationFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.idempotency.On("Release", mock.Anything, "place-order", "").Return(nil).Once()

	raw := validRawOrder()
	raw.OrderID = ""

	h := f.handler()
	events, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(raw))

	require.Error(t, err)
	var validationErr *order.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "OrderId")

	assert.Empty(t, events)
	f.factory.AssertNotCalled(t, "Create")
	f.idempotency.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PricingFailure(t *testing.T) {
	// 5 units at 25.00 exceeds the 100.00 line ceiling.
	f := newHandlerFixture(t)
	price, err := kernel.NewPrice("Price", 25.0)
	require.NoError(t, err)
	f.catalog.ExpectedCalls = nil
	f.catalog.On("Exists", mock.Anything).Return(true)
	f.catalog.On("Price", mock.Anything).Return(price, nil)
	f.idempotency.On("Release", mock.Anything, "place-order", "ORD-0001").Return(nil).Once()

	h := f.handler()
	events, handleErr := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.Error(t, handleErr)
	var pricingErr *order.PricingError
	require.ErrorAs(t, handleErr, &pricingErr)

	assert.Empty(t, events)
	// No delivery attempt and nothing persisted for a failed order.
	f.sender.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	f.factory.AssertNotCalled(t, "Create")
	f.idempotency.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_RemoteServiceFailurePassesThrough(t *testing.T) {
	f := newHandlerFixture(t)
	remoteErr := order.NewRemoteServiceError(order.ServiceInfo{
		Name:     "AddressVerification",
		Endpoint: "https://addresses.example.com/check",
	}, errors.New("connection refused"))
	f.checker.ExpectedCalls = nil
	f.checker.On("Check", mock.Anything, mock.Anything).Return(order.CheckedAddress{}, remoteErr)
	f.idempotency.On("Release", mock.Anything, "place-order", "ORD-0001").Return(nil).Once()

	h := f.handler()
	_, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	var rse *order.RemoteServiceError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, "AddressVerification", rse.Service.Name)
	f.idempotency.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateOrder(t *testing.T) {
	f := newHandlerFixture(t)
	f.idempotency.ExpectedCalls = nil
	f.idempotency.On("TryLock", mock.Anything, "place-order", "ORD-0001").Return(false, nil)

	h := f.handler()
	_, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.ErrorIs(t, err, commands.ErrOrderAlreadyPlaced)
	// The original claim stays; a duplicate must not release it.
	f.idempotency.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	f.checker.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_PersistenceFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.orderRepo.ExpectedCalls = nil
	f.orderRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error"))
	f.idempotency.On("Release", mock.Anything, "place-order", "ORD-0001").Return(nil).Once()

	h := f.handler()
	_, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.Error(t, err)
	f.uow.AssertCalled(t, "Rollback", mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.idempotency.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitFailure(t *testing.T) {
	f := newHandlerFixture(t)
	f.uow.ExpectedCalls = nil
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("PlacedOrderRepository").Return(f.orderRepo)
	f.uow.On("OutboxRepository").Return(f.outboxRepo)
	f.uow.On("Commit", mock.Anything).Return(errors.New("commit error"))
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.idempotency.On("Release", mock.Anything, "place-order", "ORD-0001").Return(nil).Once()

	h := f.handler()
	_, err := h.Handle(context.Background(), commands.NewPlaceOrderCommand(validRawOrder()))

	require.Error(t, err)
	f.idempotency.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	f := newHandlerFixture(t)

	h := f.handler()
	_, err := h.Handle(context.Background(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	f.idempotency.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
}
