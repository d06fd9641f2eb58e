package placedorderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertaking/internal/adapters/out/postgres/placedorderrepo"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PlacedOrderRepositoryIntegrationTestSuite provides integration tests for
// PlacedOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type PlacedOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *placedorderrepo.GormPlacedOrderRepository
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&placedorderrepo.PlacedOrderDTO{},
		&placedorderrepo.PlacedOrderLineDTO{},
	))
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE placed_orders, placed_order_lines").Error)
	suite.repository = placedorderrepo.NewGormPlacedOrderRepository(suite.db)
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) buildPricedOrder(id string) order.PricedOrder {
	orderID, err := kernel.NewOrderID("OrderId", id)
	suite.Require().NoError(err)

	firstName, err := kernel.NewString50("FirstName", "Ada")
	suite.Require().NoError(err)
	lastName, err := kernel.NewString50("LastName", "Lovelace")
	suite.Require().NoError(err)
	email, err := kernel.NewEmailAddress("EmailAddress", "ada@example.com")
	suite.Require().NoError(err)
	name, err := order.NewPersonName(firstName, lastName)
	suite.Require().NoError(err)
	customerInfo, err := order.NewCustomerInfo(name, email)
	suite.Require().NoError(err)

	line1, err := kernel.NewString50("AddressLine1", "1 Analytical Row")
	suite.Require().NoError(err)
	line2, err := kernel.NewOptionalString50("AddressLine2", "Flat 3")
	suite.Require().NoError(err)
	empty, err := kernel.NewOptionalString50("AddressLine3", "")
	suite.Require().NoError(err)
	city, err := kernel.NewString50("City", "London")
	suite.Require().NoError(err)
	zip, err := kernel.NewZipCode("ZipCode", "12345")
	suite.Require().NoError(err)
	address, err := order.NewAddress(line1, line2, empty, empty, city, zip)
	suite.Require().NoError(err)

	widgetCode, err := kernel.NewProductCode("ProductCode", "W1001")
	suite.Require().NoError(err)
	gizmoCode, err := kernel.NewProductCode("ProductCode", "G123")
	suite.Require().NoError(err)

	widgetLine := suite.buildPricedLine("line-1", widgetCode, 5, 50.0)
	gizmoLine := suite.buildPricedLine("line-2", gizmoCode, 2.5, 10.0)

	validated, err := order.NewValidatedOrder(orderID, customerInfo, address, address,
		[]order.ValidatedOrderLine{widgetLine.ValidatedLine, gizmoLine.ValidatedLine})
	suite.Require().NoError(err)

	amountToBill, err := kernel.NewBillingAmount("AmountToBill", 60.0)
	suite.Require().NoError(err)

	priced, err := order.NewPricedOrder(validated,
		[]order.PricedOrderLine{widgetLine.PricedLine, gizmoLine.PricedLine}, amountToBill)
	suite.Require().NoError(err)

	return priced
}

type builtLine struct {
	ValidatedLine order.ValidatedOrderLine
	PricedLine    order.PricedOrderLine
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) buildPricedLine(
	id string,
	code kernel.ProductCode,
	qty, price float64,
) builtLine {
	lineID, err := kernel.NewOrderLineID("OrderLineId", id)
	suite.Require().NoError(err)
	quantity, err := kernel.NewOrderQuantity("Quantity", code, qty)
	suite.Require().NoError(err)
	validatedLine, err := order.NewValidatedOrderLine(lineID, code, quantity)
	suite.Require().NoError(err)
	linePrice, err := kernel.NewPrice("LinePrice", price)
	suite.Require().NoError(err)
	pricedLine, err := order.NewPricedOrderLine(validatedLine, linePrice)
	suite.Require().NoError(err)

	return builtLine{ValidatedLine: validatedLine, PricedLine: pricedLine}
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	priced := suite.buildPricedOrder("ORD-0001")

	err := suite.repository.Add(ctx, priced)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, priced.OrderID())
	suite.Require().NoError(err)

	suite.True(restored.OrderID().IsEqual(priced.OrderID()))
	suite.Equal("Ada", restored.CustomerInfo().Name().FirstName().Value())
	suite.Equal("ada@example.com", restored.CustomerInfo().Email().Value())
	suite.Equal("Flat 3", restored.ShippingAddress().AddressLine2().Value())
	suite.False(restored.ShippingAddress().AddressLine3().HasValue())
	suite.InDelta(60.0, restored.AmountToBill().Value(), 1e-9)
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TestAdd_PreservesLineOrder() {
	ctx := context.Background()
	priced := suite.buildPricedOrder("ORD-0002")

	suite.Require().NoError(suite.repository.Add(ctx, priced))

	restored, err := suite.repository.Get(ctx, priced.OrderID())
	suite.Require().NoError(err)

	lines := restored.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("line-1", lines[0].OrderLineID().Value())
	suite.Equal("W1001", lines[0].ProductCode().Value())
	suite.InDelta(5.0, lines[0].Quantity().Value(), 1e-9)
	suite.InDelta(50.0, lines[0].LinePrice().Value(), 1e-9)
	suite.Equal("line-2", lines[1].OrderLineID().Value())
	suite.Equal("G123", lines[1].ProductCode().Value())
	suite.InDelta(2.5, lines[1].Quantity().Value(), 1e-9)
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Fails() {
	ctx := context.Background()
	priced := suite.buildPricedOrder("ORD-0003")

	suite.Require().NoError(suite.repository.Add(ctx, priced))

	err := suite.repository.Add(ctx, priced)
	suite.Require().Error(err)
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), order.PricedOrder{})

	suite.Require().ErrorIs(err, order.ErrPricedOrderIsNotConstructed)
}

func (suite *PlacedOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	id, err := kernel.NewOrderID("OrderId", "ORD-9999")
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), id)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPlacedOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PlacedOrderRepositoryIntegrationTestSuite))
}
