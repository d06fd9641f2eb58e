package cmd

import (
	"log/slog"
	"time"

	"ordertaking/internal/adapters/out/addresscheck"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/kafka"
	"ordertaking/internal/adapters/out/noop"
	"ordertaking/internal/adapters/out/notifications"
	"ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/adapters/out/postgres/outboxrepo"
	redisadapter "ordertaking/internal/adapters/out/redis"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// addressCheckTimeout bounds one verification round trip.
const addressCheckTimeout = 5 * time.Second

// idempotencyTTL bounds how long an order id claim survives a lost release.
const idempotencyTTL = 24 * time.Hour

// defaultCatalog is the fixed price list served by the in-memory catalog.
// Replaced by a catalog service client once one exists.
var defaultCatalog = map[string]float64{
	"W1001": 10.00,
	"W1002": 25.00,
	"W1003": 3.50,
	"G123":  4.95,
	"G456":  19.99,
}

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *redis.Client
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})

	productCatalog := c.createProductCatalog()

	return commands.NewPlaceOrderCommandHandler(
		f,
		services.NewOrderValidator(productCatalog, c.createAddressChecker()),
		services.NewOrderPricer(productCatalog),
		services.NewOrderAcknowledger(
			notifications.NewPlainTextRenderer(),
			notifications.NewLogSender(c.logger),
		),
		redisadapter.NewIdempotencyStore(c.redisClient, idempotencyTTL),
	)
}

func (c *CompositionRoot) CreateGetPlacedOrderQueryHandler() queries.GetPlacedOrderQueryHandler {
	return queries.NewGetPlacedOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.createEventPublisher(),
		c.logger,
	)
}

func (c *CompositionRoot) createProductCatalog() ports.ProductCatalog {
	productCatalog, err := catalog.NewInMemoryCatalog(defaultCatalog)
	if err != nil {
		log.Fatalf("Invalid product catalog: %v", err)
	}
	return productCatalog
}

func (c *CompositionRoot) createAddressChecker() ports.AddressChecker {
	if c.config.AddressServiceURL == "" {
		return addresscheck.AcceptAll{}
	}
	return addresscheck.NewClient(c.config.AddressServiceURL, addressCheckTimeout)
}

func (c *CompositionRoot) createEventPublisher() ports.EventPublisher {
	if c.config.KafkaHost == "" {
		return noop.Publisher{}
	}
	return kafka.NewPublisher([]string{c.config.KafkaHost}, c.config.KafkaOrderEventTopic)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}
