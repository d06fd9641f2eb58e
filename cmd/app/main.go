package main

import (
	"fmt"
	"log/slog"
	"os"

	"ordertaking/cmd"
	httpadapter "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/postgres/outboxrepo"
	"ordertaking/internal/adapters/out/postgres/placedorderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", configs.RedisHost, configs.RedisPort),
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventTopic: goDotEnvVariable("KAFKA_ORDER_EVENT_TOPIC"),
		RedisHost:            goDotEnvVariable("REDIS_HOST"),
		RedisPort:            goDotEnvVariable("REDIS_PORT"),
		AddressServiceURL:    goDotEnvVariable("ADDRESS_SERVICE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&placedorderrepo.PlacedOrderDTO{},
		&placedorderrepo.PlacedOrderLineDTO{},
		&outboxrepo.OutboxEventDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateGetPlacedOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
