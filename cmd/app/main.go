package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"strconv"

	"aftersales/cmd"
	httpadapter "aftersales/internal/adapters/in/http"
	"aftersales/internal/adapters/out/postgres/attemptrepo"
	"aftersales/internal/adapters/out/postgres/complaintrepo"
	"aftersales/internal/adapters/out/postgres/couponrepo"
	"aftersales/internal/adapters/out/postgres/orderrepo"
	"aftersales/internal/adapters/out/postgres/outboxrepo"
	"aftersales/internal/adapters/out/postgres/refundrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		OutboxBatchSize:   goDotEnvIntVariable("OUTBOX_BATCH_SIZE"),
		OutboxMaxAttempts: goDotEnvIntVariable("OUTBOX_MAX_ATTEMPTS"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&complaintrepo.ComplaintDTO{},
		&attemptrepo.AttemptDTO{},
		&couponrepo.CouponDTO{},
		&refundrepo.RequestDTO{},
		&outboxrepo.IntentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateFileComplaintCommandHandler(),
		app.CreateApproveComplaintCommandHandler(),
		app.CreateRejectComplaintCommandHandler(),
		app.CreateSchedulePickupCommandHandler(),
		app.CreateMarkPickedUpCommandHandler(),
		app.CreateCreateReplacementOrderCommandHandler(),
		app.CreateProcessRefundCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordDeliveryAttemptCommandHandler(),
		app.CreateMarkAttemptOutcomeCommandHandler(),
		app.CreateGetComplaintQueryHandler(),
		app.CreateGetComplaintsUnderInvestigationQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
