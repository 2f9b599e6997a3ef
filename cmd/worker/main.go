// The worker process hosts the fulfillment workflow and its activities. It
// shares the composition root with the HTTP app, so activities run the same
// command handlers and hit the same database.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	"fulfillment/internal/workflows"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	temporalClient, err := client.Dial(client.Options{HostPort: configs.TemporalHostPort})
	if err != nil {
		log.Fatalf("Error connecting to temporal: %v", err)
	}
	defer temporalClient.Close()

	root := cmd.NewCompositionRoot(configs, gormDB, temporalClient, logger)
	defer root.Close()

	activities := workflows.NewActivities(
		root.CreateAdvanceOrderCommandHandler(),
		root.CreateSuspendOrderCommandHandler(),
		logger,
	)

	w := worker.New(temporalClient, workflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.OrderFulfillmentWorkflow)
	w.RegisterActivity(activities)

	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("Error running worker: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
		TemporalHostPort:      goDotEnvVariable("TEMPORAL_HOST_PORT"),
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
