package app

import (
	"os"

	"go-empms/internal/audit"
	"go-empms/internal/employee"
	"go-empms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers the employee routes.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}, &audit.AuditLog{}); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	var publisher employee.EventPublisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		publisher = employee.NewKafkaEventPublisher(writer)
	} else {
		logger.Warn("KAFKA_BROKER not set, employee events will be dropped")
		publisher = employee.NewNoopEventPublisher()
	}

	return registerModules(router, gormDB, redisClient, publisher, logger)
}
