// @title Invest Service API
// @version 1.0
// @description Community investment and governance API: proposals, investment suggestions, assistance requests, events and the shared voting core.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"

	"invest-service/configs"
	_ "invest-service/docs"
	"invest-service/internal/adapters/database"
	"invest-service/internal/adapters/kafka"
	"invest-service/internal/server"
	"invest-service/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	zapLog, err := logger.New(os.Getenv("GIN_MODE") == gin.ReleaseMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLog.Sync()

	cfg := configs.Load()

	db, err := database.NewMySQLDB(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB, zapLog)
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zapLog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis is optional; without it rate limiting is disabled.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			zapLog.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	// Kafka is optional; without brokers vote events are not published.
	var producer sarama.SyncProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.InitKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			zapLog.Warn("kafka unavailable, vote events disabled", zap.Error(err))
			producer = nil
		} else {
			defer producer.Close()
		}
	}

	app := server.NewApp(cfg, db, redisClient, producer, zapLog)
	if err := app.Run(); err != nil {
		zapLog.Fatal("application error", zap.Error(err))
	}
}
