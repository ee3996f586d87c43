package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-bizdash/internal/config"
	"go-bizdash/internal/events"
	"go-bizdash/internal/financials"
	"go-bizdash/internal/messaging/kafka/consumer"
	"go-bizdash/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer subscribes to every lifecycle topic and invalidates the
// financial snapshot cache on each mutation event.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	dsn := connection.PostgresDSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	gormDB, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	financialsSource := financials.NewSource(gormDB)
	financialsService := financials.NewService(
		financialsSource,
		redisClient,
		financials.ParseProfitFormula(cfg.ProfitFormula),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, topic := range events.LifecycleTopics() {
		reader := kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.KafkaBroker},
			Topic:          topic,
			GroupID:        "go-bizdash-financials",
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
		defer reader.Close()

		go consumer.ConsumeLifecycleEvents(ctx, reader, financialsService, logger)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
