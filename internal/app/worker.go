package app

import (
	"context"
	"fmt"

	"hris-backoffice/internal/bootstrap"
	"hris-backoffice/internal/config"
	"hris-backoffice/internal/messaging/kafka"
	"hris-backoffice/internal/messaging/kafka/producer"
	"hris-backoffice/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes outbox rows to kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	_, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Outbox.PollInterval)
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("worker shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}
