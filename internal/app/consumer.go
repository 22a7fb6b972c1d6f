package app

import (
	"context"
	"fmt"

	"hris-backoffice/internal/bootstrap"
	"hris-backoffice/internal/config"
	"hris-backoffice/internal/events"
	"hris-backoffice/internal/messaging/kafka/consumer"
	"hris-backoffice/internal/payroll"
	"hris-backoffice/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const payrollCacheConsumerGroup = "hris-backoffice-payroll-cache"

// RunConsumer drops cached payroll results as attendance is recorded, until
// SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	cache := payroll.NewResultCache(redisClient, cfg.Payroll.CacheTTL, logger)
	if redisClient == nil || cfg.Payroll.CacheTTL <= 0 {
		log.Warn("payroll result cache disabled, events will be acknowledged without effect")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        payrollCacheConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeAttendanceRecorded(ctx, reader, cache, logger)
	}()

	sig := bootstrap.WaitForSignal()
	log.Info("consumer shutting down", zap.String("signal", sig))
	cancel()
	<-done

	return nil
}
