package producer

import (
	"context"
	"errors"
	"time"

	"hris-backoffice/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	outboxBatchSize = 50
	// outboxLease must exceed the time one batch takes to publish.
	outboxLease = 30 * time.Second
)

// ProcessOutboxEvents polls the outbox every pollInterval until ctx is
// cancelled. Several workers may run against the same table.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			for {
				sent, err := processPendingEvents(ctx, repo, writer, log)
				if err != nil {
					log.Error("process outbox events failed", zap.Error(err))
					break
				}
				// A full batch usually means a backlog; drain it before sleeping.
				if sent < outboxBatchSize || ctx.Err() != nil {
					break
				}
			}
		}
	}
}

// processPendingEvents publishes one claimed batch in a single write and
// returns how many rows were marked sent.
func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ClaimPending(ctx, outboxBatchSize, outboxLease)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	msgs := make([]kafkago.Message, len(events))
	for i, event := range events {
		msgs[i] = buildMessage(event)
	}
	failures := perMessageErrors(writer.WriteMessages(ctx, msgs...), len(msgs))

	sentIDs := make([]string, 0, len(events))
	for i, event := range events {
		if failures[i] == nil {
			sentIDs = append(sentIDs, event.ID)
			continue
		}
		logger.Error("publish outbox event failed",
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("topic", event.Topic),
			zap.Int("retry_count", event.RetryCount),
			zap.Error(failures[i]),
		)
		if markErr := repo.MarkFailed(ctx, event.ID, failures[i].Error()); markErr != nil {
			logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
		}
	}

	sent := len(sentIDs)
	if sent > 0 {
		// Unmarked rows are published again once their lease expires.
		if err := repo.MarkSent(ctx, sentIDs); err != nil {
			logger.Error("mark outbox sent failed", zap.Strings("outbox_ids", sentIDs), zap.Error(err))
			sent = 0
		}
	}

	logger.Info("outbox batch published",
		zap.Int("claimed", len(events)),
		zap.Int("sent", sent),
	)
	return sent, nil
}

// perMessageErrors spreads a batch write error over its messages. kafka-go
// reports partial failures as WriteErrors, indexed like the batch; any
// other error fails the whole batch.
func perMessageErrors(err error, n int) []error {
	out := make([]error, n)
	if err == nil {
		return out
	}

	var writeErrs kafkago.WriteErrors
	if errors.As(err, &writeErrs) && len(writeErrs) == n {
		copy(out, writeErrs)
		return out
	}
	for i := range out {
		out[i] = err
	}
	return out
}
