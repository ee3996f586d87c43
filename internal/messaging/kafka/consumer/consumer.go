package consumer

import (
	"context"
	"encoding/json"

	"go-bizdash/internal/events"
	"go-bizdash/internal/financials"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLifecycleEvents drops the derived financial snapshots whenever a
// source collection mutates. The next overview request recomputes from the
// canonical tables, so a lost invalidation only extends staleness by the
// cache TTL.
func ConsumeLifecycleEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	financialsService financials.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := financialsService.InvalidateCache(ctx); err != nil {
			log.Error("invalidate financial snapshots failed",
				zap.String("event_type", event.EventType),
				zap.String("entity_id", event.EntityID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("financial snapshots invalidated",
			zap.String("event_type", event.EventType),
			zap.String("entity_type", event.EntityType),
			zap.String("entity_id", event.EntityID),
		)
	}
}
