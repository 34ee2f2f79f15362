package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

const ViewEventsGroupID = "view-counter-group"

type ViewHandler func(ctx context.Context, ev analytics.ViewEvent) error

type KafkaViewConsumer struct {
	reader *kafka.Reader
	logger logger.Logger
}

func NewKafkaViewConsumer(brokers []string, log logger.Logger) (*KafkaViewConsumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    TopicViewEvents,
		GroupID:  ViewEventsGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &KafkaViewConsumer{reader: reader, logger: log}, nil
}

// Run reads until ctx is cancelled. Malformed messages are committed and
// skipped; a handler error leaves the message uncommitted for redelivery.
func (c *KafkaViewConsumer) Run(ctx context.Context, handle ViewHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicViewEvents), zap.String("group", ViewEventsGroupID))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		ev, err := DecodeViewEvent(msg.Value)
		if err != nil {
			c.logger.Warn("Skipping malformed view event", zap.Error(err), zap.Int64("offset", msg.Offset))
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, ev); err != nil {
			c.logger.Error("Failed to process view event", err, zap.String("section", ev.Section))
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *KafkaViewConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *KafkaViewConsumer) Close() error {
	return c.reader.Close()
}

func DecodeViewEvent(value []byte) (analytics.ViewEvent, error) {
	var ev analytics.ViewEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return ev, fmt.Errorf("failed to unmarshal view event: %w", err)
	}
	if ev.Section == "" {
		return ev, errors.New("view event has no section")
	}
	return ev, nil
}
