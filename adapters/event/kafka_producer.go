package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

const TopicViewEvents = "view.events"

type KafkaViewPublisher struct {
	writer *kafka.Writer
	logger logger.Logger
}

// NewKafkaViewPublisher writes view events to view.events. Writes are async
// so a slow broker never holds up a page render; failures are logged.
func NewKafkaViewPublisher(brokers []string, log logger.Logger) (*KafkaViewPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicViewEvents,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("Failed to deliver view events", err, zap.Int("count", len(messages)))
			}
		},
	}

	log.Info("Initialize Kafka producer successfully.", zap.String("topic", TopicViewEvents))
	return &KafkaViewPublisher{writer: writer, logger: log}, nil
}

func (p *KafkaViewPublisher) PublishView(ctx context.Context, ev analytics.ViewEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal view event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Section),
		Value: payload,
		Time:  ev.OccurredAt,
	})
}

func (p *KafkaViewPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka producer", err)
		return
	}
	p.logger.Info("Closed Kafka producer")
}
