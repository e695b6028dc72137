package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes events as JSON to a Kafka topic keyed by event kind.
type KafkaNotifier struct {
	writer  messageWriter
	timeout time.Duration
	logger  *zap.Logger
}

func NewKafkaNotifier(brokers []string, topic string, timeout time.Duration, logger *zap.Logger) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: timeout,
	}
	return &KafkaNotifier{writer: w, timeout: timeout, logger: logger}
}

func (k *KafkaNotifier) Name() string { return "kafka" }

func (k *KafkaNotifier) Notify(ctx context.Context, ev models.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Kind),
		Value: value,
		Time:  ev.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to write kafka message: %w", err)
	}
	k.logger.Debug("Event published to Kafka", zap.String("event_id", ev.ID))
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}
