// Package kafka streams settlement outcomes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/parachain_remit/internal/core/domain"
	"github.com/SscSPs/parachain_remit/internal/core/ports/events"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one message per resolved transaction, keyed by the
// transaction id so that events for a transaction stay on one partition.
type Publisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

var _ events.TransactionPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher for topic on the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
	}
	logger.Info("Kafka publisher created", slog.Any("brokers", brokers), slog.String("topic", topic))
	return newPublisher(w, topic, logger)
}

func newPublisher(w messageWriter, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, logger: logger}
}

// PublishTransactionResolved implements events.TransactionPublisher.
func (p *Publisher) PublishTransactionResolved(ctx context.Context, tx domain.Transaction) error {
	payload, err := json.Marshal(events.NewTransactionResolved(tx))
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}

	key := strconv.FormatInt(tx.ID, 10)
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(events.TransactionResolvedType)},
		},
	})
	if err != nil {
		p.logger.Error("Failed to send Kafka message",
			slog.String("topic", p.topic), slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("failed to publish transaction %d: %w", tx.ID, err)
	}

	p.logger.Debug("Kafka message sent", slog.String("topic", p.topic), slog.String("key", key))
	return nil
}

// Close flushes pending writes and closes the connection.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
