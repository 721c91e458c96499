// Package kafka publishes domain events to a Kafka topic as JSON.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Envelope is the message value written for every event.
type Envelope struct {
	Name       string             `json:"name"`
	OccurredAt time.Time          `json:"occurred_at"`
	Payload    kernel.DomainEvent `json:"payload"`
}

const eventNameHeader = "event-name"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events to one topic. Messages are keyed by aggregate identifier so
// events of one order or consolidated order land on the same partition.
type Publisher struct {
	writer messageWriter
	logger *zap.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates an asynchronous publisher. Publish only enqueues; delivery
// results, acknowledged by all in-sync replicas, are reported through onCompletion.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	p := newPublisher(nil, logger)
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		MaxAttempts:            3,
		Completion:             p.onCompletion,
	}
	return p
}

func newPublisher(writer messageWriter, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With(zap.String("component", "kafka_publisher")),
	}
}

// Publish writes all events in one batch.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := toMessage(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}

	p.logger.Debug("events enqueued", zap.Int("count", len(msgs)))
	return nil
}

func (p *Publisher) onCompletion(msgs []kafka.Message, err error) {
	if err != nil {
		p.logger.Error("failed to deliver events",
			zap.Strings("events", eventNames(msgs)),
			zap.Error(err),
		)
		return
	}
	p.logger.Debug("events delivered", zap.Int("count", len(msgs)))
}

func eventNames(msgs []kafka.Message) []string {
	names := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		for _, h := range msg.Headers {
			if h.Key == eventNameHeader {
				names = append(names, string(h.Value))
			}
		}
	}
	return names
}

// Close flushes pending writes and releases connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e kernel.DomainEvent) (kafka.Message, error) {
	value, err := json.Marshal(Envelope{
		Name:       e.EventName(),
		OccurredAt: e.OccurredAt(),
		Payload:    e,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal %s: %w", e.EventName(), err)
	}

	var key []byte
	if keyed, ok := e.(kernel.AggregateEvent); ok {
		key = []byte(keyed.AggregateID().String())
	}

	return kafka.Message{
		Key:   key,
		Value: value,
		Time:  e.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: eventNameHeader, Value: []byte(e.EventName())},
		},
	}, nil
}
