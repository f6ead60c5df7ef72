// Package events publishes activity events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/segmentio/kafka-go"
)

// Writer defines a Kafka writer abstraction.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher serialises activity events and writes them keyed by user id, so
// one user's events stay ordered within a partition.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a Publisher. A nil writer turns Publish into a no-op.
func NewPublisher(writer Writer) *Publisher {
	return &Publisher{writer: writer}
}

// NewKafkaWriter builds a writer for topic on brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// Publish writes event to Kafka.
func (p *Publisher) Publish(ctx context.Context, event models.ActivityEvent) error {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: data,
		Time:  time.Unix(event.Timestamp, 0),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	logger.Log.Infow("Activity event published to Kafka",
		"event_id", event.EventID,
		"entity", event.Entity,
		"operation", event.Operation,
	)
	return nil
}

// Close closes the underlying writer, if any.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
