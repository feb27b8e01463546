package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"innkeep/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher emits booking lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// Producer wraps a kafka-go writer. Messages hash by booking id so all
// events for one booking land on the same partition in order.
type Producer struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
	closed bool
	mu     sync.Mutex
}

func NewProducer(log *logger.Logger, brokers []string, topic string, source string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf("kafka producer: "+msg, args...))
		}),
	}

	return &Producer{
		writer: writer,
		source: source,
		log:    log,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("producer is closed")
	}
	p.mu.Unlock()

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(uuid.New().String())},
			{Key: HeaderEventType, Value: []byte(event.Type)},
			{Key: HeaderSource, Value: []byte(p.source)},
			{Key: HeaderTimestamp, Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

// NopPublisher drops events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event BookingEvent) error { return nil }
func (NopPublisher) Close() error                                          { return nil }
