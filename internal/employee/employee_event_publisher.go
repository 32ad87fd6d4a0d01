package employee

import (
	"context"
	"strconv"

	"go-empms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

// EventPublisher sends one plain-text audit message per service operation.
// Delivery is best effort: callers log a returned error and move on.
type EventPublisher interface {
	PublishEmployeeEvent(ctx context.Context, eventType string, id uint) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher returns a publisher that drops every message.
// Used when the broker is not configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishEmployeeEvent(context.Context, string, uint) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafkago.Writer
}

// NewKafkaEventPublisher wraps an async writer; WriteMessages queues the
// message and returns without waiting for broker acknowledgment.
func NewKafkaEventPublisher(writer *kafkago.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishEmployeeEvent(
	ctx context.Context,
	eventType string,
	id uint,
) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: events.EmployeeEventsTopic,
		Key:   []byte(strconv.FormatUint(uint64(id), 10)),
		Value: []byte(events.FormatMessage(eventType, id)),
	})
}
