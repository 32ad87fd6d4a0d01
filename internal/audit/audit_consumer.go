package audit

import (
	"context"
	"time"

	"go-empms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the slice of kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Consumer turns employee event messages into audit log rows. Malformed
// messages are logged and dropped; they never stop the loop and never
// reach the producer as an error.
type Consumer struct {
	reader MessageReader
	repo   Repository
	logger *zap.Logger
}

func NewConsumer(broker string, repo Repository, logger ...*zap.Logger) *Consumer {
	l := zap.L().Named("audit.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.consumer")
	}

	return &Consumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeEventsTopic,
			GroupID:        events.AuditConsumerGroup,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		}),
		repo:   repo,
		logger: l,
	}
}

// NewConsumerWithReader wires an explicit reader, used by tests.
func NewConsumerWithReader(reader MessageReader, repo Repository, logger ...*zap.Logger) *Consumer {
	l := zap.L().Named("audit.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.consumer")
	}
	return &Consumer{reader: reader, repo: repo, logger: l}
}

// Run blocks until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("audit consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("audit consumer stopped")
				return
			}
			c.logger.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		if err := c.ProcessMessage(ctx, string(msg.Value)); err != nil {
			// Persisting failed; leave the message uncommitted so the
			// group redelivers it.
			c.logger.Error("persist audit log failed",
				zap.String("message", string(msg.Value)),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit audit message failed", zap.Error(err))
		}
	}
}

// ProcessMessage parses one message and persists the audit entry. A
// malformed message is discarded with a warning and a nil return: there
// is nothing to retry.
func (c *Consumer) ProcessMessage(ctx context.Context, message string) error {
	eventType, entityID, err := events.ParseMessage(message)
	if err != nil {
		c.logger.Warn("discarding malformed audit message",
			zap.String("message", message),
			zap.Error(err),
		)
		return nil
	}

	entry := &AuditLog{
		EventType:  eventType,
		EntityName: EntityName,
		EntityID:   entityID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := c.repo.Create(ctx, entry); err != nil {
		return err
	}

	c.logger.Info("audit log recorded",
		zap.String("event_type", eventType),
		zap.String("entity_id", entityID),
	)
	return nil
}
