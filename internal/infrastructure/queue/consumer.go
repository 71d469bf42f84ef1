package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"touristar-consumer/internal/domain/entity"
	"touristar-consumer/internal/domain/repository"
	"touristar-consumer/pkg/logger"
	"touristar-consumer/pkg/metrics"
)

// HandlerFunc processes one decoded message body. A nil return acknowledges
// the delivery; any error negatively acknowledges it without requeue.
type HandlerFunc func(ctx context.Context, body []byte) error

// Options configures optional consumer behaviour
type Options struct {
	// FanoutExchange, when set, is declared durable and the queue is bound
	// to it. Processing queues are plain unbound work queues.
	FanoutExchange string
}

// Consumer delivers messages from one durable queue to a handler, one
// message at a time (prefetch 1), and converts the handler outcome into an
// acknowledgement. Failed messages are journaled and not requeued; a retry
// producer or an operator decides on redelivery.
type Consumer struct {
	channel   *amqp.Channel
	queueName string
	tag       string
	handler   HandlerFunc
	failures  repository.FailureRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewConsumer opens a channel, declares the queue and sets up QoS
func NewConsumer(
	conn *amqp.Connection,
	queueName string,
	handler HandlerFunc,
	failures repository.FailureRepository,
	m *metrics.Metrics,
	log logger.Logger,
	opts Options,
) (*Consumer, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for queue %s: %w", queueName, err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	if opts.FanoutExchange != "" {
		if err := channel.ExchangeDeclare(opts.FanoutExchange, "fanout", true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("failed to declare exchange %s: %w", opts.FanoutExchange, err)
		}
		if err := channel.QueueBind(queueName, "", opts.FanoutExchange, false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind queue %s to exchange %s: %w", queueName, opts.FanoutExchange, err)
		}
	}

	// One un-acked message in flight per consumer instance.
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS for queue %s: %w", queueName, err)
	}

	log.Info("Successfully initialised connection to queue", "queue", queueName)

	return &Consumer{
		channel:   channel,
		queueName: queueName,
		tag:       fmt.Sprintf("%s-%s", queueName, uuid.NewString()),
		handler:   handler,
		failures:  failures,
		metrics:   m,
		logger:    log,
	}, nil
}

// Start consumes deliveries until the context is cancelled or the channel
// closes. An in-flight message left un-acked at shutdown is redelivered by
// the broker.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queueName, c.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming from queue %s: %w", c.queueName, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.Handle(ctx, delivery)
		}
	}
}

// Handle runs the handler for one delivery and acks or nacks it
func (c *Consumer) Handle(ctx context.Context, delivery amqp.Delivery) {
	c.logger.Info("About to process message",
		"queue", c.queueName,
		"deliveryTag", delivery.DeliveryTag)

	start := time.Now()
	err := c.handler(ctx, delivery.Body)
	c.metrics.ProcessingTime.WithLabelValues(c.queueName).Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error("There was an issue processing message",
			"queue", c.queueName,
			"deliveryTag", delivery.DeliveryTag,
			"error", err)
		c.recordFailure(ctx, delivery, err)
		c.metrics.MessagesFailed.WithLabelValues(c.queueName).Inc()
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			c.logger.Error("Failed to nack message",
				"queue", c.queueName,
				"deliveryTag", delivery.DeliveryTag,
				"error", nackErr)
		}
		return
	}

	// multiple=true acknowledges up to and including this delivery.
	if ackErr := delivery.Ack(true); ackErr != nil {
		c.logger.Error("Failed to ack message",
			"queue", c.queueName,
			"deliveryTag", delivery.DeliveryTag,
			"error", ackErr)
		return
	}

	c.metrics.MessagesConsumed.WithLabelValues(c.queueName).Inc()
	c.logger.Info("Message processed successfully",
		"queue", c.queueName,
		"deliveryTag", delivery.DeliveryTag)
}

func (c *Consumer) recordFailure(ctx context.Context, delivery amqp.Delivery, handlerErr error) {
	failure := &entity.ProcessingFailure{
		ID:          uuid.NewString(),
		Queue:       c.queueName,
		DeliveryTag: delivery.DeliveryTag,
		Body:        string(delivery.Body),
		Error:       handlerErr.Error(),
		OccurredAt:  time.Now().UTC(),
	}
	if err := c.failures.RecordFailure(ctx, failure); err != nil {
		c.logger.Error("Failed to journal message failure",
			"queue", c.queueName,
			"deliveryTag", delivery.DeliveryTag,
			"error", err)
	}
}

// Close closes the consumer channel
func (c *Consumer) Close() error {
	return c.channel.Close()
}
