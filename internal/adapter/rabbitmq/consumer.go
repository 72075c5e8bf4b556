package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// BindingKey matches every storefront routing key
const BindingKey = "storefront.#"

const defaultRetryDelay = 5 * time.Second

type consumer struct {
	conn       Connection
	exchange   string
	prefetch   int
	logger     logger.Logger
	retryDelay time.Duration
}

// NewConsumer binds a temporary exclusive queue to the exchange, so every
// subscriber sees every event.
func NewConsumer(conn Connection, exchange string, prefetch int, log logger.Logger) interfaces.EventConsumer {
	return &consumer{
		conn:       conn,
		exchange:   exchange,
		prefetch:   prefetch,
		logger:     log,
		retryDelay: defaultRetryDelay,
	}
}

// ConsumeEvents blocks until ctx is done, resubscribing after channel failures.
func (c *consumer) ConsumeEvents(ctx context.Context, handler interfaces.EventHandler) error {
	for {
		err := c.consume(ctx, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}
		if c.conn.IsClosed() {
			return fmt.Errorf("event consumer stopped: %w", err)
		}

		c.logger.Error("consumer_disconnected",
			fmt.Sprintf("Event consumer disconnected, retrying in %s", c.retryDelay), "", nil, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}

func (c *consumer) consume(ctx context.Context, handler interfaces.EventHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := ch.ExchangeDeclare(c.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, BindingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return errors.New("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return errors.New("messages channel closed")
			}

			// a body that cannot be handled now will not parse later either
			if err := handler(ctx, msg.Body); err != nil {
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}
