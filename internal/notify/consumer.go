package notify

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ConsumerConfig describes the queue a worker reads from and its dead-letter target.
type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Bindings []string
	Prefetch int
	DLXName  string // empty disables dead-lettering
	DLXQueue string
	Tag      string
}

// Handler processes one message. A returned error dead-letters the message.
type Handler func(ctx context.Context, routingKey string, body []byte) error

type Consumer struct {
	cfg    ConsumerConfig
	logger *zap.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg ConsumerConfig, logger *zap.Logger) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 8
	}
	return &Consumer{cfg: cfg, logger: logger}
}

// Connect dials the broker and declares the exchange, queue, bindings and,
// when configured, the dead-letter exchange and queue.
func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("rabbit dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel failed: %w", err)
	}
	fail := func(err error) error {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	args := amqp.Table{}
	if c.cfg.DLXName != "" {
		args["x-dead-letter-exchange"] = c.cfg.DLXName

		if err := ch.ExchangeDeclare(c.cfg.DLXName, "topic", true, false, false, false, nil); err != nil {
			return fail(fmt.Errorf("declare dlx failed: %w", err))
		}
		if _, err := ch.QueueDeclare(c.cfg.DLXQueue, true, false, false, false, nil); err != nil {
			return fail(fmt.Errorf("declare dlq failed: %w", err))
		}
		if err := ch.QueueBind(c.cfg.DLXQueue, "#", c.cfg.DLXName, false, nil); err != nil {
			return fail(fmt.Errorf("bind dlq failed: %w", err))
		}
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fail(fmt.Errorf("declare exchange %s failed: %w", c.cfg.Exchange, err))
	}
	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, args)
	if err != nil {
		return fail(fmt.Errorf("declare queue failed: %w", err))
	}
	for _, key := range c.cfg.Bindings {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fail(fmt.Errorf("bind queue to exchange=%s key=%s failed: %w", c.cfg.Exchange, key, err))
		}
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fail(fmt.Errorf("set qos failed: %w", err))
	}

	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, c.cfg.Tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := handle(ctx, d.RoutingKey, d.Body); err != nil {
				c.logger.Error("message handling failed, dead-lettering",
					zap.String("routing_key", d.RoutingKey),
					zap.Error(err),
				)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}
