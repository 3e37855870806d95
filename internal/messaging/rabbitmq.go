package messaging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"motorcycle-rental-backend/internal/logger"
)

// RabbitMQConfig names the exchange/queue/routing-key triple the fleet
// events flow through.
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	Queue      string
	RoutingKey string
}

// RabbitMQBroker is the RabbitMQ-backed Broker. One topic exchange, one
// durable queue bound under a fixed routing key; messages are published
// persistent and consumed with manual acks.
type RabbitMQBroker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     RabbitMQConfig
}

func NewRabbitMQBroker(cfg RabbitMQConfig) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	b := &RabbitMQBroker{conn: conn, channel: channel, cfg: cfg}
	if err := b.setup(); err != nil {
		b.Close()
		return nil, err
	}

	logger.Info("RabbitMQ connection established", "exchange", cfg.Exchange, "queue", cfg.Queue)
	return b, nil
}

func (b *RabbitMQBroker) setup() error {
	err := b.channel.ExchangeDeclare(
		b.cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = b.channel.QueueDeclare(
		b.cfg.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := b.channel.QueueBind(b.cfg.Queue, b.cfg.RoutingKey, b.cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, body []byte) error {
	logger.ExternalServiceCall("rabbitmq", "publish", "routingKey", b.cfg.RoutingKey)

	err := b.channel.PublishWithContext(ctx,
		b.cfg.Exchange,
		b.cfg.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Body:         body,
		},
	)
	logger.ExternalServiceResult("rabbitmq", "publish", err)
	return err
}

func (b *RabbitMQBroker) Consume(ctx context.Context) (<-chan Delivery, error) {
	deliveries, err := b.channel.ConsumeWithContext(ctx,
		b.cfg.Queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		for d := range deliveries {
			d := d
			wrapped := Delivery{
				Body: d.Body,
				Ack:  func() error { return d.Ack(false) },
				Nack: func(requeue bool) error { return d.Nack(false, requeue) },
			}
			select {
			case out <- wrapped:
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Started consuming messages", "queue", b.cfg.Queue)
	return out, nil
}

// Ping verifies the connection is still alive, for health checks.
func (b *RabbitMQBroker) Ping() error {
	if b.conn == nil || b.conn.IsClosed() {
		return fmt.Errorf("rabbitmq connection closed")
	}
	return nil
}

func (b *RabbitMQBroker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
