package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"field-reservation/internal/pkg/clock"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQPublisher publishes outbox events to a durable topic exchange with the
// event name as routing key. The connection is opened lazily and re-opened after
// a failure.
type RabbitMQPublisher struct {
	url      string
	exchange string
	clock    clock.Clock

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitMQPublisher(url, exchange string, clk clock.Clock) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		url:      url,
		exchange: exchange,
		clock:    clk,
	}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now().UTC(),
		Type:         topic,
		Body:         payload,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, topic, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("rabbitmq: publish %s: %w", topic, err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reset()
}

// channel must be called with mu held.
func (p *RabbitMQPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", p.exchange, err)
	}

	slog.Info("rabbitmq publisher connected", "exchange", p.exchange)
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitMQPublisher) reset() error {
	var err error
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err = p.conn.Close()
		p.conn = nil
	}
	return err
}
