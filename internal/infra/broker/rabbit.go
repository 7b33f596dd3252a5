package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/errs"
	"hotel-core/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errs.New("rabbitmq publisher is closed")

// RabbitPublisher publishes outbox events to a durable topic exchange, using
// the event topic as routing key. One channel is shared and guarded by mu.
type RabbitPublisher struct {
	url      string
	exchange string

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

func NewRabbitPublisher(cfg config.BrokerConfig) *RabbitPublisher {
	return &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if err := p.ensureChannel(); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.Topic,
		Timestamp:    msg.CreatedAt.UTC(),
		Headers: amqp.Table{
			"aggregate_id": msg.AggregateID.String(),
		},
		Body: msg.Payload,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, msg.Topic, false, false, pub); err != nil {
		// force a fresh channel on the next attempt
		p.reset()
		return errs.Wrapf(err, "failed to publish %s", msg.Topic)
	}
	return nil
}

// ensureChannel dials lazily and redials after the broker dropped us.
func (p *RabbitPublisher) ensureChannel() error {
	if p.conn != nil && !p.conn.IsClosed() && p.ch != nil && !p.ch.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
	if err != nil {
		return errs.Wrap(err, "rabbitmq dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "rabbitmq channel open failed")
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
		return errs.Wrapf(err, "rabbitmq exchange declare %q failed", p.exchange)
	}

	slog.Info("connected to rabbitmq", "exchange", p.exchange)
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *RabbitPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.reset()
	return nil
}
