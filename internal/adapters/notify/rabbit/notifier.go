// Package rabbit publica notificaciones en un exchange topic de
// RabbitMQ. Los consumidores (mailer, push) se suscriben por routing
// key notify.<recipient>.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"vetd/internal/ports/notify"
)

type Notifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      zerolog.Logger
}

func New(url, exchange string, log zerolog.Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbit: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: declare exchange %s: %w", exchange, err)
	}

	return &Notifier{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

type payload struct {
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) error {
	body, err := json.Marshal(payload{
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Metadata:  msg.Metadata,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("rabbit: marshal: %w", err)
	}

	routingKey := "notify." + msg.Recipient
	err = n.ch.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("rabbit: publish: %w", err)
	}

	n.log.Debug().
		Str("recipient", msg.Recipient).
		Str("routing_key", routingKey).
		Msg("rabbit: notificación publicada")
	return nil
}

func (n *Notifier) Close() error {
	if err := n.ch.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}
