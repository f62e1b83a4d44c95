// Package rabbitmq publishes notification events to a RabbitMQ exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/feed-engagement/domain"
)

const (
	// ExchangeNotifications is a durable topic exchange consumed by the delivery service.
	ExchangeNotifications = "notifications"
	// RoutingKeyNewLike is used for domain.NotificationNewLike events.
	RoutingKeyNewLike = "like.new"
)

// publisher is the part of *amqp091.Channel the sender uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Sender struct {
	ch publisher
}

var _ domain.NotificationSender = (*Sender)(nil)

// NewSender opens a channel on conn and declares the exchange.
// Reconnection is left to the caller owning conn.
func NewSender(conn *amqp091.Connection) (*Sender, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeNotifications, // name
		"topic",               // type
		true,                  // durable
		false,                 // auto-deleted
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", ExchangeNotifications, err)
	}

	logrus.Infof("notification exchange %q declared", ExchangeNotifications)
	return newSender(ch), nil
}

func newSender(ch publisher) *Sender {
	return &Sender{ch: ch}
}

func routingKey(kind string) string {
	if kind == domain.NotificationNewLike {
		return RoutingKeyNewLike
	}
	return kind
}

func (s *Sender) Send(ctx context.Context, event domain.NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	err = s.ch.PublishWithContext(ctx,
		ExchangeNotifications,  // exchange
		routingKey(event.Kind), // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	logrus.Debugf("notification %s published for %s", event.Kind, event.Target)
	return nil
}

func (s *Sender) Close() error {
	if s.ch != nil {
		return s.ch.Close()
	}
	return nil
}
