package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/publisher"
)

var _ publisher.LocationEventPublisher = (*LocationPublisher)(nil)

const (
	exchangeName = "fleet.locations"
	queueName    = "location_registered"
)

type LocationPublisher struct {
	ch *amqp.Channel
}

func NewLocationPublisher(conn *amqp.Connection) (*LocationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &LocationPublisher{ch: ch}, nil
}

func (p *LocationPublisher) PublishRegistered(ctx context.Context, event *domain.LocationRegistered) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
