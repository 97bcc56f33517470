package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConfirmed = errors.New("message was not confirmed by broker")

// Gateway публикует уведомления в очередь RabbitMQ через default exchange
// и ждёт publisher confirm, иначе строка outbox останется неотправленной.
type Gateway struct {
	channel confirmChannel
}

func New(channel confirmChannel) *Gateway {
	return &Gateway{channel: channel}
}

func (g *Gateway) Publish(ctx context.Context, key string, payload []byte) error {
	confirmation, err := g.channel.PublishWithDeferredConfirmWithContext(ctx,
		"",                // exchange
		g.channel.Queue(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			MessageId:    key,
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{"recipient_id": key},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	// канал не в режиме подтверждений
	if confirmation == nil {
		return nil
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("wait for confirm: %w", err)
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}
