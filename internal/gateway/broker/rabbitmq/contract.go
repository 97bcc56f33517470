package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type confirmChannel interface {
	PublishWithDeferredConfirmWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) (*amqp.DeferredConfirmation, error)
	Queue() string
}
