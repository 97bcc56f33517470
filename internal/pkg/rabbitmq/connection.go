package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

// Channel канал с объявленной очередью и включённым режимом подтверждений.
type Channel struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Dial подключается к брокеру с ретраями (RabbitMQ поднимается дольше сервиса)
// и объявляет durable-очередь уведомлений.
func Dial(ctx context.Context, log logger.Logger, cfg *config.RabbitMQ) (*Channel, error) {
	rmqLog := log.With(
		logger.Component("rabbitmq"),
		logger.NewField("queue", cfg.Queue),
	)

	retrier := backoff_adapter.New(retrierconfig.ConnectConfig())

	var (
		conn    *amqp.Connection
		attempt uint64
	)
	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++
		rmqLog.Info("attempting RabbitMQ connection", logger.NewField("attempt", attempt))

		var err error
		conn, err = amqp.Dial(cfg.URL)
		return err
	})
	if err != nil {
		rmqLog.Error("RabbitMQ connection failed after retries",
			logger.Err(err),
			logger.NewField("attempts", attempt),
		)
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to open a channel: %w", err), conn.Close())
	}

	if err := ch.Confirm(false); err != nil {
		return nil, errors.Join(fmt.Errorf("enable publisher confirms: %w", err), ch.Close(), conn.Close())
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to declare a queue: %w", err), ch.Close(), conn.Close())
	}

	rmqLog.Info("RabbitMQ connection established", logger.NewField("attempts", attempt))

	return &Channel{conn: conn, channel: ch, queue: cfg.Queue}, nil
}

// PublishWithDeferredConfirmWithContext публикует сообщение, результат
// подтверждения брокером доступен через возвращённый DeferredConfirmation.
func (c *Channel) PublishWithDeferredConfirmWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) (*amqp.DeferredConfirmation, error) {
	return c.channel.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

func (c *Channel) Queue() string {
	return c.queue
}

func (c *Channel) Close() error {
	return errors.Join(c.channel.Close(), c.conn.Close())
}
