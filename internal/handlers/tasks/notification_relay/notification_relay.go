package notification_relay

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Relay interface {
	RelayPending(ctx context.Context, batchSize uint64) (int, error)
}

// NotificationRelay переносит накопившиеся уведомления во внешний брокер.
type NotificationRelay struct {
	relay     Relay
	log       logger.Logger
	interval  time.Duration
	batchSize uint64
}

func New(relay Relay, log logger.Logger, interval time.Duration, batchSize uint64) *NotificationRelay {
	return &NotificationRelay{
		relay:     relay,
		log:       log.With(logger.Component("task_notification_relay")),
		interval:  interval,
		batchSize: batchSize,
	}
}

func (n *NotificationRelay) TTL() time.Duration {
	return n.interval
}

// Do разбирает пачки, пока они заполняются целиком, чтобы очередь не копилась
// между тиками.
func (n *NotificationRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	total := 0
	for {
		published, err := n.relay.RelayPending(ctxWithTimeout, n.batchSize)
		if err != nil {
			return err
		}
		total += published

		if uint64(published) < n.batchSize || ctxWithTimeout.Err() != nil {
			break
		}
	}

	if total > 0 {
		n.log.Info("relayed notifications", logger.NewField("published", total))
	}
	return nil
}

func (n *NotificationRelay) Info() string {
	return "notification relay"
}
