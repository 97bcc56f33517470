package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type message struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	RecipientRole  string    `json:"recipient_role"`
	RecipientID    string    `json:"recipient_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	ActionRequired bool      `json:"action_required"`
	CreatedAt      time.Time `json:"created_at"`
}

// Relay публикует ещё не отправленные уведомления во внешний брокер.
// Таблица уведомлений служит outbox: строка помечается отправленной только
// после успешной публикации, поэтому доставка at-least-once.
type Relay struct {
	repository Repository
	txManager  TxManager
	publisher  Publisher
	log        logger.Logger
	now        func() time.Time
}

func NewRelay(repository Repository, txManager TxManager, publisher Publisher, log logger.Logger) *Relay {
	return &Relay{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
		log:        log.With(logger.Component("notification_relay")),
		now:        time.Now,
	}
}

// RelayPending обрабатывает одну пачку. Ошибка публикации отдельного уведомления
// не прерывает пачку: строка останется неотправленной до следующего запуска.
func (r *Relay) RelayPending(ctx context.Context, batchSize uint64) (int, error) {
	published := 0

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		pending, err := r.repository.ListUnpublishedForUpdate(ctx, batchSize)
		if err != nil {
			return fmt.Errorf("list unpublished notifications: %w", err)
		}

		for _, n := range pending {
			payload, err := json.Marshal(toMessage(n))
			if err != nil {
				return fmt.Errorf("marshal notification %s: %w", n.ID, err)
			}

			if err := r.publisher.Publish(ctx, n.Recipient.ID, payload); err != nil {
				RelayPublishedTotal.WithLabelValues(resultFailed).Inc()
				r.log.Warn("publish notification",
					logger.NewField("notification_id", n.ID),
					logger.Err(err),
				)
				continue
			}

			if err := r.repository.MarkPublished(ctx, n.ID, r.now()); err != nil {
				return fmt.Errorf("mark notification %s published: %w", n.ID, err)
			}
			RelayPublishedTotal.WithLabelValues(resultPublished).Inc()
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

func toMessage(n entities.Notification) message {
	return message{
		ID:             n.ID,
		OrderID:        n.OrderID,
		RecipientRole:  n.Recipient.Role.String(),
		RecipientID:    n.Recipient.ID,
		Type:           n.Type.String(),
		Message:        n.Message,
		ActionRequired: n.ActionRequired,
		CreatedAt:      n.CreatedAt,
	}
}
