package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Notification создаёт уведомления о переходах заказа. Запись уведомления
// не влияет на результат перехода: ошибки только логируются.
type Notification struct {
	repository   Repository
	log          logger.Logger
	writeTimeout time.Duration
}

func New(repository Repository, log logger.Logger, writeTimeout time.Duration) *Notification {
	return &Notification{
		repository:   repository,
		log:          log.With(logger.Component("notification_dispatcher")),
		writeTimeout: writeTimeout,
	}
}

// Dispatch сохраняет уведомления и возвращает число успешно записанных.
// Контекст запроса отвязывается от отмены: клиент мог уже отключиться,
// а переход заказа к этому моменту закоммичен.
func (s *Notification) Dispatch(ctx context.Context, notifications []entities.NotificationModify) int {
	created := 0
	for _, n := range notifications {
		if err := s.dispatchOne(ctx, n); err != nil {
			fields := []logger.Field{logger.Err(err)}
			if n.OrderID != nil {
				fields = append(fields, logger.NewField("order_id", *n.OrderID))
			}
			if n.Type != nil {
				fields = append(fields, logger.NewField("type", n.Type.String()))
			}
			s.log.Error("dispatch notification", fields...)
			continue
		}
		created++
	}
	return created
}

func (s *Notification) dispatchOne(ctx context.Context, n entities.NotificationModify) error {
	if n.OrderID == nil || n.Message == nil || n.Type == nil {
		return ErrMissingRequiredFields
	}
	if !isValidRecipient(n.Recipient) {
		return ErrInvalidRecipient
	}

	writeCtx := context.WithoutCancel(ctx)
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(writeCtx, s.writeTimeout)
		defer cancel()
	}

	if n.ID == nil {
		n.ID = pointer.To(uuid.NewString())
	}
	if n.CreatedAt == nil {
		n.CreatedAt = pointer.To(time.Now().UTC())
	}

	if _, err := s.repository.Create(writeCtx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *Notification) ListNotifications(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error) {
	if !isValidRecipient(&filter.Recipient) {
		return nil, ErrInvalidRecipient
	}
	filter.Recipient.ID = strings.TrimSpace(filter.Recipient.ID)

	switch {
	case filter.Limit == 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}

	notifications, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (s *Notification) MarkRead(ctx context.Context, id string) (*entities.Notification, error) {
	if !isValidID(id) {
		return nil, ErrInvalidNotificationID
	}

	notification, err := s.repository.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification %s read: %w", id, err)
	}
	return notification, nil
}
