//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (*entities.Notification, error)
	ListUnpublishedForUpdate(ctx context.Context, limit uint64) ([]entities.Notification, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
