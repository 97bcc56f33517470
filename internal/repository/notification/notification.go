package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/notification"
)

const tableNotifications = "notifications"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	m := FromDomainModify(&notificationModify)

	actionRequired := false
	if m.ActionRequired != nil {
		actionRequired = *m.ActionRequired
	}

	builder := qb.Insert(tableNotifications).
		Columns("id", "order_id", "customer_id", "vendor_id", "message", "notification_type", "action_required", "created_at").
		Values(m.ID, m.OrderID, m.CustomerID, m.VendorID, m.Message, m.Type, actionRequired, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", "))

	var notificationModel NotificationDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(notificationModel.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("notification for unknown order: %w", err)
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.NotificationFilter) ([]entities.Notification, error) {
	builder := qb.Select(notificationColumns...).
		From(tableNotifications).
		OrderBy("created_at DESC", "id DESC").
		Limit(filter.Limit)

	switch filter.Recipient.Role {
	case entities.RecipientCustomer:
		builder = builder.Where(sq.Eq{"customer_id": filter.Recipient.ID})
	case entities.RecipientVendor:
		builder = builder.Where(sq.Eq{"vendor_id": filter.Recipient.ID})
	default:
		return nil, notification.ErrInvalidRecipient
	}
	if filter.UnreadOnly {
		builder = builder.Where(sq.Eq{"is_read": false})
	}

	return r.query(ctx, builder)
}

func (r *Repository) MarkRead(ctx context.Context, id string) (*entities.Notification, error) {
	builder := qb.Update(tableNotifications).
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", "))

	var notificationModel NotificationDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(notificationModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

// ListUnpublishedForUpdate пачка для relay. SKIP LOCKED позволяет нескольким
// экземплярам сервиса разбирать outbox параллельно без дублей.
func (r *Repository) ListUnpublishedForUpdate(ctx context.Context, limit uint64) ([]entities.Notification, error) {
	builder := qb.Select(notificationColumns...).
		From(tableNotifications).
		Where(sq.Eq{"published_at": nil}).
		OrderBy("created_at ASC").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED")

	return r.query(ctx, builder)
}

func (r *Repository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	builder := qb.Update(tableNotifications).
		Set("published_at", publishedAt).
		Where(sq.Eq{"id": id})

	result, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark published error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) query(ctx context.Context, builder sq.SelectBuilder) ([]entities.Notification, error) {
	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository query error: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var notificationModel NotificationDB
		if err := rows.Scan(notificationModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected notification repository scan error: %w", err)
		}
		notifications = append(notifications, *ToDomain(&notificationModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository rows error: %w", err)
	}

	return notifications, nil
}
