package notification

import "time"

type NotificationDB struct {
	ID             string
	OrderID        string
	CustomerID     *string
	VendorID       *string
	Message        string
	Type           string
	ActionRequired bool
	IsRead         bool
	CreatedAt      time.Time
	PublishedAt    *time.Time
}

type NotificationModifyDB struct {
	ID             *string
	OrderID        *string
	CustomerID     *string
	VendorID       *string
	Message        *string
	Type           *string
	ActionRequired *bool
	IsRead         *bool
	CreatedAt      *time.Time
}

var notificationColumns = []string{
	"id",
	"order_id",
	"customer_id",
	"vendor_id",
	"message",
	"notification_type",
	"action_required",
	"is_read",
	"created_at",
	"published_at",
}

func (n *NotificationDB) scanTargets() []any {
	return []any{
		&n.ID,
		&n.OrderID,
		&n.CustomerID,
		&n.VendorID,
		&n.Message,
		&n.Type,
		&n.ActionRequired,
		&n.IsRead,
		&n.CreatedAt,
		&n.PublishedAt,
	}
}
