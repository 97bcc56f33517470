package notification

import "marketplace/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	recipient := entities.Recipient{}
	switch {
	case n.CustomerID != nil:
		recipient = entities.CustomerRecipient(*n.CustomerID)
	case n.VendorID != nil:
		recipient = entities.VendorRecipient(*n.VendorID)
	}

	return &entities.Notification{
		ID:             n.ID,
		OrderID:        n.OrderID,
		Recipient:      recipient,
		Message:        n.Message,
		Type:           entities.NotificationType(n.Type),
		ActionRequired: n.ActionRequired,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
		PublishedAt:    n.PublishedAt,
	}
}

// FromDomainModify раскладывает получателя по колонкам customer_id/vendor_id.
func FromDomainModify(n *entities.NotificationModify) *NotificationModifyDB {
	if n == nil {
		return nil
	}
	notificationModifyDB := &NotificationModifyDB{
		ID:             n.ID,
		OrderID:        n.OrderID,
		Message:        n.Message,
		ActionRequired: n.ActionRequired,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}

	if n.Recipient != nil {
		id := n.Recipient.ID
		switch n.Recipient.Role {
		case entities.RecipientCustomer:
			notificationModifyDB.CustomerID = &id
		case entities.RecipientVendor:
			notificationModifyDB.VendorID = &id
		}
	}
	if n.Type != nil {
		notificationType := n.Type.String()
		notificationModifyDB.Type = &notificationType
	}

	return notificationModifyDB
}
