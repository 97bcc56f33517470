package entities

import "time"

type Notification struct {
	ID             string
	OrderID        string
	Recipient      Recipient
	Message        string
	Type           NotificationType
	ActionRequired bool
	IsRead         bool
	CreatedAt      time.Time
	PublishedAt    *time.Time
}

type RecipientRole string

const (
	RecipientCustomer RecipientRole = "customer"
	RecipientVendor   RecipientRole = "vendor"
)

func (r RecipientRole) String() string {
	return string(r)
}

type Recipient struct {
	Role RecipientRole
	ID   string
}

func CustomerRecipient(id string) Recipient {
	return Recipient{Role: RecipientCustomer, ID: id}
}

func VendorRecipient(id string) Recipient {
	return Recipient{Role: RecipientVendor, ID: id}
}

type NotificationType string

const (
	NotificationOrderPlaced           NotificationType = "order_placed"
	NotificationOrderApproved         NotificationType = "order_approved"
	NotificationOrderRejected         NotificationType = "order_rejected"
	NotificationPaymentRequired       NotificationType = "payment_required"
	NotificationOfflinePaymentPending NotificationType = "offline_payment_pending"
	NotificationPaymentSuccessful     NotificationType = "payment_successful"
	NotificationPaymentFailed         NotificationType = "payment_failed"
	NotificationOrderRefunded         NotificationType = "order_refunded"
	NotificationRefundProcessed       NotificationType = "refund_processed"
)

func (t NotificationType) String() string {
	return string(t)
}

type NotificationModify struct {
	ID             *string
	OrderID        *string
	Recipient      *Recipient
	Message        *string
	Type           *NotificationType
	ActionRequired *bool
	IsRead         *bool
	CreatedAt      *time.Time
}

type NotificationFilter struct {
	Recipient  Recipient
	UnreadOnly bool
	Limit      uint64
}

// OrderEventType переход заказа, о котором нужно уведомить участников.
type OrderEventType string

const (
	EventOrderPlaced            OrderEventType = "order_placed"
	EventOrderApproved          OrderEventType = "order_approved"
	EventOrderRejected          OrderEventType = "order_rejected"
	EventOnlinePaymentSelected  OrderEventType = "online_payment_selected"
	EventOfflinePaymentSelected OrderEventType = "offline_payment_selected"
	EventPaymentSucceeded       OrderEventType = "payment_succeeded"
	EventPaymentFailed          OrderEventType = "payment_failed"
	EventOrderRefunded          OrderEventType = "order_refunded"
)

func (e OrderEventType) String() string {
	return string(e)
}
