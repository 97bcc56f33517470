package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         string
	ServiceID  string
	CustomerID string
	VendorID   string
	Quantity   int64
	Status     OrderStatusType

	IsPaid           bool
	PaymentMethod    PaymentMethodType
	PaymentStatus    PaymentStatusType
	PaymentReference *string
	PaymentProof     *string
	PaymentNotes     *string
	PlatformFee      decimal.Decimal
	VendorReceives   decimal.Decimal
	PaymentStartedAt *time.Time
	PaymentCheckedAt *time.Time
	PaidAt           *time.Time

	ConfirmedBy *string
	ConfirmedAt *time.Time

	RefundReason *string
	RefundedAt   *time.Time
	RefundedBy   *string

	CreatedAt time.Time
}

// Gross сумма заказа, зафиксированная при выборе способа оплаты.
func (o Order) Gross() decimal.Decimal {
	return o.PlatformFee.Add(o.VendorReceives)
}

func (o Order) HasReference(reference string) bool {
	return o.PaymentReference != nil && *o.PaymentReference == reference
}

type OrderStatusType string

const (
	OrderPending  OrderStatusType = "Pending"
	OrderApproved OrderStatusType = "Approved"
	OrderRejected OrderStatusType = "Rejected"
	OrderRefunded OrderStatusType = "Refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderRejected || s == OrderRefunded
}

// CanTransitionTo описывает решения продавца/админа. Refunded сюда не входит:
// возврат проверяет оплату отдельно.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	switch s {
	case OrderPending:
		return next == OrderApproved || next == OrderRejected
	case OrderApproved:
		return next == OrderApproved
	default:
		return false
	}
}

type PaymentMethodType string

const (
	PaymentMethodUnset   PaymentMethodType = "unset"
	PaymentMethodOnline  PaymentMethodType = "online"
	PaymentMethodOffline PaymentMethodType = "offline"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending             PaymentStatusType = "pending"
	PaymentPendingConfirmation PaymentStatusType = "pending_confirmation"
	PaymentConfirmed           PaymentStatusType = "confirmed"
	PaymentFailed              PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID         *string
	ServiceID  *string
	CustomerID *string
	VendorID   *string
	Quantity   *int64
	Status     *OrderStatusType

	IsPaid           *bool
	PaymentMethod    *PaymentMethodType
	PaymentStatus    *PaymentStatusType
	PaymentReference *string
	PaymentProof     *string
	PaymentNotes     *string
	PlatformFee      *decimal.Decimal
	VendorReceives   *decimal.Decimal
	PaymentStartedAt *time.Time
	PaymentCheckedAt *time.Time
	PaidAt           *time.Time

	ConfirmedBy *string
	ConfirmedAt *time.Time

	RefundReason *string
	RefundedAt   *time.Time
	RefundedBy   *string

	CreatedAt *time.Time
}

// OrderDetails заказ вместе с краткой информацией об услуге для отображения.
type OrderDetails struct {
	Order   Order
	Service Service
}

type OrderFilter struct {
	Status   *OrderStatusType
	VendorID *string
	Page     uint64
	Limit    uint64
}

type OrderPage struct {
	Orders     []Order
	Page       uint64
	Limit      uint64
	Total      uint64
	TotalPages uint64
}

type PaymentSelection struct {
	Order            Order
	PlatformFee      decimal.Decimal
	VendorReceives   decimal.Decimal
	TotalAmount      decimal.Decimal
	RequiresRedirect bool
}

type OfflineConfirmation struct {
	OrderID     string
	ConfirmedBy string
	Proof       string
	Notes       string
}

type RefundRequest struct {
	OrderID string
	Reason  string
	Actor   string
}

// FeeBreakdown разбиение суммы заказа: PlatformFee + VendorReceives == Gross.
type FeeBreakdown struct {
	Gross          decimal.Decimal
	PlatformFee    decimal.Decimal
	VendorReceives decimal.Decimal
}
