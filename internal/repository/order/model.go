package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID               string
	ServiceID        string
	CustomerID       string
	VendorID         string
	Quantity         int64
	Status           string
	IsPaid           bool
	PaymentMethod    string
	PaymentStatus    string
	PaymentReference *string
	PaymentProof     *string
	PaymentNotes     *string
	PlatformFee      decimal.Decimal
	VendorReceives   decimal.Decimal
	PaymentStartedAt *time.Time
	PaymentCheckedAt *time.Time
	PaidAt           *time.Time
	ConfirmedBy      *string
	ConfirmedAt      *time.Time
	RefundReason     *string
	RefundedAt       *time.Time
	RefundedBy       *string
	CreatedAt        time.Time
}

type OrderModifyDB struct {
	ID               *string
	ServiceID        *string
	CustomerID       *string
	VendorID         *string
	Quantity         *int64
	Status           *string
	IsPaid           *bool
	PaymentMethod    *string
	PaymentStatus    *string
	PaymentReference *string
	PaymentProof     *string
	PaymentNotes     *string
	PlatformFee      *decimal.Decimal
	VendorReceives   *decimal.Decimal
	PaymentStartedAt *time.Time
	PaymentCheckedAt *time.Time
	PaidAt           *time.Time
	ConfirmedBy      *string
	ConfirmedAt      *time.Time
	RefundReason     *string
	RefundedAt       *time.Time
	RefundedBy       *string
	CreatedAt        *time.Time
}

var orderColumns = []string{
	"id",
	"service_id",
	"customer_id",
	"vendor_id",
	"quantity",
	"status",
	"is_paid",
	"payment_method",
	"payment_status",
	"payment_reference",
	"payment_proof",
	"payment_notes",
	"platform_fee",
	"vendor_receives",
	"payment_started_at",
	"payment_checked_at",
	"paid_at",
	"confirmed_by",
	"confirmed_at",
	"refund_reason",
	"refunded_at",
	"refunded_by",
	"created_at",
}

func (o *OrderDB) scanTargets() []any {
	return []any{
		&o.ID,
		&o.ServiceID,
		&o.CustomerID,
		&o.VendorID,
		&o.Quantity,
		&o.Status,
		&o.IsPaid,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.PaymentReference,
		&o.PaymentProof,
		&o.PaymentNotes,
		&o.PlatformFee,
		&o.VendorReceives,
		&o.PaymentStartedAt,
		&o.PaymentCheckedAt,
		&o.PaidAt,
		&o.ConfirmedBy,
		&o.ConfirmedAt,
		&o.RefundReason,
		&o.RefundedAt,
		&o.RefundedBy,
		&o.CreatedAt,
	}
}

// setClauses изменяемые поля заказа в порядке колонок. Неизменяемые ссылки
// (service/customer/vendor) и created_at сюда не входят.
func (m *OrderModifyDB) setClauses() map[string]any {
	clauses := map[string]any{}
	set := func(column string, isNil bool, value any) {
		if !isNil {
			clauses[column] = value
		}
	}

	set("status", m.Status == nil, m.Status)
	set("is_paid", m.IsPaid == nil, m.IsPaid)
	set("payment_method", m.PaymentMethod == nil, m.PaymentMethod)
	set("payment_status", m.PaymentStatus == nil, m.PaymentStatus)
	set("payment_reference", m.PaymentReference == nil, m.PaymentReference)
	set("payment_proof", m.PaymentProof == nil, m.PaymentProof)
	set("payment_notes", m.PaymentNotes == nil, m.PaymentNotes)
	set("platform_fee", m.PlatformFee == nil, m.PlatformFee)
	set("vendor_receives", m.VendorReceives == nil, m.VendorReceives)
	set("payment_started_at", m.PaymentStartedAt == nil, m.PaymentStartedAt)
	set("payment_checked_at", m.PaymentCheckedAt == nil, m.PaymentCheckedAt)
	set("paid_at", m.PaidAt == nil, m.PaidAt)
	set("confirmed_by", m.ConfirmedBy == nil, m.ConfirmedBy)
	set("confirmed_at", m.ConfirmedAt == nil, m.ConfirmedAt)
	set("refund_reason", m.RefundReason == nil, m.RefundReason)
	set("refunded_at", m.RefundedAt == nil, m.RefundedAt)
	set("refunded_by", m.RefundedBy == nil, m.RefundedBy)

	return clauses
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
