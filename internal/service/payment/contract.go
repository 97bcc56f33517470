//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	PrepareOnlinePayment(ctx context.Context, orderID string) (*entities.OnlineCharge, error)
	AttachPaymentReference(ctx context.Context, orderID string, reference string) (*entities.Order, error)
	CompleteOnlinePayment(ctx context.Context, completion entities.PaymentCompletion) (*entities.Order, error)
	MarkPaymentFailed(ctx context.Context, orderID string, reference string) (*entities.Order, error)
	ListAwaitingOnlinePayments(ctx context.Context, olderThan time.Duration, limit uint64) ([]entities.Order, error)
	RecordPaymentCheck(ctx context.Context, orderID string) error
}

type Provider interface {
	InitializeTransaction(ctx context.Context, init entities.TransactionInit) (*entities.TransactionInitResult, error)
	VerifyTransaction(ctx context.Context, reference string) (*entities.TransactionVerification, error)
}

type WebhookVerifier interface {
	VerifySignature(payload []byte, signature string) bool
	ParseEvent(payload []byte) (*entities.WebhookEvent, error)
}

type ReferenceFactory interface {
	NewReference(orderID string) string
	OrderIDFromReference(reference string) (string, bool)
}
