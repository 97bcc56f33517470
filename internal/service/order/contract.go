//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	MarkPaid(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, uint64, error)
	ListPendingOffline(ctx context.Context, vendorID *string) ([]entities.Order, error)
	ListAwaitingOnline(ctx context.Context, cutoff time.Time, limit uint64) ([]entities.Order, error)
}

type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*entities.Service, error)
}

type FeeCalculator interface {
	Calculate(unitPrice decimal.Decimal, quantity int64) (entities.FeeBreakdown, error)
}

type NotificationFactory interface {
	Build(event entities.OrderEventType, order entities.Order, serviceName string) ([]entities.NotificationModify, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, notifications []entities.NotificationModify) int
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
