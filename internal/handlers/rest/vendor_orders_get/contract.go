//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vendor_orders_get_test
package vendor_orders_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListVendorOrders(ctx context.Context, vendorID string) ([]entities.Order, error)
}
