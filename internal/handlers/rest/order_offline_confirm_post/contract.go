//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_offline_confirm_post_test
package order_offline_confirm_post

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
	ConfirmOfflinePayment(ctx context.Context, confirmation entities.OfflineConfirmation) (*entities.Order, error)
}
