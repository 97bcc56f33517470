//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketplace/internal/pkg/config"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	paymentService "marketplace/internal/service/payment"
	"marketplace/pkg/logger"
)

// InitializeApplication для HTTP сервиса (cmd/service).
// publisher может быть nil, если брокер уведомлений отключён.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher notificationService.Publisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideNotificationRelay,
		providePaymentReconcileTask,
		provideNotificationRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
	)
	return &Application{}, nil
}

// InitializePaymentEventsWorkerApp для Kafka воркера (cmd/worker-payment-events).
func InitializePaymentEventsWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*PaymentEventsWorkerApp, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		wire.Struct(new(PaymentEventsWorkerApp), "*"),
	)
	return nil, nil
}
