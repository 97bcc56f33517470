package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketplace/internal/gateway/http/paystack"
	"marketplace/internal/handlers/rest/notification_read_patch"
	"marketplace/internal/handlers/rest/notifications_get"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_offline_confirm_post"
	"marketplace/internal/handlers/rest/order_payment_initialize_post"
	"marketplace/internal/handlers/rest/order_payment_method_post"
	"marketplace/internal/handlers/rest/order_refund_post"
	"marketplace/internal/handlers/rest/order_status_patch"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/orders_post"
	"marketplace/internal/handlers/rest/payment_verify_get"
	"marketplace/internal/handlers/rest/payment_webhook_post"
	"marketplace/internal/handlers/rest/payments_offline_pending_get"
	"marketplace/internal/handlers/rest/vendor_orders_get"
	"marketplace/internal/handlers/tasks/notification_relay"
	"marketplace/internal/handlers/tasks/payment_reconcile"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_fee"
	"marketplace/internal/pkg/factory/order_notification"
	"marketplace/internal/pkg/factory/payment_reference"
	catalogRepo "marketplace/internal/repository/catalog"
	notificationRepo "marketplace/internal/repository/notification"
	orderRepo "marketplace/internal/repository/order"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	paymentService "marketplace/internal/service/payment"
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideCatalogRepository,
	provideNotificationRepository,

	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.ServiceCatalog), new(*catalogRepo.Repository)),
	wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),
)

var serviceSet = wire.NewSet(
	provideFeeFactory,
	order_notification.New,
	provideReferenceFactory,
	providePaystackClient,
	providePaystackWebhook,
	providePaymentConfig,

	provideServiceNotification,
	provideServiceOrder,
	provideServicePayment,

	wire.Bind(new(orderService.FeeCalculator), new(*order_fee.FeeFactory)),
	wire.Bind(new(orderService.NotificationFactory), new(*order_notification.NotificationFactory)),
	wire.Bind(new(orderService.Notifier), new(*notificationService.Notification)),

	wire.Bind(new(paymentService.OrderService), new(*orderService.Service)),
	wire.Bind(new(paymentService.Provider), new(*paystack.Client)),
	wire.Bind(new(paymentService.WebhookVerifier), new(*paystack.Webhook)),
	wire.Bind(new(paymentService.ReferenceFactory), new(*payment_reference.ReferenceFactory)),
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServicePayment      ServicePayment
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	order_get.Service
	orders_get.Service
	order_status_patch.Service
	order_payment_method_post.Service
	order_offline_confirm_post.Service
	order_refund_post.Service
	payments_offline_pending_get.Service
	vendor_orders_get.Service
}

type ServicePayment interface {
	order_payment_initialize_post.Service
	payment_verify_get.Service
	payment_webhook_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_patch.Service
}

type PaymentEventsWorkerApp struct {
	PaymentService *paymentService.Service
}

func provideTxManager(pool *pgxpool.Pool, cfg *config.Config) *tx.Manager {
	return tx.New(pool, cfg.Database.TxTimeout)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideFeeFactory(cfg *config.Config) (*order_fee.FeeFactory, error) {
	return order_fee.New(cfg.Fees.PlatformRate)
}

func provideReferenceFactory(cfg *config.Config) *payment_reference.ReferenceFactory {
	return payment_reference.New(cfg.Payment.ReferencePrefix)
}

func providePaystackClient(cfg *config.Config) *paystack.Client {
	return paystack.New(cfg.Payment.Paystack.BaseURL, cfg.Payment.Paystack.SecretKey, cfg.Payment.Paystack.Timeout)
}

func providePaystackWebhook(cfg *config.Config) *paystack.Webhook {
	return paystack.NewWebhook(cfg.Payment.Paystack.SecretKey)
}

func providePaymentConfig(cfg *config.Config) paymentService.Config {
	return paymentService.Config{
		CallbackURL:    cfg.Payment.Paystack.CallbackURL,
		ReconcileAge:   cfg.Tasks.PaymentReconcileAge,
		ReconcileBatch: cfg.Tasks.PaymentReconcileBatch,
	}
}

func provideServiceNotification(
	repository notificationService.Repository,
	log logger.Logger,
	cfg *config.Config,
) *notificationService.Notification {
	return notificationService.New(repository, log, cfg.Notifications.WriteTimeout)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.ServiceCatalog,
	feeCalculator orderService.FeeCalculator,
	notifications orderService.NotificationFactory,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, catalog, feeCalculator, notifications, notifier, txManager, log)
}

func provideServicePayment(
	orders paymentService.OrderService,
	provider paymentService.Provider,
	webhook paymentService.WebhookVerifier,
	references paymentService.ReferenceFactory,
	paymentConfig paymentService.Config,
	log logger.Logger,
) *paymentService.Service {
	return paymentService.New(orders, provider, webhook, references, paymentConfig, log)
}

func provideNotificationRelay(
	repository notificationService.Repository,
	txManager notificationService.TxManager,
	publisher notificationService.Publisher,
	log logger.Logger,
) *notificationService.Relay {
	return notificationService.NewRelay(repository, txManager, publisher, log)
}

func providePaymentReconcileTask(
	service *paymentService.Service,
	log logger.Logger,
	cfg *config.Config,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.New(service, log, cfg.Tasks.PaymentReconcileInterval)
}

func provideNotificationRelayTask(
	relay *notificationService.Relay,
	log logger.Logger,
	cfg *config.Config,
) *notification_relay.NotificationRelay {
	return notification_relay.New(relay, log, cfg.Notifications.RelayInterval, cfg.Notifications.RelayBatchSize)
}

// provideTaskList нулевой интервал сверки или отключённый брокер выключают
// соответствующую задачу.
func provideTaskList(
	cfg *config.Config,
	publisher notificationService.Publisher,
	reconcileTask *payment_reconcile.PaymentReconcile,
	relayTask *notification_relay.NotificationRelay,
) []background.Task {
	var tasks []background.Task
	if cfg.Tasks.PaymentReconcileInterval > 0 {
		tasks = append(tasks, reconcileTask)
	}
	if publisher != nil && cfg.Notifications.Broker != config.BrokerNone && cfg.Notifications.RelayInterval > 0 {
		tasks = append(tasks, relayTask)
	}
	return tasks
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
