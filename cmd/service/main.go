package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "marketplace/internal/app"
	kafkaBroker "marketplace/internal/gateway/broker/kafka"
	rabbitBroker "marketplace/internal/gateway/broker/rabbitmq"
	"marketplace/internal/handlers/rest/healthcheck_head"
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
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/vendor_orders_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/migrations"
	"marketplace/internal/pkg/postgres"
	"marketplace/internal/pkg/rabbitmq"
	"marketplace/internal/service/notification"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

const webhookRoute = "/payments/webhook"

func main() {
	envLoaded, envErr := dotenv.Load()

	cfg, cfgErr := config.Load()

	level := "info"
	if cfg != nil {
		level = cfg.Log.Level
	}
	zapLogger, err := zap_adapter.NewZapAdapter(level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.Component("main"))

	mainLog.Info("starting marketplace application")

	if envErr != nil {
		mainLog.Error("failed to load .env file", logger.Err(envErr))
		return
	}
	if !envLoaded {
		mainLog.Warn("no .env file found, using system environment variables")
	}
	if cfgErr != nil {
		mainLog.Error("load config", logger.Err(cfgErr))
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.Err(err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.Component("run"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runLog.Info("migrations applied")
	}

	publisher, closePublisher, err := newNotificationPublisher(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("notification broker: %w", err)
	}
	defer closePublisher()

	// workersCtx переживает SIGTERM до окончания дренажа HTTP запросов,
	// чтобы фоновые задачи не обрывались посреди транзакции.
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(workersCtx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf("localhost:%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)

	var pprofShutdownErr error
	if pprofServer != nil {
		pprofShutdownErr = pprofServer.Shutdown(shutdownCtx)
		if pprofShutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.Err(pprofShutdownErr))
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofShutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	stopWorkers()
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("server stopped")
	return nil
}

// newNotificationPublisher возвращает nil, если внешний брокер выключен:
// уведомления тогда остаются только в таблице.
func newNotificationPublisher(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (notification.Publisher, func(), error) {
	switch cfg.Notifications.Broker {
	case config.BrokerKafka:
		producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := producer.Close(); err != nil {
				log.Error("failed to close kafka producer", logger.Err(err))
			}
		}
		return kafkaBroker.New(producer, cfg.Kafka.NotificationTopic), closeFn, nil
	case config.BrokerRabbitMQ:
		channel, err := rabbitmq.Dial(ctx, log, &cfg.RabbitMQ)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := channel.Close(); err != nil {
				log.Error("failed to close rabbitmq channel", logger.Err(err))
			}
		}
		return rabbitBroker.New(channel), closeFn, nil
	default:
		return nil, func() {}, nil
	}
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS)),
		webhookRoute,
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/orders", orders_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/orders/{order_id}", order_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/orders/{order_id}/status", order_status_patch.New(log, app.ServiceOrder)).Methods(http.MethodPatch)
	router.Handle("/orders/{order_id}/payment-method", order_payment_method_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/orders/{order_id}/payment/initialize", order_payment_initialize_post.New(log, app.ServicePayment)).Methods(http.MethodPost)
	router.Handle("/orders/{order_id}/payment/offline/confirm", order_offline_confirm_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/orders/{order_id}/refund", order_refund_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)

	router.Handle("/payments/verify/{reference}", payment_verify_get.New(log, app.ServicePayment)).Methods(http.MethodGet)
	router.Handle(webhookRoute, payment_webhook_post.New(log, app.ServicePayment, cfg.Payment.Paystack.Timeout)).Methods(http.MethodPost)
	router.Handle("/payments/offline/pending", payments_offline_pending_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	router.Handle("/vendors/{vendor_id}/orders", vendor_orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	router.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods(http.MethodGet)
	router.Handle("/notifications/{notification_id}/read", notification_read_patch.New(log, app.ServiceNotification)).Methods(http.MethodPatch)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
