package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)

type (
	Log struct {
		Level string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		ShutdownTimeout  time.Duration
		RateLimiterQPS   int // middleware rate limiter refill
		RateLimiterBurst int // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		TxTimeout      time.Duration
		MigrateOnStart bool
	}

	Paystack struct {
		BaseURL     string
		SecretKey   string
		CallbackURL string
		Timeout     time.Duration
	}

	Payment struct {
		Paystack        Paystack
		ReferencePrefix string
	}

	Fees struct {
		PlatformRate decimal.Decimal
	}

	Notifications struct {
		WriteTimeout   time.Duration
		Broker         string
		RelayInterval  time.Duration
		RelayBatchSize uint64
	}

	Tasks struct {
		PaymentReconcileInterval time.Duration
		PaymentReconcileAge      time.Duration
		PaymentReconcileBatch    uint64
	}

	Kafka struct {
		PortHealthcheck   string
		Brokers           string
		ConsumerGroup     string
		WebhookTopic      string
		NotificationTopic string
		Sarama            Sarama
		Handlers          KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentEventReceived PaymentEventReceived
	}

	PaymentEventReceived struct {
		ProcessTimeout time.Duration
	}

	RabbitMQ struct {
		URL   string
		Queue string
	}

	Config struct {
		Log           Log
		Server        HTTPServer
		Database      Database
		Payment       Payment
		Fees          Fees
		Notifications Notifications
		Tasks         Tasks
		Kafka         Kafka
		RabbitMQ      RabbitMQ
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv(newViper())
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MIDDLEWARE_REQUEST_TIMEOUT", "15s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MIDDLEWARE_RATE_LIMIT_QPS", 100)
	v.SetDefault("MIDDLEWARE_RATE_LIMIT_BURST", 200)
	v.SetDefault("PPROF_PORT", "6060")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_TX_TIMEOUT", "5s")
	v.SetDefault("POSTGRES_MIGRATE_ON_START", true)
	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("PAYSTACK_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_REFERENCE_PREFIX", "ord")
	v.SetDefault("PLATFORM_FEE_RATE", "0.10")
	v.SetDefault("NOTIFICATION_WRITE_TIMEOUT", "3s")
	v.SetDefault("NOTIFICATION_BROKER", BrokerNone)
	v.SetDefault("NOTIFICATION_RELAY_INTERVAL", "5s")
	v.SetDefault("NOTIFICATION_RELAY_BATCH_SIZE", 100)
	v.SetDefault("BACKGROUND_PAYMENT_RECONCILE_INTERVAL", "0s")
	v.SetDefault("BACKGROUND_PAYMENT_RECONCILE_AGE", "15m")
	v.SetDefault("BACKGROUND_PAYMENT_RECONCILE_BATCH", 50)
	v.SetDefault("KAFKA_WEBHOOK_TOPIC", "payment.webhook")
	v.SetDefault("KAFKA_NOTIFICATION_TOPIC", "order.notifications")
	v.SetDefault("KAFKA_SARAMA_VERSION", "3.6.0")
	v.SetDefault("KAFKA_HANDLER_PAYMENT_EVENT_RECEIVED_PROCESS_TIMEOUT", "10s")
	v.SetDefault("RABBITMQ_QUEUE", "order.notifications")

	return v
}

func loadFromEnv(v *viper.Viper) (*Config, error) {
	var (
		errs []error
		get  = func(parse func(string) error, key string) {
			if err := parse(key); err != nil {
				errs = append(errs, err)
			}
		}
		cfg = &Config{}
	)

	get(durationInto(v, &cfg.Server.RequestTimeout), "MIDDLEWARE_REQUEST_TIMEOUT")
	get(durationInto(v, &cfg.Server.ShutdownTimeout), "SERVER_SHUTDOWN_TIMEOUT")
	get(intInto(v, &cfg.Server.RateLimiterQPS), "MIDDLEWARE_RATE_LIMIT_QPS")
	get(intInto(v, &cfg.Server.RateLimiterBurst), "MIDDLEWARE_RATE_LIMIT_BURST")
	get(boolInto(v, &cfg.Server.PprofEnabled), "PPROF_ENABLED")
	get(durationInto(v, &cfg.Database.TxTimeout), "POSTGRES_TX_TIMEOUT")
	get(boolInto(v, &cfg.Database.MigrateOnStart), "POSTGRES_MIGRATE_ON_START")
	get(durationInto(v, &cfg.Payment.Paystack.Timeout), "PAYSTACK_TIMEOUT")
	get(decimalInto(v, &cfg.Fees.PlatformRate), "PLATFORM_FEE_RATE")
	get(durationInto(v, &cfg.Notifications.WriteTimeout), "NOTIFICATION_WRITE_TIMEOUT")
	get(durationInto(v, &cfg.Notifications.RelayInterval), "NOTIFICATION_RELAY_INTERVAL")
	get(uintInto(v, &cfg.Notifications.RelayBatchSize), "NOTIFICATION_RELAY_BATCH_SIZE")
	get(durationInto(v, &cfg.Tasks.PaymentReconcileInterval), "BACKGROUND_PAYMENT_RECONCILE_INTERVAL")
	get(durationInto(v, &cfg.Tasks.PaymentReconcileAge), "BACKGROUND_PAYMENT_RECONCILE_AGE")
	get(uintInto(v, &cfg.Tasks.PaymentReconcileBatch), "BACKGROUND_PAYMENT_RECONCILE_BATCH")
	get(boolInto(v, &cfg.Kafka.Sarama.ConsumerOffsetsAutocommit), "KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	get(durationInto(v, &cfg.Kafka.Handlers.PaymentEventReceived.ProcessTimeout),
		"KAFKA_HANDLER_PAYMENT_EVENT_RECEIVED_PROCESS_TIMEOUT")

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Server.Port = v.GetString("PORT")
	cfg.Server.PprofPort = v.GetString("PPROF_PORT")
	cfg.Database.Host = v.GetString("POSTGRES_HOST")
	cfg.Database.Port = v.GetString("POSTGRES_PORT")
	cfg.Database.User = v.GetString("POSTGRES_USER")
	cfg.Database.Password = v.GetString("POSTGRES_PASSWORD")
	cfg.Database.DBName = v.GetString("POSTGRES_DB")
	cfg.Database.SSLMode = v.GetString("POSTGRES_SSLMODE")
	cfg.Payment.Paystack.BaseURL = strings.TrimRight(v.GetString("PAYSTACK_BASE_URL"), "/")
	cfg.Payment.Paystack.SecretKey = v.GetString("PAYSTACK_SECRET_KEY")
	cfg.Payment.Paystack.CallbackURL = v.GetString("PAYSTACK_CALLBACK_URL")
	cfg.Payment.ReferencePrefix = v.GetString("PAYMENT_REFERENCE_PREFIX")
	cfg.Notifications.Broker = strings.ToLower(v.GetString("NOTIFICATION_BROKER"))
	cfg.Kafka.Brokers = v.GetString("KAFKA_BROKERS")
	cfg.Kafka.ConsumerGroup = v.GetString("KAFKA_CONSUMER_GROUP")
	cfg.Kafka.PortHealthcheck = v.GetString("KAFKA_HTTP_HEALTHCHECK_PORT")
	cfg.Kafka.WebhookTopic = v.GetString("KAFKA_WEBHOOK_TOPIC")
	cfg.Kafka.NotificationTopic = v.GetString("KAFKA_NOTIFICATION_TOPIC")
	cfg.Kafka.Sarama.Version = v.GetString("KAFKA_SARAMA_VERSION")
	cfg.RabbitMQ.URL = v.GetString("RABBITMQ_URL")
	cfg.RabbitMQ.Queue = v.GetString("RABBITMQ_QUEUE")

	return cfg, nil
}

// KafkaBrokers список брокеров из строки вида "host1:9092,host2:9092".
func (k Kafka) KafkaBrokers() []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}

	if cfg.Payment.Paystack.SecretKey == "" {
		return errors.New("PAYSTACK_SECRET_KEY is required")
	}
	if cfg.Payment.Paystack.Timeout <= 0 {
		return errors.New("PAYSTACK_TIMEOUT must be positive")
	}
	if cfg.Payment.ReferencePrefix == "" || strings.Contains(cfg.Payment.ReferencePrefix, ".") {
		return errors.New("PAYMENT_REFERENCE_PREFIX must be non-empty and must not contain dots")
	}

	if cfg.Fees.PlatformRate.IsNegative() || cfg.Fees.PlatformRate.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("PLATFORM_FEE_RATE must be within [0, 1]")
	}

	switch cfg.Notifications.Broker {
	case BrokerNone:
	case BrokerKafka:
		if cfg.Kafka.Brokers == "" || cfg.Kafka.NotificationTopic == "" {
			return errors.New("KAFKA_BROKERS and KAFKA_NOTIFICATION_TOPIC are required for the kafka notification broker")
		}
	case BrokerRabbitMQ:
		if cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Queue == "" {
			return errors.New("RABBITMQ_URL and RABBITMQ_QUEUE are required for the rabbitmq notification broker")
		}
	default:
		return fmt.Errorf("NOTIFICATION_BROKER must be one of %s, %s, %s", BrokerNone, BrokerKafka, BrokerRabbitMQ)
	}
	if cfg.Notifications.Broker != BrokerNone && cfg.Notifications.RelayInterval <= 0 {
		return errors.New("NOTIFICATION_RELAY_INTERVAL must be positive when a broker is configured")
	}

	if cfg.Tasks.PaymentReconcileInterval > 0 && cfg.Tasks.PaymentReconcileAge <= 0 {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_AGE must be positive when reconciliation is enabled")
	}

	return nil
}

// ValidateWorker дополнительные требования для воркера вебхуков.
func (c *Config) ValidateWorker() error {
	if c.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.WebhookTopic == "" {
		return errors.New("KAFKA_WEBHOOK_TOPIC is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if c.Kafka.Handlers.PaymentEventReceived.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_PAYMENT_EVENT_RECEIVED_PROCESS_TIMEOUT must be positive")
	}
	return nil
}

func durationInto(v *viper.Viper, dst *time.Duration) func(string) error {
	return func(key string) error {
		val := v.GetString(key)
		if val == "" {
			return nil
		}
		res, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err)
		}
		*dst = res
		return nil
	}
}

func intInto(v *viper.Viper, dst *int) func(string) error {
	return func(key string) error {
		val := v.GetString(key)
		if val == "" {
			return nil
		}
		res, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int format for %s=%q: %w", key, val, err)
		}
		*dst = res
		return nil
	}
}

func uintInto(v *viper.Viper, dst *uint64) func(string) error {
	return func(key string) error {
		val := v.GetString(key)
		if val == "" {
			return nil
		}
		res, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned int format for %s=%q: %w", key, val, err)
		}
		*dst = res
		return nil
	}
}

func boolInto(v *viper.Viper, dst *bool) func(string) error {
	return func(key string) error {
		val := v.GetString(key)
		if val == "" {
			return nil
		}
		res, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool format for %s=%q: %w", key, val, err)
		}
		*dst = res
		return nil
	}
}

func decimalInto(v *viper.Viper, dst *decimal.Decimal) func(string) error {
	return func(key string) error {
		val := v.GetString(key)
		if val == "" {
			return nil
		}
		res, err := decimal.NewFromString(val)
		if err != nil {
			return fmt.Errorf("invalid decimal format for %s=%q: %w", key, val, err)
		}
		*dst = res
		return nil
	}
}
