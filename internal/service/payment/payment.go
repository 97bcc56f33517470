package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Config struct {
	CallbackURL    string
	ReconcileAge   time.Duration
	ReconcileBatch uint64
}

// Service адаптер платёжного шлюза: инициализация, вебхук, проверка по ссылке.
// Все пути подтверждения сходятся в OrderService.CompleteOnlinePayment.
type Service struct {
	orders     OrderService
	provider   Provider
	webhook    WebhookVerifier
	references ReferenceFactory
	config     Config
	log        logger.Logger
}

func New(
	orders OrderService,
	provider Provider,
	webhook WebhookVerifier,
	references ReferenceFactory,
	config Config,
	log logger.Logger,
) *Service {
	return &Service{
		orders:     orders,
		provider:   provider,
		webhook:    webhook,
		references: references,
		config:     config,
		log:        log.With(logger.Component("payment_service")),
	}
}

// InitiatePayment сохраняет ссылку на заказе до обращения к провайдеру:
// вебхук может прийти раньше, чем клиент вернётся с редиректа.
func (s *Service) InitiatePayment(ctx context.Context, orderID, email string) (*entities.PaymentInitialization, error) {
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	charge, err := s.orders.PrepareOnlinePayment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("initiate payment: %w", err)
	}

	reference := s.references.NewReference(orderID)
	if _, err := s.orders.AttachPaymentReference(ctx, orderID, reference); err != nil {
		return nil, fmt.Errorf("initiate payment: %w", err)
	}

	amountMinor := entities.ToMinorUnits(charge.Gross)
	result, err := s.provider.InitializeTransaction(ctx, entities.TransactionInit{
		Email:       email,
		AmountMinor: amountMinor,
		Reference:   reference,
		CallbackURL: s.config.CallbackURL,
		OrderID:     orderID,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize transaction for order %s: %w", orderID, err)
	}

	if result.Reference != "" && result.Reference != reference {
		reference = result.Reference
		if _, err := s.orders.AttachPaymentReference(ctx, orderID, reference); err != nil {
			return nil, fmt.Errorf("initiate payment: %w", err)
		}
	}

	return &entities.PaymentInitialization{
		OrderID:          orderID,
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        reference,
		AmountMinor:      amountMinor,
	}, nil
}

// HandleWebhook возвращает ошибку только при неверной подписи. Всё остальное
// подтверждается провайдеру, иначе он будет бесконечно повторять доставку.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !s.webhook.VerifySignature(payload, signature) {
		return ErrInvalidSignature
	}

	event, err := s.webhook.ParseEvent(payload)
	if err != nil {
		s.log.Warn("skip malformed webhook event", logger.Err(err))
		return nil
	}
	if !event.IsChargeSuccess() {
		s.log.Info("skip webhook event", logger.NewField("event", event.Event))
		return nil
	}

	orderID := event.OrderID
	if orderID == "" {
		orderID, _ = s.references.OrderIDFromReference(event.Reference)
	}
	log := s.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("reference", event.Reference),
	)
	if orderID == "" {
		log.Warn("webhook event without order id")
		return nil
	}

	_, err = s.orders.CompleteOnlinePayment(ctx, entities.PaymentCompletion{
		OrderID:     orderID,
		Reference:   event.Reference,
		AmountMinor: event.AmountMinor,
		Source:      entities.PaymentSourceWebhook,
	})
	switch {
	case err == nil:
		log.Info("payment completed by webhook")
	case errors.Is(err, order.ErrAlreadyPaid):
		log.Info("webhook for already paid order")
	default:
		log.Error("apply webhook payment", logger.Err(err))
	}
	return nil
}

func (s *Service) VerifyPayment(ctx context.Context, reference, orderID string) (*entities.Order, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrMissingReference
	}

	current, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if current.IsPaid {
		return nil, fmt.Errorf("verify payment: %w", order.ErrAlreadyPaid)
	}
	if !current.HasReference(reference) {
		return nil, fmt.Errorf("verify payment: %w: %s", order.ErrReferenceMismatch, reference)
	}

	verification, err := s.provider.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", reference, err)
	}

	return s.applyVerification(ctx, current.ID, reference, verification, entities.PaymentSourceVerify)
}

func (s *Service) applyVerification(
	ctx context.Context,
	orderID string,
	reference string,
	verification *entities.TransactionVerification,
	source entities.PaymentSourceType,
) (*entities.Order, error) {
	if verification.Reference != "" && verification.Reference != reference {
		return nil, fmt.Errorf("verify payment: %w: provider answered for reference %s",
			order.ErrReferenceMismatch, verification.Reference)
	}
	if verification.OrderID != "" && verification.OrderID != orderID {
		return nil, fmt.Errorf("verify payment: %w: transaction belongs to order %s",
			order.ErrReferenceMismatch, verification.OrderID)
	}

	if !verification.IsSuccessful() {
		if _, err := s.orders.MarkPaymentFailed(ctx, orderID, reference); err != nil {
			s.log.Warn("mark payment failed",
				logger.NewField("order_id", orderID),
				logger.NewField("reference", reference),
				logger.Err(err),
			)
		}
		return nil, fmt.Errorf("%w: provider status %q", ErrPaymentNotSuccessful, verification.Status)
	}

	paid, err := s.orders.CompleteOnlinePayment(ctx, entities.PaymentCompletion{
		OrderID:     orderID,
		Reference:   reference,
		AmountMinor: verification.AmountMinor,
		Source:      source,
	})
	if err != nil {
		if errors.Is(err, order.ErrAmountMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrPaymentNotSuccessful, err)
		}
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	return paid, nil
}
