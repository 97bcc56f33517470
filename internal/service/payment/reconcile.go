package payment

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// ReconcilePendingPayments проверяет у провайдера зависшие онлайн-оплаты, для
// которых не пришёл ни вебхук, ни ручная проверка. Возвращает число
// подтверждённых заказов.
func (s *Service) ReconcilePendingPayments(ctx context.Context) (int, error) {
	orders, err := s.orders.ListAwaitingOnlinePayments(ctx, s.config.ReconcileAge, s.config.ReconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("reconcile payments: %w", err)
	}

	completed := 0
	for _, o := range orders {
		if o.PaymentReference == nil {
			continue
		}
		reference := *o.PaymentReference
		log := s.log.With(
			logger.NewField("order_id", o.ID),
			logger.NewField("reference", reference),
		)

		verification, err := s.provider.VerifyTransaction(ctx, reference)
		if errors.Is(err, ErrProviderUnavailable) {
			log.Warn("provider unavailable, reconciliation postponed", logger.Err(err))
			return completed, nil
		}

		// провайдер ответил: заказ уходит в конец очереди до следующего окна
		if checkErr := s.orders.RecordPaymentCheck(ctx, o.ID); checkErr != nil {
			log.Warn("record payment check", logger.Err(checkErr))
		}

		if err != nil {
			log.Warn("verify transaction", logger.Err(err))
			continue
		}

		// abandoned/ongoing ещё могут завершиться, трогаем только финальные статусы
		if !verification.IsSuccessful() && verification.Status != "failed" {
			continue
		}

		_, err = s.applyVerification(ctx, o.ID, reference, verification, entities.PaymentSourceReconcile)
		switch {
		case err == nil:
			completed++
			log.Info("payment completed by reconciliation")
		case errors.Is(err, order.ErrAlreadyPaid):
		case errors.Is(err, ErrPaymentNotSuccessful):
			log.Info("payment reported as not successful", logger.Err(err))
		default:
			log.Error("apply reconciled payment", logger.Err(err))
		}
	}

	return completed, nil
}
