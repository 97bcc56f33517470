package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// CompleteOnlinePayment применяет подтверждённую провайдером оплату. Вебхук и
// ручная проверка сходятся сюда; повторное применение возвращает ErrAlreadyPaid
// и не создаёт уведомлений.
func (s *Service) CompleteOnlinePayment(ctx context.Context, completion entities.PaymentCompletion) (*entities.Order, error) {
	if !isValidOrderID(completion.OrderID) {
		return nil, ErrInvalidOrderID
	}
	completion.Reference = strings.TrimSpace(completion.Reference)
	if completion.Reference == "" {
		return nil, ErrInvalidReference
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, completion.OrderID)
		if err != nil {
			return err
		}
		if current.IsPaid {
			return ErrAlreadyPaid
		}
		if current.Status != entities.OrderApproved {
			return fmt.Errorf("%w: order is %s", ErrInvalidTransition, current.Status)
		}

		if !current.HasReference(completion.Reference) {
			// проверка по ссылке обязана совпасть с сохранённой; вебхук может
			// прийти по более ранней инициализации, деньги при этом получены
			if completion.Source == entities.PaymentSourceVerify || current.PaymentReference == nil {
				return fmt.Errorf("%w: %s", ErrReferenceMismatch, completion.Reference)
			}
			s.log.Warn("completing payment with a superseded reference",
				logger.NewField("order_id", current.ID),
				logger.NewField("reference", completion.Reference),
				logger.NewField("source", completion.Source.String()),
			)
		}

		if expected := entities.ToMinorUnits(current.Gross()); completion.AmountMinor != expected {
			return fmt.Errorf("%w: paid %d, expected %d", ErrAmountMismatch, completion.AmountMinor, expected)
		}

		order, err = s.repository.MarkPaid(ctx, entities.OrderModify{
			ID:               pointer.To(current.ID),
			IsPaid:           pointer.To(true),
			PaymentMethod:    pointer.To(entities.PaymentMethodOnline),
			PaymentStatus:    pointer.To(entities.PaymentConfirmed),
			PaymentReference: pointer.To(completion.Reference),
			PaidAt:           pointer.To(time.Now().UTC()),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("complete online payment for order %s: %w", completion.OrderID, err)
	}

	s.notify(ctx, entities.EventPaymentSucceeded, *order, s.serviceName(ctx, order.ServiceID))

	return order, nil
}

// MarkPaymentFailed фиксирует неуспешную онлайн-оплату. Заказ остаётся
// неоплаченным и может быть оплачен повторно.
func (s *Service) MarkPaymentFailed(ctx context.Context, orderID, reference string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		order   *entities.Order
		changed bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if current.IsPaid {
			return ErrAlreadyPaid
		}
		if !current.HasReference(reference) {
			return fmt.Errorf("%w: %s", ErrReferenceMismatch, reference)
		}
		if current.PaymentStatus == entities.PaymentFailed {
			order = current
			return nil
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:            pointer.To(orderID),
			PaymentStatus: pointer.To(entities.PaymentFailed),
		})
		if err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mark payment failed for order %s: %w", orderID, err)
	}

	if changed {
		s.notify(ctx, entities.EventPaymentFailed, *order, s.serviceName(ctx, order.ServiceID))
	}
	return order, nil
}

// RecordPaymentCheck отмечает обращение к провайдеру по заказу. Сверка не
// вернётся к нему раньше, чем через окно ReconcileAge.
func (s *Service) RecordPaymentCheck(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	_, err := s.repository.Update(ctx, entities.OrderModify{
		ID:               pointer.To(orderID),
		PaymentCheckedAt: pointer.To(time.Now().UTC()),
	})
	if err != nil {
		return fmt.Errorf("record payment check for order %s: %w", orderID, err)
	}
	return nil
}

// ListAwaitingOnlinePayments онлайн-заказы со ссылкой на транзакцию, начатой
// раньше olderThan назад и так и не подтверждённой. Заказы, проверенные за
// последние olderThan, пропускаются.
func (s *Service) ListAwaitingOnlinePayments(ctx context.Context, olderThan time.Duration, limit uint64) ([]entities.Order, error) {
	orders, err := s.repository.ListAwaitingOnline(ctx, time.Now().UTC().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("list awaiting online payments: %w", err)
	}
	return orders, nil
}
