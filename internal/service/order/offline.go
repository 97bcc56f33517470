package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"marketplace/internal/entities"
)

// ConfirmOfflinePayment ручное подтверждение оплаты вне платформы.
// Криптографического доказательства нет, поэтому обязательно фиксируем,
// кто подтвердил.
func (s *Service) ConfirmOfflinePayment(ctx context.Context, confirmation entities.OfflineConfirmation) (*entities.Order, error) {
	if !isValidOrderID(confirmation.OrderID) {
		return nil, ErrInvalidOrderID
	}
	confirmedBy := strings.TrimSpace(confirmation.ConfirmedBy)
	if confirmedBy == "" {
		return nil, ErrMissingActor
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, confirmation.OrderID)
		if err != nil {
			return err
		}
		if current.PaymentMethod != entities.PaymentMethodOffline {
			return fmt.Errorf("%w: payment method is %s", ErrInvalidTransition, current.PaymentMethod)
		}
		if current.IsPaid {
			return ErrAlreadyPaid
		}
		if current.Status != entities.OrderApproved {
			return fmt.Errorf("%w: order is %s", ErrInvalidTransition, current.Status)
		}

		now := time.Now().UTC()
		order, err = s.repository.MarkPaid(ctx, entities.OrderModify{
			ID:            pointer.To(current.ID),
			IsPaid:        pointer.To(true),
			PaymentStatus: pointer.To(entities.PaymentConfirmed),
			PaymentProof:  optional(confirmation.Proof),
			PaymentNotes:  optional(confirmation.Notes),
			ConfirmedBy:   pointer.To(confirmedBy),
			ConfirmedAt:   pointer.To(now),
			PaidAt:        pointer.To(now),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("confirm offline payment for order %s: %w", confirmation.OrderID, err)
	}

	s.notify(ctx, entities.EventPaymentSucceeded, *order, s.serviceName(ctx, order.ServiceID))

	return order, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
