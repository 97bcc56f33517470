package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"marketplace/internal/entities"
)

const defaultRefundReason = "Admin processed refund"

// RefundOrder только фиксирует возврат: деньги через провайдера не двигаются,
// признак оплаты остаётся, чтобы сохранить финансовую историю.
func (s *Service) RefundOrder(ctx context.Context, request entities.RefundRequest) (*entities.Order, error) {
	if !isValidOrderID(request.OrderID) {
		return nil, ErrInvalidOrderID
	}
	actor := strings.TrimSpace(request.Actor)
	if actor == "" {
		return nil, ErrMissingActor
	}
	reason := strings.TrimSpace(request.Reason)
	if reason == "" {
		reason = defaultRefundReason
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, request.OrderID)
		if err != nil {
			return err
		}
		if !current.IsPaid {
			return ErrRefundNotEligible
		}
		if current.Status == entities.OrderRefunded {
			return ErrAlreadyRefunded
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:           pointer.To(current.ID),
			Status:       pointer.To(entities.OrderRefunded),
			RefundReason: pointer.To(reason),
			RefundedAt:   pointer.To(time.Now().UTC()),
			RefundedBy:   pointer.To(actor),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("refund order %s: %w", request.OrderID, err)
	}

	s.notify(ctx, entities.EventOrderRefunded, *order, s.serviceName(ctx, order.ServiceID))

	return order, nil
}
