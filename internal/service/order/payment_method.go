package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"marketplace/internal/entities"
)

// SelectPaymentMethod фиксирует способ оплаты и комиссии по текущей цене услуги.
func (s *Service) SelectPaymentMethod(
	ctx context.Context,
	orderID string,
	method entities.PaymentMethodType,
) (*entities.PaymentSelection, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	var (
		order   *entities.Order
		service *entities.Service
		fees    entities.FeeBreakdown
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := checkPayable(current); err != nil {
			return err
		}

		service, fees, err = s.calculateFees(ctx, current)
		if err != nil {
			return err
		}

		paymentStatus := entities.PaymentPending
		if method == entities.PaymentMethodOffline {
			paymentStatus = entities.PaymentPendingConfirmation
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:             pointer.To(orderID),
			PaymentMethod:  pointer.To(method),
			PaymentStatus:  pointer.To(paymentStatus),
			PlatformFee:    pointer.To(fees.PlatformFee),
			VendorReceives: pointer.To(fees.VendorReceives),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("select payment method for order %s: %w", orderID, err)
	}

	event := entities.EventOnlinePaymentSelected
	if method == entities.PaymentMethodOffline {
		event = entities.EventOfflinePaymentSelected
	}
	s.notify(ctx, event, *order, service.Name)

	return &entities.PaymentSelection{
		Order:            *order,
		PlatformFee:      fees.PlatformFee,
		VendorReceives:   fees.VendorReceives,
		TotalAmount:      fees.Gross,
		RequiresRedirect: method == entities.PaymentMethodOnline,
	}, nil
}

// PrepareOnlinePayment переводит заказ на онлайн-оплату и пересчитывает комиссии
// по свежей цене, чтобы сумма списания и сохранённое разбиение совпадали.
func (s *Service) PrepareOnlinePayment(ctx context.Context, orderID string) (*entities.OnlineCharge, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var charge entities.OnlineCharge
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := checkPayable(current); err != nil {
			return err
		}

		service, fees, err := s.calculateFees(ctx, current)
		if err != nil {
			return err
		}

		order, err := s.repository.Update(ctx, entities.OrderModify{
			ID:             pointer.To(orderID),
			PaymentMethod:  pointer.To(entities.PaymentMethodOnline),
			PaymentStatus:  pointer.To(entities.PaymentPending),
			PlatformFee:    pointer.To(fees.PlatformFee),
			VendorReceives: pointer.To(fees.VendorReceives),
		})
		if err != nil {
			return err
		}

		charge = entities.OnlineCharge{
			Order:   *order,
			Service: *service,
			Gross:   fees.Gross,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("prepare online payment for order %s: %w", orderID, err)
	}

	return &charge, nil
}

// AttachPaymentReference сохраняет ссылку на транзакцию до того, как клиент
// уйдёт на страницу оплаты.
func (s *Service) AttachPaymentReference(ctx context.Context, orderID, reference string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrInvalidReference
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := checkPayable(current); err != nil {
			return err
		}
		if current.PaymentMethod != entities.PaymentMethodOnline {
			return fmt.Errorf("%w: payment method is %s", ErrInvalidTransition, current.PaymentMethod)
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:               pointer.To(orderID),
			PaymentReference: pointer.To(reference),
			PaymentStartedAt: pointer.To(time.Now().UTC()),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("attach payment reference to order %s: %w", orderID, err)
	}

	return order, nil
}

func (s *Service) calculateFees(ctx context.Context, order *entities.Order) (*entities.Service, entities.FeeBreakdown, error) {
	service, err := s.catalog.GetByID(ctx, order.ServiceID)
	if err != nil {
		return nil, entities.FeeBreakdown{}, fmt.Errorf("get service %s: %w", order.ServiceID, err)
	}

	fees, err := s.feeCalculator.Calculate(service.Price, order.Quantity)
	if err != nil {
		return nil, entities.FeeBreakdown{}, fmt.Errorf("calculate fees: %w", err)
	}
	return service, fees, nil
}

func checkPayable(order *entities.Order) error {
	if order.Status != entities.OrderApproved {
		return fmt.Errorf("%w: order is %s", ErrInvalidTransition, order.Status)
	}
	if order.IsPaid {
		return ErrAlreadyPaid
	}
	return nil
}
