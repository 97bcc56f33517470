package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 100
)

// Service машина состояний заказа. Все переходы выполняются под блокировкой
// строки заказа, уведомления отправляются после коммита.
type Service struct {
	repository    Repository
	catalog       ServiceCatalog
	feeCalculator FeeCalculator
	notifications NotificationFactory
	notifier      Notifier
	txManager     TxManager
	log           logger.Logger
}

func New(
	repository Repository,
	catalog ServiceCatalog,
	feeCalculator FeeCalculator,
	notifications NotificationFactory,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Service {
	return &Service{
		repository:    repository,
		catalog:       catalog,
		feeCalculator: feeCalculator,
		notifications: notifications,
		notifier:      notifier,
		txManager:     txManager,
		log:           log.With(logger.Component("order_service")),
	}
}

func (s *Service) PlaceOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.OrderDetails, error) {
	if isBlank(orderModify.ServiceID) || isBlank(orderModify.CustomerID) || orderModify.Quantity == nil {
		return nil, ErrMissingRequiredFields
	}
	if *orderModify.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	serviceID := strings.TrimSpace(*orderModify.ServiceID)
	service, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	if !service.HasOwner() {
		return nil, ErrServiceOwnerMissing
	}

	order, err := s.repository.Create(ctx, entities.OrderModify{
		ID:            pointer.To(uuid.NewString()),
		ServiceID:     pointer.To(service.ID),
		CustomerID:    pointer.To(strings.TrimSpace(*orderModify.CustomerID)),
		VendorID:      service.OwnerID,
		Quantity:      orderModify.Quantity,
		Status:        pointer.To(entities.OrderPending),
		IsPaid:        pointer.To(false),
		PaymentMethod: pointer.To(entities.PaymentMethodUnset),
		PaymentStatus: pointer.To(entities.PaymentPending),
		CreatedAt:     pointer.To(time.Now().UTC()),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notify(ctx, entities.EventOrderPlaced, *order, service.Name)

	return &entities.OrderDetails{
		Order:   *order,
		Service: *service,
	}, nil
}

// SetOrderStatus решение продавца по заказу. Повторное одобрение ничего не меняет
// и не шлёт уведомлений, выход из терминального статуса запрещён.
func (s *Service) SetOrderStatus(ctx context.Context, orderID string, decision entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDecision(decision) {
		return nil, ErrInvalidDecision
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

		if current.Status == entities.OrderApproved && decision == entities.OrderApproved {
			order = current
			return nil
		}
		if !current.Status.CanTransitionTo(decision) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, decision)
		}

		order, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     pointer.To(orderID),
			Status: pointer.To(decision),
		})
		if err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set order %s status: %w", orderID, err)
	}

	if changed {
		event := entities.EventOrderRejected
		if decision == entities.OrderApproved {
			event = entities.EventOrderApproved
		}
		s.notify(ctx, event, *order, s.serviceName(ctx, order.ServiceID))
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders выборка для админки: фильтр по статусу/продавцу, новые первыми.
func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}

	orders, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &entities.OrderPage{
		Orders:     orders,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: (total + filter.Limit - 1) / filter.Limit,
	}, nil
}

func (s *Service) ListVendorOrders(ctx context.Context, vendorID string) ([]entities.Order, error) {
	if isBlank(&vendorID) {
		return nil, ErrMissingRequiredFields
	}

	page, err := s.ListOrders(ctx, entities.OrderFilter{
		VendorID: pointer.To(strings.TrimSpace(vendorID)),
		Limit:    maxLimit,
	})
	if err != nil {
		return nil, err
	}
	return page.Orders, nil
}

func (s *Service) ListPendingOfflinePayments(ctx context.Context, vendorID *string) ([]entities.Order, error) {
	if vendorID != nil {
		if isBlank(vendorID) {
			vendorID = nil
		} else {
			vendorID = pointer.To(strings.TrimSpace(*vendorID))
		}
	}

	orders, err := s.repository.ListPendingOffline(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list pending offline payments: %w", err)
	}
	return orders, nil
}

func (s *Service) serviceName(ctx context.Context, serviceID string) string {
	service, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		s.log.Warn("resolve service name for notification",
			logger.NewField("service_id", serviceID),
			logger.Err(err),
		)
		return ""
	}
	return service.Name
}

func (s *Service) notify(ctx context.Context, event entities.OrderEventType, order entities.Order, serviceName string) {
	notifications, err := s.notifications.Build(event, order, serviceName)
	if err != nil {
		s.log.Error("build notifications",
			logger.NewField("order_id", order.ID),
			logger.NewField("event", event.String()),
			logger.Err(err),
		)
		return
	}

	if created := s.notifier.Dispatch(ctx, notifications); created != len(notifications) {
		s.log.Warn("some notifications were not delivered",
			logger.NewField("order_id", order.ID),
			logger.NewField("event", event.String()),
			logger.NewField("expected", len(notifications)),
			logger.NewField("created", created),
		)
	}
}
