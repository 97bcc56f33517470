package order_notification

import (
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"

	"marketplace/internal/entities"
)

var ErrUndefinedEvent = errors.New("undefined order event")

type buildFn func(order entities.Order, serviceName string) []entities.NotificationModify

// NotificationFactory знает, кому и что сообщить о каждом переходе заказа.
type NotificationFactory struct {
	builders map[entities.OrderEventType]buildFn
}

func New() *NotificationFactory {
	f := &NotificationFactory{}
	f.builders = map[entities.OrderEventType]buildFn{
		entities.EventOrderPlaced:            f.orderPlaced,
		entities.EventOrderApproved:          f.orderApproved,
		entities.EventOrderRejected:          f.orderRejected,
		entities.EventOnlinePaymentSelected:  f.onlinePaymentSelected,
		entities.EventOfflinePaymentSelected: f.offlinePaymentSelected,
		entities.EventPaymentSucceeded:       f.paymentSucceeded,
		entities.EventPaymentFailed:          f.paymentFailed,
		entities.EventOrderRefunded:          f.orderRefunded,
	}
	return f
}

func (f *NotificationFactory) Build(event entities.OrderEventType, order entities.Order, serviceName string) ([]entities.NotificationModify, error) {
	build, ok := f.builders[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedEvent, event)
	}
	if serviceName == "" {
		serviceName = "order " + order.ID
	}
	return build(order, serviceName), nil
}

func (f *NotificationFactory) orderPlaced(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.VendorRecipient(order.VendorID), entities.NotificationOrderPlaced, true,
			fmt.Sprintf("You have a new order for your service: %s", serviceName)),
	}
}

func (f *NotificationFactory) orderApproved(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationOrderApproved, true,
			fmt.Sprintf("Your order for %s has been approved. Please select a payment method.", serviceName)),
	}
}

func (f *NotificationFactory) orderRejected(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationOrderRejected, false,
			fmt.Sprintf("Your order for %s has been rejected.", serviceName)),
	}
}

func (f *NotificationFactory) onlinePaymentSelected(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationPaymentRequired, true,
			fmt.Sprintf("Complete the online payment of %s for %s.", order.Gross().StringFixed(2), serviceName)),
	}
}

func (f *NotificationFactory) offlinePaymentSelected(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.VendorRecipient(order.VendorID), entities.NotificationOfflinePaymentPending, true,
			fmt.Sprintf("The customer chose offline payment of %s for %s. Confirm it once the payment is received.",
				order.Gross().StringFixed(2), serviceName)),
	}
}

func (f *NotificationFactory) paymentSucceeded(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationPaymentSuccessful, false,
			fmt.Sprintf("Your payment for %s was successful.", serviceName)),
		notification(order, entities.VendorRecipient(order.VendorID), entities.NotificationPaymentSuccessful, true,
			fmt.Sprintf("Payment received for %s. You can start delivering the service.", serviceName)),
	}
}

func (f *NotificationFactory) paymentFailed(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationPaymentFailed, true,
			fmt.Sprintf("Your payment for %s was not successful. Please try again.", serviceName)),
	}
}

func (f *NotificationFactory) orderRefunded(order entities.Order, serviceName string) []entities.NotificationModify {
	return []entities.NotificationModify{
		notification(order, entities.CustomerRecipient(order.CustomerID), entities.NotificationRefundProcessed, false,
			fmt.Sprintf("Refund processed for your order %q. The amount will be credited to your account within 5-7 business days.", serviceName)),
		notification(order, entities.VendorRecipient(order.VendorID), entities.NotificationOrderRefunded, false,
			fmt.Sprintf("Order %q has been refunded by admin. Please check with the customer if needed.", serviceName)),
	}
}

func notification(
	order entities.Order,
	recipient entities.Recipient,
	notificationType entities.NotificationType,
	actionRequired bool,
	message string,
) entities.NotificationModify {
	return entities.NotificationModify{
		OrderID:        pointer.To(order.ID),
		Recipient:      pointer.To(recipient),
		Message:        pointer.To(message),
		Type:           pointer.To(notificationType),
		ActionRequired: pointer.To(actionRequired),
	}
}
