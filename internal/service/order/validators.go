package order

import (
	"strings"

	"github.com/google/uuid"

	"marketplace/internal/entities"
)

func isValidOrderID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidDecision(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderApproved, entities.OrderRejected:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderApproved, entities.OrderRejected, entities.OrderRefunded:
		return true
	default:
		return false
	}
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentMethodOnline, entities.PaymentMethodOffline:
		return true
	default:
		return false
	}
}
