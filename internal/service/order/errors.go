package order

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrMissingRequiredFields = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", ErrValidation)
	ErrInvalidQuantity       = fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	ErrInvalidDecision       = fmt.Errorf("%w: decision must be Approved or Rejected", ErrValidation)
	ErrInvalidPaymentMethod  = fmt.Errorf("%w: payment method must be online or offline", ErrValidation)
	ErrInvalidReference      = fmt.Errorf("%w: payment reference is required", ErrValidation)
	ErrMissingActor          = fmt.Errorf("%w: actor is required", ErrValidation)
	ErrInvalidStatus         = fmt.Errorf("%w: unknown order status", ErrValidation)

	ErrOrderNotFound       = errors.New("order not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceOwnerMissing = errors.New("service owner not found for this service")

	ErrInvalidTransition = errors.New("invalid order transition")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrAlreadyRefunded   = errors.New("order already refunded")
	ErrRefundNotEligible = errors.New("order is not eligible for refund")
	ErrReferenceMismatch = errors.New("payment reference does not belong to order")
	ErrAmountMismatch    = errors.New("paid amount does not match order total")
)
