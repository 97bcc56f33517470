package payment

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrMissingReference = fmt.Errorf("%w: payment reference is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: a valid payer email is required", ErrValidation)

	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrMalformedEvent       = errors.New("malformed webhook event")
	ErrPaymentNotSuccessful = errors.New("payment not successful")

	// ErrProviderUnavailable таймаут или сетевой сбой провайдера, запрос можно повторить.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrProviderRejected    = errors.New("payment provider rejected request")
)
