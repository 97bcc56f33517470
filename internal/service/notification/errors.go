package notification

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrInvalidRecipient      = fmt.Errorf("%w: exactly one recipient is required", ErrValidation)
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidNotificationID = fmt.Errorf("%w: invalid notification id", ErrValidation)

	ErrNotificationNotFound = errors.New("notification not found")
)
