package notification

import (
	"strings"

	"github.com/google/uuid"

	"marketplace/internal/entities"
)

func isValidRecipient(recipient *entities.Recipient) bool {
	if recipient == nil || strings.TrimSpace(recipient.ID) == "" {
		return false
	}
	switch recipient.Role {
	case entities.RecipientCustomer, entities.RecipientVendor:
		return true
	default:
		return false
	}
}

func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
