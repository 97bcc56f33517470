package paystack

import "marketplace/internal/entities"

func toInitializeRequest(init entities.TransactionInit) initializeRequest {
	return initializeRequest{
		Email:       init.Email,
		Amount:      init.AmountMinor,
		Reference:   init.Reference,
		CallbackURL: init.CallbackURL,
		Metadata:    metadata{OrderID: init.OrderID},
	}
}

func toInitResult(data initializeData) *entities.TransactionInitResult {
	return &entities.TransactionInitResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}
}

func toVerification(data transactionData) *entities.TransactionVerification {
	return &entities.TransactionVerification{
		Status:      data.Status,
		Reference:   data.Reference,
		AmountMinor: data.Amount,
		Currency:    data.Currency,
		OrderID:     orderIDFromMetadata(data.Metadata),
	}
}

func toWebhookEvent(payload webhookPayload) *entities.WebhookEvent {
	return &entities.WebhookEvent{
		Event:       payload.Event,
		Reference:   payload.Data.Reference,
		AmountMinor: payload.Data.Amount,
		OrderID:     orderIDFromMetadata(payload.Data.Metadata),
	}
}
