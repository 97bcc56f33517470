package paystack

import (
	"encoding/json"
	"strings"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type metadata struct {
	OrderID string `json:"order_id,omitempty"`
}

type initializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Reference   string   `json:"reference"`
	CallbackURL string   `json:"callback_url,omitempty"`
	Metadata    metadata `json:"metadata"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type transactionData struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Metadata  json.RawMessage `json:"metadata"`
}

type webhookPayload struct {
	Event string          `json:"event"`
	Data  transactionData `json:"data"`
}

// orderIDFromMetadata провайдер возвращает metadata объектом, JSON-строкой
// или пустой строкой, если она не передавалась.
func orderIDFromMetadata(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var md metadata
	if err := json.Unmarshal(raw, &md); err == nil {
		return strings.TrimSpace(md.OrderID)
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil || encoded == "" {
		return ""
	}
	if err := json.Unmarshal([]byte(encoded), &md); err != nil {
		return ""
	}
	return strings.TrimSpace(md.OrderID)
}
