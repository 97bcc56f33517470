package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"marketplace/internal/entities"
	"marketplace/internal/service/payment"
)

const SignatureHeader = "x-paystack-signature"

// Webhook проверяет подпись и разбирает события провайдера.
type Webhook struct {
	secretKey []byte
}

func NewWebhook(secretKey string) *Webhook {
	return &Webhook{secretKey: []byte(secretKey)}
}

// VerifySignature сравнивает hex HMAC-SHA512 тела за постоянное время.
func (w *Webhook) VerifySignature(payload []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return false
	}
	return hmac.Equal(got, w.sign(payload))
}

func (w *Webhook) ParseEvent(payload []byte) (*entities.WebhookEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", payment.ErrMalformedEvent, err)
	}
	if p.Event == "" {
		return nil, fmt.Errorf("%w: event name is empty", payment.ErrMalformedEvent)
	}
	return toWebhookEvent(p), nil
}

// Sign подпись тела в формате заголовка провайдера.
func (w *Webhook) Sign(payload []byte) string {
	return hex.EncodeToString(w.sign(payload))
}

func (w *Webhook) sign(payload []byte) []byte {
	mac := hmac.New(sha512.New, w.secretKey)
	mac.Write(payload)
	return mac.Sum(nil)
}
