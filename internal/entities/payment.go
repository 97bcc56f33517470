package entities

import "github.com/shopspring/decimal"

var minorUnitsPerMajor = decimal.NewFromInt(100)

// ToMinorUnits переводит сумму в копейки/кобо для платёжного провайдера.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitsPerMajor).Round(0).IntPart()
}

type PaymentSourceType string

const (
	PaymentSourceWebhook   PaymentSourceType = "webhook"
	PaymentSourceVerify    PaymentSourceType = "verify"
	PaymentSourceReconcile PaymentSourceType = "reconcile"
)

func (s PaymentSourceType) String() string {
	return string(s)
}

// PaymentCompletion подтверждённая провайдером оплата, которую нужно применить к заказу.
type PaymentCompletion struct {
	OrderID     string
	Reference   string
	AmountMinor int64
	Source      PaymentSourceType
}

// OnlineCharge данные для инициализации платежа: заказ с уже пересчитанными комиссиями.
type OnlineCharge struct {
	Order   Order
	Service Service
	Gross   decimal.Decimal
}

type TransactionInit struct {
	Email       string
	AmountMinor int64
	Reference   string
	CallbackURL string
	OrderID     string
}

type TransactionInitResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type TransactionVerification struct {
	Status      string
	Reference   string
	AmountMinor int64
	Currency    string
	OrderID     string
}

func (v TransactionVerification) IsSuccessful() bool {
	return v.Status == "success"
}

type WebhookEvent struct {
	Event       string
	Reference   string
	AmountMinor int64
	OrderID     string
}

func (e WebhookEvent) IsChargeSuccess() bool {
	return e.Event == "charge.success"
}

type PaymentInitialization struct {
	OrderID          string
	AuthorizationURL string
	AccessCode       string
	Reference        string
	AmountMinor      int64
}
