package payment_reference

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	separator    = "."
	suffixLength = 12
)

// ReferenceFactory генерирует уникальные ссылки на транзакцию вида
// <prefix>.<order id>.<случайный суффикс>. Символы допустимы для Paystack.
type ReferenceFactory struct {
	prefix string
	random func() string
}

func New(prefix string) *ReferenceFactory {
	return &ReferenceFactory{
		prefix: prefix,
		random: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
		},
	}
}

func (f *ReferenceFactory) NewReference(orderID string) string {
	return fmt.Sprintf("%s%s%s%s%s", f.prefix, separator, orderID, separator, f.random())
}

// OrderIDFromReference достаёт id заказа из ссылки, созданной этой фабрикой.
func (f *ReferenceFactory) OrderIDFromReference(reference string) (string, bool) {
	parts := strings.Split(reference, separator)
	if len(parts) != 3 || parts[0] != f.prefix || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
