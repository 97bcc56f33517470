package entities

import "github.com/shopspring/decimal"

// Service услуга продавца. Принадлежит каталогу, движок заказов только читает её.
type Service struct {
	ID      string
	Name    string
	Price   decimal.Decimal
	OwnerID *string
}

func (s Service) HasOwner() bool {
	return s.OwnerID != nil && *s.OwnerID != ""
}
