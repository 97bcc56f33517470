package order_fee

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"marketplace/internal/entities"
)

const moneyPlaces = 2

var (
	DefaultRate = decimal.RequireFromString("0.10")

	ErrInvalidRate     = errors.New("fee rate must be within [0, 1]")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type FeeFactory struct {
	rate decimal.Decimal
}

func New(rate decimal.Decimal) (*FeeFactory, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRate, rate)
	}
	return &FeeFactory{rate: rate}, nil
}

func (f *FeeFactory) Rate() decimal.Decimal {
	return f.rate
}

// Calculate округляет только комиссию (half-up, 2 знака), выплата продавцу
// получается вычитанием, поэтому сумма частей всегда равна gross.
func (f *FeeFactory) Calculate(unitPrice decimal.Decimal, quantity int64) (entities.FeeBreakdown, error) {
	if unitPrice.IsNegative() {
		return entities.FeeBreakdown{}, fmt.Errorf("%w: %s", ErrInvalidPrice, unitPrice)
	}
	if quantity < 1 {
		return entities.FeeBreakdown{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	gross := unitPrice.Mul(decimal.NewFromInt(quantity))
	platformFee := gross.Mul(f.rate).Round(moneyPlaces)

	return entities.FeeBreakdown{
		Gross:          gross,
		PlatformFee:    platformFee,
		VendorReceives: gross.Sub(platformFee),
	}, nil
}
