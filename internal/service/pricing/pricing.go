package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Surcharge rates applied at settlement time.
var (
	TaxRate        = decimal.NewFromFloat(0.19)
	CommissionRate = decimal.NewFromFloat(0.10)
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// Tax returns the tax portion for the given amount.
func Tax(amount int64) (decimal.Decimal, error) {
	if amount < 0 {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return decimal.NewFromInt(amount).Mul(TaxRate), nil
}

// Commission returns the marketplace commission for the given amount.
func Commission(amount int64) (decimal.Decimal, error) {
	if amount < 0 {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return decimal.NewFromInt(amount).Mul(CommissionRate), nil
}

// Total returns amount plus tax and commission.
func Total(amount int64) (decimal.Decimal, error) {
	if amount < 0 {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	base := decimal.NewFromInt(amount)
	return base.Add(base.Mul(TaxRate)).Add(base.Mul(CommissionRate)), nil
}
