package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places amounts are rounded to.
const MoneyPlaces = 2

// Money rounds an amount half away from zero to cents.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Percent returns part / whole * 100 rounded to two places, or zero when whole
// is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	return part.Mul(decimal.NewFromInt(100)).DivRound(whole, MoneyPlaces+4).Round(MoneyPlaces)
}
