package bill

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₹"

// FormatMoney renders amount with the currency symbol and exactly two
// decimal places, e.g. "₹50.00".
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
