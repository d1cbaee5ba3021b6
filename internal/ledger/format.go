package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// formatAmount formats an amount for messages, e.g. "PHP 5,000.00".
//
// Unknown currency codes are printed as they are.
func formatAmount(code string, amount decimal.Decimal) string {
	value := groupDigits(amount)

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, value)
	}

	return fmt.Sprintf("%s %s", currency.Symbol(unit), value)
}

// groupDigits renders amount with two decimal places and grouped thousands.
// The digits come from the decimal itself, only the grouping is localized.
func groupDigits(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
	}

	whole := amount.Abs().Round(2).Truncate(0).BigInt()
	if !whole.IsInt64() {
		return sign + fixed
	}

	integer = printer.Sprint(number.Decimal(whole.Int64()))
	return fmt.Sprintf("%s%s.%s", sign, integer, fraction)
}
