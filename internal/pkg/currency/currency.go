// Package currency renders decimal amounts for display in a company currency.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const Default = "PHP"

// Formatter formats amounts in one ISO 4217 currency.
type Formatter struct {
	currency *money.Currency
}

// NewFormatter returns a formatter for code, falling back to Default when
// the code is unknown.
func NewFormatter(code string) Formatter {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		c = money.GetCurrency(Default)
	}
	return Formatter{currency: c}
}

func (f Formatter) Code() string {
	return f.currency.Code
}

// Money converts amount to minor units, rounding half away from zero.
func (f Formatter) Money(amount decimal.Decimal) *money.Money {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, f.currency.Code)
}

// Format renders amount with the currency's symbol and separators.
func (f Formatter) Format(amount decimal.Decimal) string {
	return f.Money(amount).Display()
}

// Plain renders amount with the currency code instead of its symbol, for
// outputs limited to Latin-1 such as PDF core fonts.
func (f Formatter) Plain(amount decimal.Decimal) string {
	c := f.currency
	return money.NewFormatter(c.Fraction, c.Decimal, c.Thousand, c.Code, "$ 1").Format(f.Money(amount).Amount())
}
