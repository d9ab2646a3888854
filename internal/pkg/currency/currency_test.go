package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	usd := NewFormatter("usd")
	assert.Equal(t, "USD", usd.Code())
	assert.Equal(t, "$1,234.50", usd.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.01", usd.Format(decimal.RequireFromString("0.005")))

	php := NewFormatter("PHP")
	assert.Contains(t, php.Format(decimal.RequireFromString("91250")), "91,250.00")
}

func TestNewFormatter_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, Default, NewFormatter("ZZZ").Code())
	assert.Equal(t, Default, NewFormatter("").Code())
}

func TestMoney_MinorUnits(t *testing.T) {
	m := NewFormatter("PHP").Money(decimal.RequireFromString("27500.25"))
	assert.Equal(t, int64(2750025), m.Amount())
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "PHP 27,500.25", NewFormatter("PHP").Plain(decimal.RequireFromString("27500.25")))
	assert.Equal(t, "USD 0.00", NewFormatter("USD").Plain(decimal.Zero))
}
