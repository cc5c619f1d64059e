// Package money holds the integer minor-unit amount used by every machine component,
// plus the decimal conversions applied at input and display boundaries.
package money

import (
	"strings"

	"vending-machine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in minor units (cents for EUR).
type Amount int64

func (a Amount) Int64() int64 { return int64(a) }

func (a Amount) IsPositive() bool { return a > 0 }

// Major returns the amount in major units of cur.
func (a Amount) Major(cur Currency) decimal.Decimal {
	return decimal.New(int64(a), -cur.Exponent)
}

type Currency struct {
	Code     string
	Name     string
	Symbol   string
	Exponent int32
}

var EUR = Currency{Code: "EUR", Name: "Euro", Symbol: "€", Exponent: 2}

var knownCurrencies = map[string]Currency{
	"EUR": EUR,
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Exponent: 2},
	"GBP": {Code: "GBP", Name: "Pound Sterling", Symbol: "£", Exponent: 2},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Exponent: 2},
	"JPY": {Code: "JPY", Name: "Yen", Symbol: "¥", Exponent: 0},
}

// LookupCurrency returns a known currency by ISO code. Unknown codes get two decimals.
func LookupCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if c, ok := knownCurrencies[code]; ok {
		return c
	}
	return Currency{Code: code, Name: code, Symbol: code, Exponent: 2}
}

// FromMajor rounds a major-unit value half away from zero to the minor unit.
func FromMajor(d decimal.Decimal, cur Currency) Amount {
	return Amount(d.Round(cur.Exponent).Shift(cur.Exponent).IntPart())
}

// ParseMajor parses a decimal string such as "1.50" or "1,50" into minor units.
func ParseMajor(s string, cur Currency) (Amount, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errs.Markf(errs.ErrValidation, "invalid amount %q", s)
	}
	return FromMajor(d, cur), nil
}

// Format renders an amount as "1,50 EUR".
func Format(a Amount, cur Currency) string {
	s := a.Major(cur).StringFixed(cur.Exponent)
	return strings.Replace(s, ".", ",", 1) + " " + cur.Code
}

func Sum(amounts ...Amount) Amount {
	var total Amount
	for _, a := range amounts {
		total += a
	}
	return total
}
