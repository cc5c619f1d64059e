package money

import (
	"sort"
	"strings"

	"vending-machine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errs.New("unknown display currency")

// Converter turns stored amounts into other currencies for display only.
// Rates are expressed as units of the target currency per one unit of the base currency.
type Converter struct {
	base  Currency
	rates map[string]decimal.Decimal
}

func NewConverter(base Currency, rates map[string]string) (*Converter, error) {
	parsed := make(map[string]decimal.Decimal, len(rates)+1)
	parsed[base.Code] = decimal.NewFromInt(1)
	for code, raw := range rates {
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil || !rate.IsPositive() {
			return nil, errs.Markf(errs.ErrValidation, "invalid exchange rate %q for %s", raw, code)
		}
		parsed[strings.ToUpper(code)] = rate
	}
	return &Converter{base: base, rates: parsed}, nil
}

func (c *Converter) Base() Currency { return c.base }

// Codes lists the supported display currencies, sorted.
func (c *Converter) Codes() []string {
	codes := make([]string, 0, len(c.rates))
	for code := range c.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Convert expresses a base-currency amount in the target currency's minor units.
func (c *Converter) Convert(a Amount, code string) (Amount, Currency, error) {
	target := LookupCurrency(code)
	rate, ok := c.rates[target.Code]
	if !ok {
		return 0, Currency{}, errs.Wrap(ErrUnknownCurrency, target.Code)
	}
	return FromMajor(a.Major(c.base).Mul(rate), target), target, nil
}
