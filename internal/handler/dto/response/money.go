package response

import (
	"vending-machine/internal/domain/cash"
	"vending-machine/internal/pkg/money"
)

// Money carries the exact minor-unit amount together with its display form ("1,50 EUR").
type Money struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func NewMoney(a money.Amount, cur money.Currency) Money {
	return Money{Amount: a.Int64(), Currency: cur.Code, Formatted: money.Format(a, cur)}
}

func NewMoneyList(as []money.Amount, cur money.Currency) []Money {
	out := make([]Money, len(as))
	for i, a := range as {
		out[i] = NewMoney(a, cur)
	}
	return out
}

type CoinCount struct {
	Value Money `json:"value"`
	Count int   `json:"count"`
}

func NewBreakdown(counts []cash.CoinCount, cur money.Currency) []CoinCount {
	out := make([]CoinCount, len(counts))
	for i, c := range counts {
		out[i] = CoinCount{Value: NewMoney(c.Denomination, cur), Count: c.Count}
	}
	return out
}
