package commands

import (
	"vending-machine/internal/domain/cash"
	"vending-machine/internal/pkg/money"
)

type InsertResult struct {
	Accepted      money.Amount
	InsertedMoney money.Amount
	Currency      money.Currency
}

type SelectionResult struct {
	Code          string
	Name          string
	Price         money.Amount
	InsertedMoney money.Amount
	Currency      money.Currency
}

type PurchaseResult struct {
	ProductCode  string
	ProductName  string
	Price        money.Amount
	AmountPaid   money.Amount
	ChangeAmount money.Amount
	Change       []money.Amount
	Breakdown    []cash.CoinCount
	Currency     money.Currency
}

// RefundResult describes money handed back on cancel or return-change.
type RefundResult struct {
	Amount    money.Amount
	Coins     []money.Amount
	Breakdown []cash.CoinCount
	Currency  money.Currency
}

type RefillResult struct {
	Denomination money.Amount
	Requested    int
	Provided     int
	Currency     money.Currency
}
