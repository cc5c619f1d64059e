package cash

import (
	"slices"

	"vending-machine/internal/pkg/money"
)

type CoinCount struct {
	Denomination money.Amount
	Count        int
}

// Breakdown groups a change list by denomination, largest first.
func Breakdown(coins []money.Amount) []CoinCount {
	counts := tally(coins)
	out := make([]CoinCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, CoinCount{Denomination: d, Count: n})
	}
	slices.SortFunc(out, func(a, b CoinCount) int { return int(b.Denomination - a.Denomination) })
	return out
}

func sortedKeys(m map[money.Amount]int) []money.Amount {
	keys := make([]money.Amount, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
