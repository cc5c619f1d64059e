package cash

import (
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

const (
	SupplierLowStockThreshold = 5
	DefaultOutageRestock      = 10
)

// DefaultSupplierStock is the coin bank an operator can draw on to refill the machine.
func DefaultSupplierStock() map[money.Amount]int {
	return map[money.Amount]int{
		1: 1000, 2: 500, 5: 500, 10: 300, 20: 200, 50: 150,
		100: 100, 200: 50, 500: 30, 1000: 20, 2000: 10, 5000: 5,
	}
}

// Supplier is an external coin bank. Requests are served best-effort: a request for more
// units than the bank holds returns what is left.
type Supplier struct {
	stock map[money.Amount]int
}

func NewSupplier(stock map[money.Amount]int) *Supplier {
	s := &Supplier{stock: make(map[money.Amount]int, len(stock))}
	for d, n := range stock {
		s.stock[d] = min(max(n, 0), MaxCoinCount)
	}
	return s
}

func (s *Supplier) Available(d money.Amount) int {
	return s.stock[d]
}

// Request withdraws up to n units of d and reports how many were provided.
func (s *Supplier) Request(d money.Amount, n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeCount
	}
	available, ok := s.stock[d]
	if !ok {
		return 0, errs.Markf(errs.ErrInvalidDenomination, "supplier does not stock denomination %d", d)
	}
	provided := min(available, n)
	s.stock[d] = available - provided
	return provided, nil
}

func (s *Supplier) Restock(d money.Amount, n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if !fits(s.stock[d], n) {
		return errs.Wrapf(ErrCoinCapacityExceeded, "supplier holds %d of %d, adding %d", s.stock[d], d, n)
	}
	s.stock[d] += n
	return nil
}

// SimulateOutage empties one denomination.
func (s *Supplier) SimulateOutage(d money.Amount) {
	s.stock[d] = 0
}

func (s *Supplier) RestoreAfterOutage(d money.Amount, n int) {
	if n <= 0 {
		n = DefaultOutageRestock
	}
	s.stock[d] = min(n, MaxCoinCount)
}

type StockReport struct {
	TotalDenominations int
	LowStock           []money.Amount
	OutOfStock         []money.Amount
	TotalValue         money.Amount
}

func (s *Supplier) Report() StockReport {
	report := StockReport{
		TotalDenominations: len(s.stock),
		LowStock:           make([]money.Amount, 0),
		OutOfStock:         make([]money.Amount, 0),
	}
	for _, d := range sortedKeys(s.stock) {
		n := s.stock[d]
		report.TotalValue += d * money.Amount(n)
		switch {
		case n == 0:
			report.OutOfStock = append(report.OutOfStock, d)
		case n < SupplierLowStockThreshold:
			report.LowStock = append(report.LowStock, d)
		}
	}
	return report
}

func (s *Supplier) Inventory() map[money.Amount]int {
	out := make(map[money.Amount]int, len(s.stock))
	for d, n := range s.stock {
		out[d] = n
	}
	return out
}
