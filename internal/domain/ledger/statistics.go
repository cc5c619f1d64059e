package ledger

import (
	"fmt"
	"slices"

	"vending-machine/internal/pkg/money"
)

type ProductSales struct {
	Code     string
	Name     string
	Quantity int
	Revenue  money.Amount
}

type Statistics struct {
	TotalTransactions  int
	SuccessfulSales    int
	TotalRevenue       money.Amount
	TotalProductsSold  int
	Errors             int
	Cancellations      int
	Refunds            int
	Restocks           int
	SuccessRate        string
	TopSellingProducts []ProductSales
}

// TotalRevenue sums the prices of successful purchases.
func (l *Ledger) TotalRevenue() money.Amount {
	var total money.Amount
	for _, e := range l.entries {
		if e.Type == TypePurchase && e.Success {
			total += e.Amount
		}
	}
	return total
}

func (l *Ledger) TotalTransactions() int {
	return len(l.entries)
}

func (l *Ledger) successfulSales() int {
	n := 0
	for _, e := range l.entries {
		if e.Type == TypePurchase && e.Success {
			n++
		}
	}
	return n
}

// SuccessRate is successful sales over all entries, e.g. "66.67%". An empty ledger
// reports "0%".
func (l *Ledger) SuccessRate() string {
	if len(l.entries) == 0 {
		return "0%"
	}
	rate := float64(l.successfulSales()) / float64(len(l.entries)) * 100
	return fmt.Sprintf("%.2f%%", rate)
}

// TopSellingProducts ranks products by units sold; ties keep first-sale order.
func (l *Ledger) TopSellingProducts() []ProductSales {
	index := make(map[string]int)
	sales := make([]ProductSales, 0)
	for _, e := range l.entries {
		if e.Type != TypePurchase || !e.Success {
			continue
		}
		i, ok := index[e.ProductCode]
		if !ok {
			name, _ := e.Details[KeyProductName].(string)
			i = len(sales)
			index[e.ProductCode] = i
			sales = append(sales, ProductSales{Code: e.ProductCode, Name: name})
		}
		sales[i].Quantity++
		sales[i].Revenue += e.Amount
	}
	slices.SortStableFunc(sales, func(a, b ProductSales) int { return b.Quantity - a.Quantity })
	return sales
}

func (l *Ledger) Statistics() Statistics {
	sold := l.successfulSales()
	return Statistics{
		TotalTransactions:  len(l.entries),
		SuccessfulSales:    sold,
		TotalRevenue:       l.TotalRevenue(),
		TotalProductsSold:  sold,
		Errors:             l.count(TypeError),
		Cancellations:      l.count(TypeCancellation),
		Refunds:            l.count(TypeRefund),
		Restocks:           l.count(TypeRestock),
		SuccessRate:        l.SuccessRate(),
		TopSellingProducts: l.TopSellingProducts(),
	}
}

func (l *Ledger) count(t EntryType) int {
	n := 0
	for _, e := range l.entries {
		if e.Type == t {
			n++
		}
	}
	return n
}
