package machine

import (
	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

type Status struct {
	State           State
	InsertedMoney   money.Amount
	SelectedProduct *product.Product
	Inventory       []inventory.Item
	Denominations   map[money.Amount]int
	TotalCashValue  money.Amount
}

type SupplierStock struct {
	Report    cash.StockReport
	Inventory map[money.Amount]int
}

func (m *Machine) Status() Status {
	var selected *product.Product
	if m.selected != "" {
		selected = m.inventory.Product(m.selected)
	}
	return Status{
		State:           m.State(),
		InsertedMoney:   m.inserted,
		SelectedProduct: selected,
		Inventory:       m.inventory.Items(),
		Denominations:   m.registry.Inventory(),
		TotalCashValue:  m.registry.TotalValue(),
	}
}

type Feasibility struct {
	CanPurchase bool
	Reason      string
	// Cause is the taxonomy error behind a negative answer.
	Cause error
}

// CanCompletePurchase checks, without side effects, whether code could be bought with
// amountInserted right now.
func (m *Machine) CanCompletePurchase(code string, amountInserted money.Amount) Feasibility {
	c := product.Code(code)
	p := m.inventory.Product(c)
	if p == nil {
		return Feasibility{Reason: "product not found", Cause: errs.ErrNotFound}
	}
	if !m.inventory.IsAvailable(c) {
		return Feasibility{Reason: "product out of stock", Cause: errs.ErrOutOfStock}
	}
	if amountInserted < p.Price() {
		return Feasibility{
			Reason: "insufficient amount, missing " + money.Format(p.Price()-amountInserted, m.currency),
			Cause:  errs.ErrInsufficientFunds,
		}
	}
	if change := amountInserted - p.Price(); change > 0 && !m.registry.CanMakeChange(change) {
		return Feasibility{Reason: "cannot make exact change", Cause: errs.ErrExactChangeImpossible}
	}
	return Feasibility{CanPurchase: true, Reason: "purchase possible"}
}
