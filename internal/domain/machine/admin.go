package machine

import (
	"time"

	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

var ErrNoSupplier = errs.New("no coin supplier configured")

// AddProduct registers a product (or adds stock to an existing code) and logs a RESTOCK.
func (m *Machine) AddProduct(p *product.Product, quantity int) error {
	if err := m.inventory.AddProduct(p, quantity); err != nil {
		return err
	}
	m.ledger.RecordRestock(p.Code(), quantity)
	return nil
}

func (m *Machine) RestockProduct(code string, quantity int) error {
	c := product.Code(code)
	if m.inventory.Product(c) == nil {
		return errs.Markf(errs.ErrNotFound, "product %s not found", code)
	}
	if err := m.inventory.AddStock(c, quantity); err != nil {
		return err
	}
	m.ledger.RecordRestock(c, quantity)
	return nil
}

func (m *Machine) AddCash(d money.Amount, count int) error {
	return m.registry.AddCoins(d, count)
}

// RefillFromSupplier moves up to count units of d from the coin supplier into the cash box.
func (m *Machine) RefillFromSupplier(d money.Amount, count int) (int, error) {
	if m.supplier == nil {
		return 0, ErrNoSupplier
	}
	if !m.registry.IsValidDenomination(d) {
		return 0, errs.Markf(errs.ErrInvalidDenomination, "denomination %s is not accepted", money.Format(d, m.currency))
	}
	provided, err := m.supplier.Request(d, count)
	if err != nil {
		return 0, err
	}
	if err := m.registry.AddCoins(d, provided); err != nil {
		_ = m.supplier.Restock(d, provided)
		return 0, err
	}
	m.ledger.RecordCashRestock(d, count, provided)
	return provided, nil
}

func (m *Machine) Product(code string) *product.Product {
	return m.inventory.Product(product.Code(code))
}

func (m *Machine) Products() []inventory.Item {
	return m.inventory.Items()
}

func (m *Machine) OutOfStockProducts() []inventory.Item {
	return m.inventory.OutOfStock()
}

func (m *Machine) LowStockProducts(threshold int) []inventory.Item {
	return m.inventory.LowStock(threshold)
}

func (m *Machine) LowDenominations(threshold int) []money.Amount {
	return m.registry.LowDenominations(threshold)
}

func (m *Machine) EmptyDenominations() []money.Amount {
	return m.registry.EmptyDenominations()
}

func (m *Machine) AcceptedDenominations() []money.Amount {
	return m.registry.Accepted()
}

// SupplierReport returns false when no supplier is configured.
func (m *Machine) SupplierReport() (SupplierStock, bool) {
	if m.supplier == nil {
		return SupplierStock{}, false
	}
	return SupplierStock{Report: m.supplier.Report(), Inventory: m.supplier.Inventory()}, true
}

func (m *Machine) Transactions() []ledger.Entry {
	return m.ledger.All()
}

func (m *Machine) TransactionsByType(t ledger.EntryType) []ledger.Entry {
	return m.ledger.ByType(t)
}

func (m *Machine) TransactionsInRange(start, end time.Time) []ledger.Entry {
	return m.ledger.InRange(start, end)
}

func (m *Machine) ClearTransactions() {
	m.ledger.Clear()
}

func (m *Machine) Statistics() ledger.Statistics {
	return m.ledger.Statistics()
}
