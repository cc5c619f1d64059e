package machine

import (
	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

type State string

const (
	StateIdle   State = "IDLE"
	StateFunded State = "FUNDED"
)

// Operation names recorded as the context of ERROR ledger entries.
const (
	OpSelect   = "select"
	OpPurchase = "purchase"
	OpCancel   = "cancel"
	OpReturn   = "return_change"
)

// Machine coordinates one inventory, one cash registry and one ledger. Every operation
// either succeeds completely or leaves all three untouched (apart from ERROR entries).
// A Machine is not safe for concurrent use.
type Machine struct {
	inventory *inventory.Inventory
	registry  *cash.Registry
	ledger    *ledger.Ledger
	supplier  *cash.Supplier
	currency  money.Currency

	inserted money.Amount
	selected product.Code
}

type Components struct {
	Inventory *inventory.Inventory
	Registry  *cash.Registry
	Ledger    *ledger.Ledger
	// Supplier is optional; without it RefillFromSupplier fails.
	Supplier *cash.Supplier
	Currency money.Currency
}

func New(c Components) *Machine {
	cur := c.Currency
	if cur.Code == "" {
		cur = money.EUR
	}
	return &Machine{
		inventory: c.Inventory,
		registry:  c.Registry,
		ledger:    c.Ledger,
		supplier:  c.Supplier,
		currency:  cur,
	}
}

type PurchaseResult struct {
	Product      *product.Product
	AmountPaid   money.Amount
	Change       []money.Amount
	ChangeAmount money.Amount
}

func (m *Machine) Currency() money.Currency { return m.currency }

func (m *Machine) InsertedMoney() money.Amount { return m.inserted }

func (m *Machine) State() State {
	if m.inserted > 0 {
		return StateFunded
	}
	return StateIdle
}

// InsertMoney accepts one coin or note. The coin goes straight into the cash box.
func (m *Machine) InsertMoney(amount money.Amount) (money.Amount, error) {
	if !m.registry.IsValidDenomination(amount) {
		return m.inserted, errs.Markf(errs.ErrInvalidDenomination, "denomination %s is not accepted", money.Format(amount, m.currency))
	}
	if err := m.registry.AddCoins(amount, 1); err != nil {
		return m.inserted, err
	}
	m.inserted += amount
	return m.inserted, nil
}

func (m *Machine) SelectProduct(code string) (*product.Product, error) {
	p, err := m.lookupAvailable(code)
	if err != nil {
		m.ledger.RecordError(OpSelect, code, m.inserted, err)
		return nil, err
	}
	m.selected = p.Code()
	return p, nil
}

func (m *Machine) lookupAvailable(code string) (*product.Product, error) {
	c := product.Code(code)
	p := m.inventory.Product(c)
	if p == nil {
		return nil, errs.Markf(errs.ErrNotFound, "product %s not found", code)
	}
	if !m.inventory.IsAvailable(c) {
		return nil, errs.Markf(errs.ErrOutOfStock, "product %s is out of stock", code)
	}
	return p, nil
}

// Purchase buys the selected product, selecting code first when it is not empty.
// On a declined purchase the inserted money and selection are kept so the buyer can
// add funds or cancel.
func (m *Machine) Purchase(code string) (*PurchaseResult, error) {
	if code != "" {
		if _, err := m.SelectProduct(code); err != nil {
			return nil, err
		}
	}

	res, err := m.purchaseSelected()
	if err != nil {
		m.ledger.RecordError(OpPurchase, m.selected.String(), m.inserted, err)
		return nil, err
	}
	return res, nil
}

func (m *Machine) purchaseSelected() (*PurchaseResult, error) {
	if m.selected == "" {
		return nil, ErrNoSelection
	}

	p, err := m.lookupAvailable(m.selected.String())
	if err != nil {
		return nil, err
	}

	if m.inserted < p.Price() {
		return nil, &InsufficientFundsError{Price: p.Price(), Inserted: m.inserted, Missing: p.Price() - m.inserted}
	}

	changeAmount := m.inserted - p.Price()
	if _, err := m.registry.CalculateChange(changeAmount); err != nil {
		return nil, err
	}

	if err := m.inventory.RemoveStock(p.Code(), 1); err != nil {
		return nil, err
	}
	change, err := m.registry.MakeChange(changeAmount)
	if err != nil {
		// Put the unit back so inventory and cash box stay consistent.
		_ = m.inventory.AddStock(p.Code(), 1)
		return nil, err
	}

	m.ledger.RecordPurchase(p, m.inserted, change)
	res := &PurchaseResult{
		Product:      p,
		AmountPaid:   m.inserted,
		Change:       change,
		ChangeAmount: changeAmount,
	}
	m.reset()
	return res, nil
}

// CancelTransaction refunds everything inserted. Failing to return money the machine
// physically holds is a hard error and is logged.
func (m *Machine) CancelTransaction() ([]money.Amount, error) {
	if m.inserted == 0 {
		return nil, ErrNothingToCancel
	}

	refund, err := m.registry.MakeChange(m.inserted)
	if err != nil {
		m.ledger.RecordError(OpCancel, m.selected.String(), m.inserted, err)
		return nil, err
	}

	m.ledger.RecordCancellation(m.inserted, refund)
	m.reset()
	return refund, nil
}

// ReturnChange is CancelTransaction without the empty-machine error; it logs a REFUND.
func (m *Machine) ReturnChange() ([]money.Amount, error) {
	if m.inserted == 0 {
		return []money.Amount{}, nil
	}

	coins, err := m.registry.MakeChange(m.inserted)
	if err != nil {
		m.ledger.RecordError(OpReturn, m.selected.String(), m.inserted, err)
		return nil, err
	}

	m.ledger.RecordRefund(coins)
	m.reset()
	return coins, nil
}

func (m *Machine) reset() {
	m.inserted = 0
	m.selected = ""
}
