package inventory

import (
	"sort"

	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
)

var (
	ErrNegativeQuantity      = errs.Mark(errs.New("quantity cannot be negative"), errs.ErrValidation)
	ErrStockCapacityExceeded = errs.Mark(errs.New("stock capacity exceeded"), errs.ErrValidation)
)

// MaxStock caps the units held for a single product.
const MaxStock = 1_000_000

func checkCapacity(code product.Code, held, quantity int) error {
	if quantity > MaxStock-held {
		return errs.Wrapf(ErrStockCapacityExceeded, "product %s holds %d, adding %d", code, held, quantity)
	}
	return nil
}

// Item is a read-only view of one inventory entry.
type Item struct {
	Product *product.Product
	Stock   int
}

type entry struct {
	product *product.Product
	stock   int
	seq     int
}

// Inventory maps product codes to products and their stock. Stock never goes negative
// and entries are never removed; sold-out products stay listed with stock 0.
type Inventory struct {
	entries map[product.Code]*entry
	nextSeq int
}

func New() *Inventory {
	return &Inventory{entries: make(map[product.Code]*entry)}
}

// AddProduct registers p with quantity units. Re-adding a known code adds to its stock
// and keeps the metadata of the first registration.
func (inv *Inventory) AddProduct(p *product.Product, quantity int) error {
	if p == nil {
		return errs.Markf(errs.ErrValidation, "product is required")
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	if e, ok := inv.entries[p.Code()]; ok {
		if err := checkCapacity(p.Code(), e.stock, quantity); err != nil {
			return err
		}
		e.stock += quantity
		return nil
	}
	if err := checkCapacity(p.Code(), 0, quantity); err != nil {
		return err
	}

	inv.entries[p.Code()] = &entry{product: p, stock: quantity, seq: inv.nextSeq}
	inv.nextSeq++
	return nil
}

// AddStock increases the stock of an existing product.
func (inv *Inventory) AddStock(code product.Code, quantity int) error {
	e, ok := inv.entries[code]
	if !ok {
		return errs.Markf(errs.ErrNotFound, "product %s not found in inventory", code)
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if err := checkCapacity(code, e.stock, quantity); err != nil {
		return err
	}
	e.stock += quantity
	return nil
}

func (inv *Inventory) RemoveStock(code product.Code, quantity int) error {
	e, ok := inv.entries[code]
	if !ok {
		return errs.Markf(errs.ErrNotFound, "product %s not found in inventory", code)
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity > e.stock {
		return errs.Markf(errs.ErrInsufficientStock, "insufficient stock for %s: requested %d, available %d", code, quantity, e.stock)
	}
	e.stock -= quantity
	return nil
}

// Product returns nil for unknown codes.
func (inv *Inventory) Product(code product.Code) *product.Product {
	if e, ok := inv.entries[code]; ok {
		return e.product
	}
	return nil
}

// Stock returns 0 for unknown codes.
func (inv *Inventory) Stock(code product.Code) int {
	if e, ok := inv.entries[code]; ok {
		return e.stock
	}
	return 0
}

func (inv *Inventory) IsAvailable(code product.Code) bool {
	return inv.Stock(code) > 0
}

// All returns a snapshot keyed by product code.
func (inv *Inventory) All() map[product.Code]Item {
	out := make(map[product.Code]Item, len(inv.entries))
	for code, e := range inv.entries {
		out[code] = Item{Product: e.product, Stock: e.stock}
	}
	return out
}

// Items returns every entry in registration order.
func (inv *Inventory) Items() []Item {
	return inv.filter(func(*entry) bool { return true })
}

func (inv *Inventory) Available() []Item {
	return inv.filter(func(e *entry) bool { return e.stock > 0 })
}

func (inv *Inventory) OutOfStock() []Item {
	return inv.filter(func(e *entry) bool { return e.stock == 0 })
}

// LowStock lists products that are still available but at or below threshold.
func (inv *Inventory) LowStock(threshold int) []Item {
	return inv.filter(func(e *entry) bool { return e.stock > 0 && e.stock <= threshold })
}

func (inv *Inventory) ProductCount() int {
	return len(inv.entries)
}

func (inv *Inventory) TotalStock() int {
	total := 0
	for _, e := range inv.entries {
		total += e.stock
	}
	return total
}

func (inv *Inventory) filter(keep func(*entry) bool) []Item {
	selected := make([]*entry, 0, len(inv.entries))
	for _, e := range inv.entries {
		if keep(e) {
			selected = append(selected, e)
		}
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].seq < selected[j].seq })

	items := make([]Item, len(selected))
	for i, e := range selected {
		items[i] = Item{Product: e.product, Stock: e.stock}
	}
	return items
}
