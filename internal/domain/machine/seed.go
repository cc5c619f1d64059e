package machine

import (
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

type seedProduct struct {
	code     string
	name     string
	price    money.Amount
	quantity int
}

var demoProducts = []seedProduct{
	{code: "A1", name: "Coca-Cola", price: 150, quantity: 10},
	{code: "A2", name: "Pepsi", price: 150, quantity: 8},
	{code: "B1", name: "Chips", price: 120, quantity: 15},
	{code: "B2", name: "Chocolat", price: 200, quantity: 5},
	{code: "C1", name: "Eau", price: 100, quantity: 20},
}

var demoFloat = map[money.Amount]int{
	1: 100, 2: 100, 5: 100, 10: 50, 20: 50, 50: 50,
	100: 30, 200: 20, 500: 10, 1000: 5, 2000: 2,
}

// SeedDemo stocks the demo catalogue and the initial coin float. Float denominations the
// registry does not accept are skipped.
func (m *Machine) SeedDemo() error {
	for _, sp := range demoProducts {
		p, err := product.NewProduct(sp.code, sp.name, sp.price)
		if err != nil {
			return errs.Wrap(err, "seed product "+sp.code)
		}
		if err := m.inventory.AddProduct(p, sp.quantity); err != nil {
			return errs.Wrap(err, "seed product "+sp.code)
		}
	}
	for d, n := range demoFloat {
		if !m.registry.IsValidDenomination(d) {
			continue
		}
		if err := m.registry.AddCoins(d, n); err != nil {
			return errs.Wrap(err, "seed cash float")
		}
	}
	return nil
}
