//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/money"

	"github.com/stretchr/testify/require"
)

// MachineFixture exposes the machine together with the components it owns so tests can
// assert on each of them directly.
type MachineFixture struct {
	Machine   *machine.Machine
	Inventory *inventory.Inventory
	Registry  *cash.Registry
	Ledger    *ledger.Ledger
	Supplier  *cash.Supplier
	Clock     *clock.MockClock
}

type MachineBuilder struct {
	Denominations []money.Amount
	Coins         map[money.Amount]int
	Products      []*ProductBuilder
	SupplierStock map[money.Amount]int
	Start         time.Time
	Step          time.Duration
}

func NewMachineBuilder() *MachineBuilder {
	return &MachineBuilder{
		Denominations: cash.DefaultDenominations(),
		Coins:         map[money.Amount]int{},
		Start:         time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		Step:          time.Second,
	}
}

func (b *MachineBuilder) With(mutate func(*MachineBuilder)) *MachineBuilder {
	mutate(b)
	return b
}

func (b *MachineBuilder) WithDenominations(ds ...money.Amount) *MachineBuilder {
	b.Denominations = ds
	return b
}

func (b *MachineBuilder) WithCoins(d money.Amount, count int) *MachineBuilder {
	b.Coins[d] = count
	return b
}

func (b *MachineBuilder) WithProduct(p *ProductBuilder) *MachineBuilder {
	b.Products = append(b.Products, p)
	return b
}

func (b *MachineBuilder) WithSupplier(stock map[money.Amount]int) *MachineBuilder {
	b.SupplierStock = stock
	return b
}

// AsDemo loads the product catalogue and float used by the seeded machine.
func (b *MachineBuilder) AsDemo() *MachineBuilder {
	b.Products = []*ProductBuilder{
		NewProductBuilder().WithCode("A1").WithName("Coca-Cola").WithPrice(150).WithQuantity(10),
		NewProductBuilder().WithCode("A2").WithName("Pepsi").WithPrice(150).WithQuantity(8),
		NewProductBuilder().WithCode("B1").WithName("Chips").WithPrice(120).WithQuantity(15),
		NewProductBuilder().WithCode("B2").WithName("Chocolat").WithPrice(200).WithQuantity(5),
		NewProductBuilder().WithCode("C1").WithName("Eau").WithPrice(100).WithQuantity(20),
	}
	for d, n := range map[money.Amount]int{1: 100, 2: 100, 5: 100, 10: 50, 20: 50, 50: 50, 100: 30, 200: 20, 500: 10, 1000: 5, 2000: 2} {
		b.Coins[d] = n
	}
	return b
}

func (b *MachineBuilder) Build(t *testing.T) *MachineFixture {
	t.Helper()

	registry, err := cash.NewRegistry(b.Denominations)
	require.NoError(t, err)
	for d, n := range b.Coins {
		require.NoError(t, registry.AddCoins(d, n))
	}

	inv := inventory.New()
	for _, pb := range b.Products {
		p, err := pb.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, inv.AddProduct(p, pb.Quantity))
	}

	clk := clock.NewSteppingClock(b.Start, b.Step)
	led := ledger.New(clk)

	var supplier *cash.Supplier
	if b.SupplierStock != nil {
		supplier = cash.NewSupplier(b.SupplierStock)
	}

	return &MachineFixture{
		Machine: machine.New(machine.Components{
			Inventory: inv,
			Registry:  registry,
			Ledger:    led,
			Supplier:  supplier,
			Currency:  money.EUR,
		}),
		Inventory: inv,
		Registry:  registry,
		Ledger:    led,
		Supplier:  supplier,
		Clock:     clk,
	}
}
