package components

import (
	"log/slog"

	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/inventory"
	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/machine"
	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/config"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/usecase/shared"

	"go.uber.org/fx"
)

// MachineModule owns the single in-memory machine of the process and its unit of work.
var MachineModule = fx.Module("machine",
	fx.Provide(
		clock.NewRealClock,
		NewCashRegistry,
		inventory.New,
		ledger.New,
		NewCoinSupplier,
		NewCurrencyConverter,
		NewMachine,
		shared.NewUnitOfWork,
	),
)

func NewCashRegistry(cfg config.Config) (*cash.Registry, error) {
	denominations := make([]money.Amount, len(cfg.Machine.Denominations))
	for i, d := range cfg.Machine.Denominations {
		denominations[i] = money.Amount(d)
	}
	registry, err := cash.NewRegistry(denominations)
	if err != nil {
		return nil, errs.Wrap(err, "invalid MACHINE_DENOMINATIONS")
	}
	return registry, nil
}

// NewCoinSupplier returns nil when the supplier is disabled; refills then fail with ErrNoSupplier.
func NewCoinSupplier(cfg config.Config) *cash.Supplier {
	if !cfg.Machine.SupplierEnabled {
		return nil
	}
	return cash.NewSupplier(cash.DefaultSupplierStock())
}

func NewCurrencyConverter(cfg config.Config) (*money.Converter, error) {
	conv, err := money.NewConverter(money.LookupCurrency(cfg.Machine.Currency), cfg.Display.Rates)
	if err != nil {
		return nil, errs.Wrap(err, "invalid DISPLAY_RATES")
	}
	return conv, nil
}

type machineParams struct {
	fx.In

	Config    config.Config
	Logger    *slog.Logger
	Inventory *inventory.Inventory
	Registry  *cash.Registry
	Ledger    *ledger.Ledger
	Supplier  *cash.Supplier
}

func NewMachine(p machineParams) (*machine.Machine, error) {
	m := machine.New(machine.Components{
		Inventory: p.Inventory,
		Registry:  p.Registry,
		Ledger:    p.Ledger,
		Supplier:  p.Supplier,
		Currency:  money.LookupCurrency(p.Config.Machine.Currency),
	})
	if p.Config.Machine.SeedDemo {
		if err := m.SeedDemo(); err != nil {
			return nil, err
		}
		p.Logger.Info("demo catalogue loaded",
			"products", len(m.Products()),
			"cash_value", money.Format(m.Status().TotalCashValue, m.Currency()))
	}
	return m, nil
}
