//go:build unit

package machine_test

import (
	"testing"

	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/machine"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colaMachine() *builder.MachineBuilder {
	return builder.NewMachineBuilder().WithProduct(builder.NewProductBuilder())
}

func TestMachine_InsertMoney(t *testing.T) {
	t.Run("accepted denomination funds the machine and goes to the cash box", func(t *testing.T) {
		f := colaMachine().Build(t)
		assert.Equal(t, machine.StateIdle, f.Machine.State())

		total, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		assert.EqualValues(t, 100, total)

		total, err = f.Machine.InsertMoney(50)
		require.NoError(t, err)
		assert.EqualValues(t, 150, total)

		assert.Equal(t, machine.StateFunded, f.Machine.State())
		assert.Equal(t, 1, f.Registry.Count(100))
		assert.Equal(t, 1, f.Registry.Count(50))
	})

	t.Run("unknown denomination is rejected without side effects", func(t *testing.T) {
		f := colaMachine().Build(t)

		total, err := f.Machine.InsertMoney(75)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidDenomination))
		assert.EqualValues(t, 0, total)
		assert.EqualValues(t, 0, f.Registry.TotalValue())
		assert.Equal(t, machine.StateIdle, f.Machine.State())
	})

	t.Run("full cash box refuses the coin and keeps the funds", func(t *testing.T) {
		f := colaMachine().WithCoins(100, cash.MaxCoinCount).Build(t)
		_, err := f.Machine.InsertMoney(50)
		require.NoError(t, err)

		total, err := f.Machine.InsertMoney(100)
		require.ErrorIs(t, err, cash.ErrCoinCapacityExceeded)
		assert.EqualValues(t, 50, total)
		assert.EqualValues(t, 50, f.Machine.InsertedMoney())
		assert.Equal(t, cash.MaxCoinCount, f.Registry.Count(100))
	})
}

func TestMachine_SelectProduct(t *testing.T) {
	t.Run("unknown product logs an error entry", func(t *testing.T) {
		f := builder.NewMachineBuilder().Build(t)

		p, err := f.Machine.SelectProduct("Z9")
		require.Error(t, err)
		assert.Nil(t, p)
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		entries := f.Ledger.ByType(ledger.TypeError)
		require.Len(t, entries, 1)
		assert.Equal(t, "Z9", entries[0].ProductCode)
		assert.Equal(t, machine.OpSelect, entries[0].Details[ledger.KeyContext])
	})

	t.Run("out of stock product", func(t *testing.T) {
		f := builder.NewMachineBuilder().WithProduct(builder.NewProductBuilder().WithQuantity(0)).Build(t)

		_, err := f.Machine.SelectProduct("A1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrOutOfStock))
		assert.Len(t, f.Ledger.ByType(ledger.TypeError), 1)
		assert.Nil(t, f.Machine.Status().SelectedProduct)
	})

	t.Run("selection does not change funding state", func(t *testing.T) {
		f := colaMachine().Build(t)

		p, err := f.Machine.SelectProduct("A1")
		require.NoError(t, err)
		assert.Equal(t, "Coca-Cola", p.Name())
		assert.Equal(t, machine.StateIdle, f.Machine.State())
		assert.Equal(t, p, f.Machine.Status().SelectedProduct)
	})
}

func TestMachine_Purchase(t *testing.T) {
	t.Run("successful purchase with change", func(t *testing.T) {
		f := colaMachine().WithCoins(50, 1).Build(t)

		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.SelectProduct("A1")
		require.NoError(t, err)

		res, err := f.Machine.Purchase("")
		require.NoError(t, err)
		assert.Equal(t, "A1", res.Product.Code().String())
		assert.EqualValues(t, 200, res.AmountPaid)
		assert.EqualValues(t, 50, res.ChangeAmount)
		assert.Equal(t, []money.Amount{50}, res.Change)

		assert.Equal(t, 9, f.Inventory.Stock("A1"))
		assert.EqualValues(t, 0, f.Machine.InsertedMoney())
		assert.Equal(t, machine.StateIdle, f.Machine.State())
		assert.Nil(t, f.Machine.Status().SelectedProduct)
		assert.Equal(t, 0, f.Registry.Count(50))
		assert.Equal(t, 2, f.Registry.Count(100))

		purchases := f.Ledger.ByType(ledger.TypePurchase)
		require.Len(t, purchases, 1)
		assert.EqualValues(t, 150, purchases[0].Amount)
	})

	t.Run("exact amount needs no change", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.InsertMoney(50)
		require.NoError(t, err)

		res, err := f.Machine.Purchase("A1")
		require.NoError(t, err)
		assert.Empty(t, res.Change)
		assert.EqualValues(t, 0, res.ChangeAmount)
	})

	t.Run("code argument selects first", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(200)
		require.NoError(t, err)

		_, err = f.Machine.Purchase("Z9")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Len(t, f.Ledger.ByType(ledger.TypeError), 1)
		assert.EqualValues(t, 200, f.Machine.InsertedMoney())
	})

	t.Run("nothing selected", func(t *testing.T) {
		f := colaMachine().Build(t)

		_, err := f.Machine.Purchase("")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNoSelection))
		assert.Len(t, f.Ledger.ByType(ledger.TypeError), 1)
	})

	t.Run("insufficient funds reports the shortfall", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)

		_, err = f.Machine.Purchase("A1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))

		var funds *machine.InsufficientFundsError
		require.ErrorAs(t, err, &funds)
		assert.EqualValues(t, 50, funds.Missing)

		assert.Equal(t, 10, f.Inventory.Stock("A1"))
		assert.EqualValues(t, 100, f.Machine.InsertedMoney())
		assert.NotNil(t, f.Machine.Status().SelectedProduct)
		assert.Len(t, f.Ledger.ByType(ledger.TypeError), 1)
	})

	t.Run("exact change impossible keeps money, selection and stock", func(t *testing.T) {
		f := colaMachine().
			WithCoins(500, 3).
			Build(t)
		_, err := f.Machine.InsertMoney(200)
		require.NoError(t, err)
		before := f.Registry.Inventory()

		_, err = f.Machine.Purchase("A1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrExactChangeImpossible))

		assert.EqualValues(t, 200, f.Machine.InsertedMoney())
		assert.Equal(t, 10, f.Inventory.Stock("A1"))
		assert.NotNil(t, f.Machine.Status().SelectedProduct)
		if diff := cmp.Diff(before, f.Registry.Inventory()); diff != "" {
			t.Fatalf("registry changed (-before +after):\n%s", diff)
		}

		errorsLogged := f.Ledger.ByType(ledger.TypeError)
		require.Len(t, errorsLogged, 1)
		assert.Equal(t, machine.OpPurchase, errorsLogged[0].Details[ledger.KeyContext])
		assert.Empty(t, f.Ledger.ByType(ledger.TypePurchase))
	})

	t.Run("caller can add funds after a declined purchase", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.Purchase("A1")
		require.Error(t, err)

		_, err = f.Machine.InsertMoney(50)
		require.NoError(t, err)
		res, err := f.Machine.Purchase("")
		require.NoError(t, err)
		assert.EqualValues(t, 150, res.AmountPaid)
	})

	t.Run("last unit sells out the product", func(t *testing.T) {
		f := builder.NewMachineBuilder().WithProduct(builder.NewProductBuilder().WithQuantity(1)).Build(t)
		_, err := f.Machine.InsertMoney(200)
		require.NoError(t, err)
		_, err = f.Machine.InsertMoney(200)
		require.NoError(t, err)
		require.NoError(t, f.Registry.AddCoins(50, 2))

		_, err = f.Machine.Purchase("A1")
		require.NoError(t, err)
		assert.Equal(t, 0, f.Inventory.Stock("A1"))

		_, err = f.Machine.SelectProduct("A1")
		assert.True(t, errs.Is(err, errs.ErrOutOfStock))
	})
}

func TestMachine_CancelTransaction(t *testing.T) {
	t.Run("refunds the inserted amount", func(t *testing.T) {
		f := colaMachine().WithCoins(100, 2).WithCoins(50, 4).Build(t)
		_, err := f.Machine.InsertMoney(200)
		require.NoError(t, err)
		valueBefore := f.Registry.TotalValue()

		refund, err := f.Machine.CancelTransaction()
		require.NoError(t, err)
		assert.EqualValues(t, 200, money.Sum(refund...))
		assert.Equal(t, valueBefore-200, f.Registry.TotalValue())
		assert.EqualValues(t, 0, f.Machine.InsertedMoney())

		cancellations := f.Ledger.ByType(ledger.TypeCancellation)
		require.Len(t, cancellations, 1)
		assert.EqualValues(t, 200, cancellations[0].Amount)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		f := colaMachine().Build(t)

		refund, err := f.Machine.CancelTransaction()
		require.Error(t, err)
		assert.Nil(t, refund)
		assert.True(t, errs.Is(err, errs.ErrNothingToCancel))
		assert.Empty(t, f.Ledger.All())
	})

	t.Run("clears the selection", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.SelectProduct("A1")
		require.NoError(t, err)

		_, err = f.Machine.CancelTransaction()
		require.NoError(t, err)
		assert.Nil(t, f.Machine.Status().SelectedProduct)
	})
}

func TestMachine_ReturnChange(t *testing.T) {
	t.Run("empty machine returns nothing without error", func(t *testing.T) {
		f := colaMachine().Build(t)

		coins, err := f.Machine.ReturnChange()
		require.NoError(t, err)
		assert.Empty(t, coins)
		assert.Empty(t, f.Ledger.All())
	})

	t.Run("returns inserted money as a refund", func(t *testing.T) {
		f := colaMachine().Build(t)
		_, err := f.Machine.InsertMoney(100)
		require.NoError(t, err)
		_, err = f.Machine.InsertMoney(20)
		require.NoError(t, err)

		coins, err := f.Machine.ReturnChange()
		require.NoError(t, err)
		assert.Equal(t, []money.Amount{100, 20}, coins)
		assert.Len(t, f.Ledger.ByType(ledger.TypeRefund), 1)
		assert.Empty(t, f.Ledger.ByType(ledger.TypeCancellation))
		assert.EqualValues(t, 0, f.Registry.TotalValue())
	})
}

func TestMachine_Admin(t *testing.T) {
	t.Run("restock known product", func(t *testing.T) {
		f := colaMachine().Build(t)

		require.NoError(t, f.Machine.RestockProduct("A1", 5))
		assert.Equal(t, 15, f.Inventory.Stock("A1"))

		restocks := f.Ledger.ByType(ledger.TypeRestock)
		require.Len(t, restocks, 1)
		assert.Equal(t, "A1", restocks[0].ProductCode)
	})

	t.Run("restock unknown product", func(t *testing.T) {
		f := colaMachine().Build(t)

		err := f.Machine.RestockProduct("Z9", 5)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Empty(t, f.Ledger.All())
	})

	t.Run("add product", func(t *testing.T) {
		f := builder.NewMachineBuilder().Build(t)
		p, err := builder.NewProductBuilder().WithCode("D4").BuildDomain()
		require.NoError(t, err)

		require.NoError(t, f.Machine.AddProduct(p, 3))
		assert.Equal(t, 3, f.Inventory.Stock("D4"))
		assert.Len(t, f.Ledger.ByType(ledger.TypeRestock), 1)
	})

	t.Run("add cash", func(t *testing.T) {
		f := colaMachine().Build(t)

		require.NoError(t, f.Machine.AddCash(200, 5))
		assert.Equal(t, 5, f.Registry.Count(200))

		err := f.Machine.AddCash(300, 1)
		assert.True(t, errs.Is(err, errs.ErrInvalidDenomination))
	})

	t.Run("refill from supplier", func(t *testing.T) {
		f := colaMachine().WithSupplier(map[money.Amount]int{50: 3}).Build(t)

		provided, err := f.Machine.RefillFromSupplier(50, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, provided)
		assert.Equal(t, 3, f.Registry.Count(50))
		assert.Equal(t, 0, f.Supplier.Available(50))

		restocks := f.Ledger.ByType(ledger.TypeRestock)
		require.Len(t, restocks, 1)
		assert.Equal(t, "cash", restocks[0].Details[ledger.KeyKind])
	})

	t.Run("refill without supplier", func(t *testing.T) {
		f := colaMachine().Build(t)

		_, err := f.Machine.RefillFromSupplier(50, 5)
		require.ErrorIs(t, err, machine.ErrNoSupplier)
	})
}

func TestMachine_CanCompletePurchase(t *testing.T) {
	f := builder.NewMachineBuilder().
		WithProduct(builder.NewProductBuilder()).
		WithProduct(builder.NewProductBuilder().WithCode("A2").WithQuantity(0)).
		WithCoins(500, 1).
		Build(t)

	cases := []struct {
		name     string
		code     string
		inserted money.Amount
		ok       bool
		causeIs  error
	}{
		{name: "unknown product", code: "Z9", inserted: 500, causeIs: errs.ErrNotFound},
		{name: "out of stock", code: "A2", inserted: 500, causeIs: errs.ErrOutOfStock},
		{name: "not enough money", code: "A1", inserted: 100, causeIs: errs.ErrInsufficientFunds},
		{name: "no change available", code: "A1", inserted: 200, causeIs: errs.ErrExactChangeImpossible},
		{name: "exact amount", code: "A1", inserted: 150, ok: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := f.Machine.CanCompletePurchase(c.code, c.inserted)
			assert.Equal(t, c.ok, got.CanPurchase)
			assert.NotEmpty(t, got.Reason)
			if c.causeIs != nil {
				assert.True(t, errs.Is(got.Cause, c.causeIs), "cause: %v", got.Cause)
			}
		})
	}

	t.Run("shortfall appears in the reason", func(t *testing.T) {
		got := f.Machine.CanCompletePurchase("A1", 100)
		assert.Contains(t, got.Reason, "0,50 EUR")
	})

	assert.Empty(t, f.Ledger.All())
	assert.Equal(t, 10, f.Inventory.Stock("A1"))
}

func TestMachine_CashConservation(t *testing.T) {
	f := builder.NewMachineBuilder().AsDemo().Build(t)
	initial := f.Registry.TotalValue()

	var inserted, dispensed money.Amount
	insert := func(amounts ...money.Amount) {
		for _, a := range amounts {
			_, err := f.Machine.InsertMoney(a)
			require.NoError(t, err)
			inserted += a
		}
	}

	insert(200)
	res, err := f.Machine.Purchase("B1")
	require.NoError(t, err)
	dispensed += money.Sum(res.Change...)

	insert(500, 10, 5)
	refund, err := f.Machine.CancelTransaction()
	require.NoError(t, err)
	dispensed += money.Sum(refund...)

	insert(100, 100)
	_, err = f.Machine.Purchase("B2")
	require.NoError(t, err)

	insert(1000)
	res, err = f.Machine.Purchase("C1")
	require.NoError(t, err)
	dispensed += money.Sum(res.Change...)

	insert(50)
	_, err = f.Machine.Purchase("A1")
	require.Error(t, err)
	coins, err := f.Machine.ReturnChange()
	require.NoError(t, err)
	dispensed += money.Sum(coins...)

	assert.Equal(t, initial+inserted-dispensed, f.Registry.TotalValue())
	for d, n := range f.Registry.Inventory() {
		assert.GreaterOrEqual(t, n, 0, "denomination %d", d)
	}
	for _, item := range f.Inventory.Items() {
		assert.GreaterOrEqual(t, item.Stock, 0, "product %s", item.Product.Code())
	}
}

func TestMachine_StatusAndStatistics(t *testing.T) {
	f := builder.NewMachineBuilder().AsDemo().Build(t)
	_, err := f.Machine.InsertMoney(200)
	require.NoError(t, err)
	_, err = f.Machine.SelectProduct("A1")
	require.NoError(t, err)

	status := f.Machine.Status()
	assert.Equal(t, machine.StateFunded, status.State)
	assert.EqualValues(t, 200, status.InsertedMoney)
	assert.Equal(t, "A1", status.SelectedProduct.Code().String())
	assert.Len(t, status.Inventory, 5)
	assert.Equal(t, f.Registry.TotalValue(), status.TotalCashValue)
	if diff := cmp.Diff(status, f.Machine.Status(), cmp.AllowUnexported(product.Product{})); diff != "" {
		t.Fatalf("status is not stable (-first +second):\n%s", diff)
	}

	_, err = f.Machine.Purchase("")
	require.NoError(t, err)

	stats := f.Machine.Statistics()
	assert.Equal(t, 1, stats.SuccessfulSales)
	assert.EqualValues(t, 150, stats.TotalRevenue)
	assert.Equal(t, "100.00%", stats.SuccessRate)
}
