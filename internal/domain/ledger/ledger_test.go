//go:build unit

package ledger_test

import (
	"errors"
	"testing"
	"time"

	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/money"
	"vending-machine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func newLedger() *ledger.Ledger {
	return ledger.New(clock.NewSteppingClock(start, time.Minute))
}

func mustProduct(t *testing.T, code, name string, price money.Amount) *product.Product {
	t.Helper()
	p, err := builder.NewProductBuilder().WithCode(code).WithName(name).WithPrice(price).BuildDomain()
	require.NoError(t, err)
	return p
}

func TestLedger_Record(t *testing.T) {
	l := newLedger()

	first := l.Record(ledger.TypeRestock, 0, "A1", true, ledger.Details{"note": "x"})
	second := l.Record(ledger.TypeError, 100, "", false, nil)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, start, first.Timestamp)
	assert.Equal(t, start.Add(time.Minute), second.Timestamp)
	assert.Equal(t, 2, l.Len())
	assert.NotNil(t, second.Details)
}

func TestLedger_ConvenienceRecorders(t *testing.T) {
	l := newLedger()
	cola := mustProduct(t, "A1", "Coca-Cola", 150)

	purchase := l.RecordPurchase(cola, 200, []money.Amount{50})
	assert.Equal(t, ledger.TypePurchase, purchase.Type)
	assert.EqualValues(t, 150, purchase.Amount)
	assert.Equal(t, "A1", purchase.ProductCode)
	assert.True(t, purchase.Success)
	assert.Equal(t, "Coca-Cola", purchase.Details[ledger.KeyProductName])
	assert.Equal(t, money.Amount(200), purchase.Details[ledger.KeyAmountPaid])
	assert.Equal(t, money.Amount(50), purchase.Details[ledger.KeyTotalChange])

	cancel := l.RecordCancellation(200, []money.Amount{200})
	assert.Equal(t, ledger.TypeCancellation, cancel.Type)
	assert.EqualValues(t, 200, cancel.Amount)

	refund := l.RecordRefund([]money.Amount{100, 50})
	assert.Equal(t, ledger.TypeRefund, refund.Type)
	assert.EqualValues(t, 150, refund.Amount)

	restock := l.RecordRestock("A1", 5)
	assert.Equal(t, ledger.TypeRestock, restock.Type)
	assert.Equal(t, 5, restock.Details[ledger.KeyQuantity])

	cashRestock := l.RecordCashRestock(200, 10, 4)
	assert.EqualValues(t, 800, cashRestock.Amount)
	assert.Equal(t, "cash", cashRestock.Details[ledger.KeyKind])

	failure := l.RecordError("purchase", "A1", 100, errors.New("boom"))
	assert.Equal(t, ledger.TypeError, failure.Type)
	assert.False(t, failure.Success)
	assert.Equal(t, "boom", failure.Details[ledger.KeyError])
	assert.Equal(t, "purchase", failure.Details[ledger.KeyContext])
}

func TestLedger_QueriesReturnCopies(t *testing.T) {
	l := newLedger()
	change := []money.Amount{50, 20}
	l.RecordPurchase(mustProduct(t, "A1", "Coca-Cola", 150), 220, change)

	change[0] = 1
	entries := l.All()
	require.Len(t, entries, 1)
	assert.Equal(t, []money.Amount{50, 20}, entries[0].Details[ledger.KeyChangeGiven])

	entries[0].Details[ledger.KeyProductName] = "tampered"
	entries[0].Details[ledger.KeyChangeGiven].([]money.Amount)[0] = 1

	again := l.All()
	require.Len(t, again, 1)
	assert.Equal(t, "Coca-Cola", again[0].Details[ledger.KeyProductName])
	assert.Equal(t, []money.Amount{50, 20}, again[0].Details[ledger.KeyChangeGiven])
}

func TestLedger_Filters(t *testing.T) {
	l := newLedger()
	// one entry per minute starting at 09:00
	l.RecordRestock("A1", 1)
	l.RecordError("select", "Z9", 0, nil)
	l.RecordPurchase(mustProduct(t, "A1", "Coca-Cola", 150), 150, nil)
	l.RecordError("purchase", "A1", 0, nil)

	assert.Len(t, l.ByType(ledger.TypeError), 2)
	assert.Len(t, l.ByType(ledger.TypePurchase), 1)
	assert.Empty(t, l.ByType(ledger.TypeRefund))

	inRange := l.InRange(start.Add(time.Minute), start.Add(2*time.Minute))
	require.Len(t, inRange, 2)
	assert.Equal(t, ledger.TypeError, inRange[0].Type)
	assert.Equal(t, ledger.TypePurchase, inRange[1].Type)

	assert.Empty(t, l.InRange(start.Add(time.Hour), start.Add(2*time.Hour)))
}

func TestLedger_Statistics(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		l := newLedger()
		stats := l.Statistics()

		assert.Equal(t, "0%", stats.SuccessRate)
		assert.Equal(t, 0, stats.TotalTransactions)
		assert.EqualValues(t, 0, stats.TotalRevenue)
		assert.Empty(t, stats.TopSellingProducts)
	})

	t.Run("mixed entries", func(t *testing.T) {
		l := newLedger()
		cola := mustProduct(t, "A1", "Coca-Cola", 150)
		chips := mustProduct(t, "B1", "Chips", 120)
		water := mustProduct(t, "C1", "Eau", 100)

		l.RecordPurchase(chips, 120, nil)
		l.RecordPurchase(cola, 200, []money.Amount{50})
		l.RecordPurchase(water, 100, nil)
		l.RecordPurchase(cola, 150, nil)
		l.RecordError("purchase", "B2", 100, nil)
		l.RecordCancellation(100, []money.Amount{100})

		stats := l.Statistics()
		assert.Equal(t, 6, stats.TotalTransactions)
		assert.Equal(t, 4, stats.SuccessfulSales)
		assert.Equal(t, 4, stats.TotalProductsSold)
		assert.EqualValues(t, 520, stats.TotalRevenue)
		assert.Equal(t, 1, stats.Errors)
		assert.Equal(t, 1, stats.Cancellations)
		assert.Equal(t, "66.67%", stats.SuccessRate)

		assert.Equal(t, []ledger.ProductSales{
			{Code: "A1", Name: "Coca-Cola", Quantity: 2, Revenue: 300},
			{Code: "B1", Name: "Chips", Quantity: 1, Revenue: 120},
			{Code: "C1", Name: "Eau", Quantity: 1, Revenue: 100},
		}, stats.TopSellingProducts)
	})

	t.Run("clear empties the log", func(t *testing.T) {
		l := newLedger()
		l.RecordRefund([]money.Amount{100})
		l.Clear()

		assert.Empty(t, l.All())
		assert.Equal(t, "0%", l.SuccessRate())
	})
}

func TestParseEntryType(t *testing.T) {
	typ, err := ledger.ParseEntryType("REFUND")
	require.NoError(t, err)
	assert.Equal(t, ledger.TypeRefund, typ)

	_, err = ledger.ParseEntryType("sale")
	require.ErrorIs(t, err, ledger.ErrUnknownEntryType)
}
