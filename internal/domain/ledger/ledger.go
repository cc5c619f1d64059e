package ledger

import (
	"time"

	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/money"

	"github.com/google/uuid"
)

// Ledger is an append-only log of machine events. Entries are never edited or removed
// individually; Clear wipes the whole log as an administrative action.
type Ledger struct {
	entries []Entry
	clock   clock.Clock
}

func New(clk clock.Clock) *Ledger {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Ledger{clock: clk}
}

func (l *Ledger) Record(t EntryType, amount money.Amount, productCode string, success bool, details Details) Entry {
	e := Entry{
		ID:          uuid.New(),
		Timestamp:   l.clock.Now(),
		Type:        t,
		Amount:      amount,
		ProductCode: productCode,
		Success:     success,
		Details:     cloneDetails(details),
	}
	l.entries = append(l.entries, e)
	return e.clone()
}

func (l *Ledger) RecordPurchase(p *product.Product, amountPaid money.Amount, change []money.Amount) Entry {
	return l.Record(TypePurchase, p.Price(), p.Code().String(), true, Details{
		KeyProductName:  p.Name(),
		KeyProductPrice: p.Price(),
		KeyAmountPaid:   amountPaid,
		KeyChangeGiven:  change,
		KeyTotalChange:  money.Sum(change...),
	})
}

func (l *Ledger) RecordCancellation(refunded money.Amount, coins []money.Amount) Entry {
	return l.Record(TypeCancellation, refunded, "", true, Details{
		KeyAmountRefund:  refunded,
		KeyCoinsReturned: coins,
	})
}

func (l *Ledger) RecordRefund(coins []money.Amount) Entry {
	total := money.Sum(coins...)
	return l.Record(TypeRefund, total, "", true, Details{
		KeyCoinsReturned: coins,
		KeyAmountRefund:  total,
	})
}

func (l *Ledger) RecordRestock(code product.Code, quantity int) Entry {
	return l.Record(TypeRestock, 0, code.String(), true, Details{
		KeyKind:     "product",
		KeyQuantity: quantity,
	})
}

// RecordCashRestock logs coins moved into the cash box from the supplier.
func (l *Ledger) RecordCashRestock(d money.Amount, requested, provided int) Entry {
	return l.Record(TypeRestock, d*money.Amount(provided), "", provided > 0, Details{
		KeyKind:         "cash",
		KeyDenomination: d,
		KeyRequested:    requested,
		KeyQuantity:     provided,
	})
}

// RecordError logs a declined or failed operation. context names the operation.
func (l *Ledger) RecordError(context, productCode string, amount money.Amount, cause error) Entry {
	details := Details{KeyContext: context}
	if cause != nil {
		details[KeyError] = cause.Error()
	}
	return l.Record(TypeError, amount, productCode, false, details)
}

func (l *Ledger) All() []Entry {
	return l.filter(func(Entry) bool { return true })
}

func (l *Ledger) ByType(t EntryType) []Entry {
	return l.filter(func(e Entry) bool { return e.Type == t })
}

// InRange returns entries with start <= timestamp <= end.
func (l *Ledger) InRange(start, end time.Time) []Entry {
	return l.filter(func(e Entry) bool {
		return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
	})
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) Clear() {
	l.entries = nil
}

func (l *Ledger) filter(keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}
