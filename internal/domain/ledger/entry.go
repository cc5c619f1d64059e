package ledger

import (
	"slices"
	"time"

	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"

	"github.com/google/uuid"
)

var ErrUnknownEntryType = errs.Mark(errs.New("unknown ledger entry type"), errs.ErrValidation)

type EntryType string

const (
	TypePurchase     EntryType = "PURCHASE"
	TypeCancellation EntryType = "CANCELLATION"
	TypeRefund       EntryType = "REFUND"
	TypeRestock      EntryType = "RESTOCK"
	TypeError        EntryType = "ERROR"
)

func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case TypePurchase, TypeCancellation, TypeRefund, TypeRestock, TypeError:
		return t, nil
	default:
		return "", ErrUnknownEntryType
	}
}

func (t EntryType) String() string { return string(t) }

// Details keys written by the convenience recorders.
const (
	KeyProductName   = "productName"
	KeyProductPrice  = "productPrice"
	KeyAmountPaid    = "amountPaid"
	KeyChangeGiven   = "changeGiven"
	KeyTotalChange   = "totalChange"
	KeyAmountRefund  = "amountRefunded"
	KeyCoinsReturned = "coinsReturned"
	KeyQuantity      = "quantity"
	KeyKind          = "kind"
	KeyDenomination  = "denomination"
	KeyRequested     = "requested"
	KeyError         = "error"
	KeyContext       = "context"
)

type Details map[string]any

// Entry is one immutable ledger record. ProductCode is empty when the event has no product.
type Entry struct {
	ID          uuid.UUID
	Timestamp   time.Time
	Type        EntryType
	Amount      money.Amount
	ProductCode string
	Success     bool
	Details     Details
}

func (e Entry) clone() Entry {
	e.Details = cloneDetails(e.Details)
	return e
}

func cloneDetails(d Details) Details {
	if d == nil {
		return Details{}
	}
	out := make(Details, len(d))
	for k, v := range d {
		if coins, ok := v.([]money.Amount); ok {
			v = slices.Clone(coins)
		}
		out[k] = v
	}
	return out
}
