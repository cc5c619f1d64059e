package machine

import (
	"fmt"

	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

// InsufficientFundsError reports how much is missing for the selected product.
// It matches errs.ErrInsufficientFunds.
type InsufficientFundsError struct {
	Price    money.Amount
	Inserted money.Amount
	Missing  money.Amount
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: price %d, inserted %d, missing %d", e.Price, e.Inserted, e.Missing)
}

func (e *InsufficientFundsError) Unwrap() error { return errs.ErrInsufficientFunds }

var (
	ErrNoSelection     = errs.Mark(errs.New("no product selected"), errs.ErrNoSelection)
	ErrNothingToCancel = errs.Mark(errs.New("no money inserted, nothing to cancel"), errs.ErrNothingToCancel)
)
