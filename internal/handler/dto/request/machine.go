package request

import (
	"strings"

	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/pkg/ptr"
)

// InsertMoneyRequest takes either an integer amount in minor units or a decimal value in
// major units ("1.50" or "1,50"), not both.
type InsertMoneyRequest struct {
	Amount *int64  `json:"amount" binding:"omitempty,gt=0"`
	Value  *string `json:"value" binding:"omitempty"`
}

func (r *InsertMoneyRequest) ToAmount(cur money.Currency) (money.Amount, error) {
	switch {
	case r.Amount != nil && r.Value != nil:
		return 0, errs.Markf(errs.ErrValidation, "amount and value are mutually exclusive")
	case r.Amount != nil:
		return money.Amount(*r.Amount), nil
	case r.Value != nil:
		a, err := money.ParseMajor(*r.Value, cur)
		if err != nil {
			return 0, err
		}
		if !a.IsPositive() {
			return 0, errs.Markf(errs.ErrValidation, "value must be positive")
		}
		return a, nil
	default:
		return 0, errs.Markf(errs.ErrValidation, "amount or value is required")
	}
}

type SelectProductRequest struct {
	Code string `json:"code" binding:"required"`
}

// PurchaseRequest buys the current selection when Code is omitted.
type PurchaseRequest struct {
	Code *string `json:"code"`
}

func (r *PurchaseRequest) ProductCode() string {
	return strings.TrimSpace(ptr.Deref(r.Code, ""))
}
