package request

import (
	"strings"
	"time"

	"vending-machine/internal/domain/ledger"
	"vending-machine/internal/domain/product"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/pkg/ptr"
)

type CreateProductRequest struct {
	Code     string `json:"code" binding:"required,max=16"`
	Name     string `json:"name" binding:"required,max=100"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	Quantity int    `json:"quantity" binding:"min=0,max=1000000"`
}

func (r *CreateProductRequest) ToDomain() (*product.Product, error) {
	return product.NewProduct(r.Code, r.Name, money.Amount(r.Price))
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0,max=1000000"`
}

// CashRequest is used both for loading coins directly and for refills from the supplier.
type CashRequest struct {
	Denomination int64 `json:"denomination" binding:"required,gt=0,max=1000000000"`
	Count        int   `json:"count" binding:"required,gt=0,max=1000000"`
}

func (r *CashRequest) DenominationAmount() money.Amount {
	return money.Amount(r.Denomination)
}

// TransactionFilterRequest is bound from the query string; from and to are RFC 3339.
type TransactionFilterRequest struct {
	Type string `form:"type"`
	From string `form:"from"`
	To   string `form:"to"`
}

type TransactionFilter struct {
	Type *ledger.EntryType
	From *time.Time
	To   *time.Time
}

func (r *TransactionFilterRequest) ToFilter() (TransactionFilter, error) {
	var f TransactionFilter
	if r.Type != "" {
		t, err := ledger.ParseEntryType(strings.ToUpper(r.Type))
		if err != nil {
			return TransactionFilter{}, err
		}
		f.Type = ptr.To(t)
	}

	from, err := parseTime("from", r.From)
	if err != nil {
		return TransactionFilter{}, err
	}
	to, err := parseTime("to", r.To)
	if err != nil {
		return TransactionFilter{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return TransactionFilter{}, errs.Markf(errs.ErrValidation, "to must not be before from")
	}
	f.From, f.To = from, to
	return f, nil
}

func parseTime(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.Markf(errs.ErrValidation, "%s must be an RFC 3339 timestamp", field)
	}
	return ptr.To(t), nil
}
