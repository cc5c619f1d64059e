package product

import (
	"strings"

	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/money"
)

var (
	ErrEmptyCode    = errs.Mark(errs.New("product code cannot be empty"), errs.ErrValidation)
	ErrCodeTooLong  = errs.Mark(errs.New("product code exceeds maximum length"), errs.ErrValidation)
	ErrEmptyName    = errs.Mark(errs.New("product name cannot be empty"), errs.ErrValidation)
	ErrInvalidPrice = errs.Mark(errs.New("product price must be positive"), errs.ErrValidation)
)

// Product is immutable; two products are the same product when their codes match.
type Product struct {
	code  Code
	name  string
	price money.Amount
}

func NewProduct(code, name string, price money.Amount) (*Product, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrEmptyName
	}

	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	return &Product{
		code:  c,
		name:  n,
		price: price,
	}, nil
}

func (p *Product) Code() Code          { return p.code }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() money.Amount { return p.price }

func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.code == other.code
}
