//go:build unit || e2e

package builder

import (
	"vending-machine/internal/domain/product"
	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/money"
)

type ProductBuilder struct {
	Code     string
	Name     string
	Price    money.Amount
	Quantity int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Code:     "A1",
		Name:     "Coca-Cola",
		Price:    150,
		Quantity: 10,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(p.Code, p.Name, p.Price)
}

func (p *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Code:     p.Code,
		Name:     p.Name,
		Price:    p.Price.Int64(),
		Quantity: p.Quantity,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithCode(code string) *ProductBuilder {
	p.Code = code
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price money.Amount) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithQuantity(quantity int) *ProductBuilder {
	p.Quantity = quantity
	return p
}
