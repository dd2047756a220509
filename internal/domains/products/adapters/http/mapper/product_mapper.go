// Package mapper converts between the transport payloads and the products
// domain model.
package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

// Product is the transport-layer shape used by the HTTP handlers.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"productName"`
	Price     decimal.Decimal `json:"price"`
	IsDigital bool            `json:"isDigital"`
	Stock     *Stock          `json:"productStock,omitempty"`
}

// Stock is the transport shape of a product's stock ledger row.
type Stock struct {
	Quantity int `json:"quantity"`
}

// ToInput converts a transport product into the service mutation payload.
func ToInput(p Product) ports.ProductInput {
	input := ports.ProductInput{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		IsDigital: p.IsDigital,
	}
	if p.Stock != nil {
		quantity := p.Stock.Quantity
		input.StockQuantity = &quantity
	}
	return input
}

// FromDomain converts a domain product to the transport representation.
func FromDomain(product *domain.Product) Product {
	if product == nil {
		return Product{}
	}
	out := Product{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		IsDigital: product.IsDigital,
	}
	if product.Stock != nil {
		out.Stock = &Stock{Quantity: product.Stock.Quantity}
	}
	return out
}

// FromDomainList converts a catalog listing.
func FromDomainList(products []*domain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromDomain(product))
	}
	return out
}
