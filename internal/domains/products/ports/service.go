package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
)

// ProductInput is the mutation payload for create and update flows.
// StockQuantity is ignored for digital products.
type ProductInput struct {
	ID            int
	Name          string
	Price         decimal.Decimal
	IsDigital     bool
	StockQuantity *int
}

// Service defines the product use cases exposed to adapters.
type Service interface {
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
