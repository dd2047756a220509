package ports

import (
	"context"
	"errors"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists catalog products together with their stock rows.
type Repository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	// GetByIDs loads the products matching the given ids; missing ids are
	// simply absent from the result, the caller decides whether that is an
	// error.
	GetByIDs(ctx context.Context, ids []int) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	// UpdateRange persists a batch of already-mutated products, used after
	// order mutations touched their stock ledgers.
	UpdateRange(ctx context.Context, products []*domain.Product) error
	Delete(ctx context.Context, id int) error
}

// UsageChecker answers whether a product is referenced by any order item.
// Implemented by the orders persistence layer.
type UsageChecker interface {
	ProductInUse(ctx context.Context, productID int) (bool, error)
}
