package ports

import (
	"context"
	"errors"

	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists order aggregates with their items.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// GetByID loads the bare order row without items or customer.
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	// GetDetailsByID loads the full aggregate: items with their products,
	// and the owning customer.
	GetDetailsByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// Update replaces the stored aggregate state, items included.
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) error

	// ProductInUse reports whether any order item references the product.
	ProductInUse(ctx context.Context, productID int) (bool, error)
	// ExistsForCustomer reports whether the customer owns any order.
	ExistsForCustomer(ctx context.Context, customerID int) (bool, error)
}
