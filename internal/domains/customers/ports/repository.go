package ports

import (
	"context"
	"errors"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
)

var ErrNotFound = errors.New("customer not found")

// Repository persists directory customers.
type Repository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}

// OrderChecker answers whether a customer owns any order. Implemented by the
// orders persistence layer.
type OrderChecker interface {
	ExistsForCustomer(ctx context.Context, customerID int) (bool, error)
}
