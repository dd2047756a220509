package ports

import (
	"context"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
)

// CustomerInput is the mutation payload for create and update flows.
type CustomerInput struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// Service defines the customer use cases exposed to adapters.
type Service interface {
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
}
