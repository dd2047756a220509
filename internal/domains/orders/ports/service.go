package ports

import (
	"context"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
)

// Service defines the order use cases exposed to adapters (inbound port).
// Mutations return the refreshed aggregate with items and customer loaded.
type Service interface {
	Create(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, input ordertypes.UpdateOrderInput) (*domain.Order, error)
	AddPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error)
	ModifyPositions(ctx context.Context, orderID int, positions []*domain.Position) (*domain.Order, error)
	ModifyPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error)
	RemovePosition(ctx context.Context, orderID, productID int) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error)
	Delete(ctx context.Context, id int) error
}
