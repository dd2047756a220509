package ports

import (
	"context"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator abstracts how order placement is executed: durably on
// Temporal or inline against the service.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error)
}
