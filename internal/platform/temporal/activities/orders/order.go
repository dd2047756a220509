package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	orderports "github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName validates and persists an order aggregate.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the order placement use case and returns the created aggregate.
func (a *Activities) PlaceOrder(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order placement activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", input.CustomerID, "positions", len(input.Positions))
	order, err := a.service.Create(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID, "orderNumber", order.Number)
	return order, nil
}
