package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	orderactivities "github.com/ordermanager/order-manager-api/internal/platform/temporal/activities/orders"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "orders.workflows.Placement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing order workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
)

// OrderPlacementWorkflowInput captures the payload required to place an order.
type OrderPlacementWorkflowInput struct {
	Command ordertypes.CreateOrderInput
	TraceID string
}

// OrderPlacementWorkflow orchestrates the activities needed to place an order.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	customerID := input.Command.CustomerID
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "customerId", customerID)...)

	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	var order domain.Order
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, placeOptions),
		orderactivities.PlaceOrderActivityName,
		input.Command,
	).Get(ctx, &order)
	if err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "customerId", customerID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID)...)
	return &order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
