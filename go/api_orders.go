package ordermanagerserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/http/mapper"
	ordersapp "github.com/ordermanager/order-manager-api/internal/domains/orders/application"
	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	orderports "github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	apierrors "github.com/ordermanager/order-manager-api/internal/shared/errors"
)

// idempotencyKeyHeader lets clients retry order placement safely.
const idempotencyKeyHeader = "X-Idempotency-Key"

// OrdersAPI wires HTTP transport with the orders bounded context service and workflows.
type OrdersAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrdersAPI {
	return OrdersAPI{service: service, workflows: workflows}
}

// Get /api/orders
// List order summaries
func (api *OrdersAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainList(orders))
}

// Post /api/orders
// Place a new order
func (api *OrdersAPI) CreateOrder(c *gin.Context) {
	var payload ordermapper.CreateOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := ordermapper.ToCreateInput(payload, c.GetHeader(idempotencyKeyHeader))
	order, err := api.placeOrder(c.Request.Context(), input)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.DetailsFromDomain(order))
}

func (api *OrdersAPI) placeOrder(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.Create(ctx, input)
}

// Get /api/orders/:id
// Load the full order with customer and positions
func (api *OrdersAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Put /api/orders/:id
// Bulk mutation: add positions, drop positions, reassign the customer
func (api *OrdersAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ordermapper.UpdateOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.Update(c.Request.Context(), ordermapper.ToUpdateInput(id, payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Delete /api/orders/:id
// Delete an open order and return its units to stock
func (api *OrdersAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Patch /api/orders/:id/status
// Change the order status
func (api *OrdersAPI) ChangeOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ordermapper.ChangeStatus
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.ChangeStatus(c.Request.Context(), id, domain.Status(payload.Status))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Post /api/orders/:id/positions
// Add a position to an open order
func (api *OrdersAPI) AddOrderPosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ordermapper.Position
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.service.AddPosition(c.Request.Context(), id, ordermapper.ToPosition(payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Patch /api/orders/:id/positions
// Set absolute quantities for a batch of positions
func (api *OrdersAPI) ModifyOrderPositions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload []ordermapper.Position
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	positions := make([]*domain.Position, 0, len(payload))
	for _, p := range payload {
		positions = append(positions, ordermapper.ToPosition(p))
	}
	order, err := api.service.ModifyPositions(c.Request.Context(), id, positions)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Patch /api/orders/:id/positions/:productId
// Set the absolute quantity of one position
func (api *OrdersAPI) ModifyOrderPosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	position := &domain.Position{ProductID: productID, Quantity: payload.Quantity}
	order, err := api.service.ModifyPosition(c.Request.Context(), id, position)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

// Delete /api/orders/:id/positions/:productId
// Remove one position and return its units to stock
func (api *OrdersAPI) RemoveOrderPosition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	order, err := api.service.RemovePosition(c.Request.Context(), id, productID)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.DetailsFromDomain(order))
}

func respondOrderServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ordersapp.ErrNotFound):
		respondCodedError(c, apierrors.ErrNotFound, err)
	case errors.Is(err, ordersapp.ErrInvalidInput):
		respondCodedError(c, apierrors.ErrValidation, err)
	case errors.Is(err, ordersapp.ErrConflict):
		respondCodedError(c, apierrors.ErrConflict, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
