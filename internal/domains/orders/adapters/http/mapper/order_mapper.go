// Package mapper converts between the transport payloads and the orders
// domain model.
package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	customersmapper "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/http/mapper"
	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
)

// Order is the summary transport shape returned by listings.
type Order struct {
	ID         int             `json:"id"`
	Number     string          `json:"orderNumber"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"orderStatus"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// OrderDetails extends the summary with the customer and positions.
type OrderDetails struct {
	Order
	Customer  *customersmapper.Customer `json:"customer,omitempty"`
	Positions []OrderPosition           `json:"positions"`
}

// OrderPosition is an order line as exposed over HTTP. TotalPrice is the
// line subtotal at the locked-in unit price.
type OrderPosition struct {
	ID          int             `json:"id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
}

// Position is the requested (product, quantity) pair on mutation payloads.
type Position struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CreateOrder is the order placement payload.
type CreateOrder struct {
	CustomerID int        `json:"customerId"`
	Positions  []Position `json:"positions"`
}

// UpdateOrder is the bulk mutation payload: positions to add, product ids to
// drop, and the owning customer.
type UpdateOrder struct {
	CustomerID      int        `json:"customerId"`
	NewPositions    []Position `json:"newPositions"`
	DeletePositions []int      `json:"deletePositions"`
}

// ChangeStatus carries the target order status.
type ChangeStatus struct {
	Status string `json:"orderStatus"`
}

// ToCreateInput converts the placement payload into the service command.
func ToCreateInput(payload CreateOrder, idempotencyKey string) ordertypes.CreateOrderInput {
	return ordertypes.NewCreateOrderInput(payload.CustomerID, toDomainPositions(payload.Positions), idempotencyKey)
}

// ToUpdateInput converts the bulk mutation payload into the service command.
func ToUpdateInput(id int, payload UpdateOrder) ordertypes.UpdateOrderInput {
	return ordertypes.NewUpdateOrderInput(id, payload.CustomerID, toDomainPositions(payload.NewPositions), payload.DeletePositions)
}

// ToPosition converts a single transport position.
func ToPosition(p Position) *domain.Position {
	return &domain.Position{ProductID: p.ProductID, Quantity: p.Quantity}
}

// FromDomain converts a domain order to the summary representation.
func FromDomain(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:         order.ID,
		Number:     order.Number,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}

// FromDomainList converts an order listing.
func FromDomainList(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomain(order))
	}
	return out
}

// DetailsFromDomain converts the full aggregate with customer and positions.
func DetailsFromDomain(order *domain.Order) OrderDetails {
	if order == nil {
		return OrderDetails{Positions: []OrderPosition{}}
	}
	details := OrderDetails{
		Order:     FromDomain(order),
		Positions: make([]OrderPosition, 0, len(order.Items)),
	}
	if order.Customer != nil {
		customer := customersmapper.FromDomain(order.Customer)
		details.Customer = &customer
	}
	for _, item := range order.Items {
		position := OrderPosition{
			ID:         item.ID,
			Price:      item.Price,
			Quantity:   item.Quantity,
			TotalPrice: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			ProductID:  item.ProductID,
		}
		if item.Product != nil {
			position.ProductName = item.Product.Name
		}
		details.Positions = append(details.Positions, position)
	}
	return details
}

func toDomainPositions(positions []Position) []*domain.Position {
	out := make([]*domain.Position, 0, len(positions))
	for _, p := range positions {
		out = append(out, ToPosition(p))
	}
	return out
}
