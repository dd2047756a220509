// Package types holds the use-case inputs of the orders bounded context.
package types

import "github.com/ordermanager/order-manager-api/internal/domains/orders/domain"

// CreateOrderInput is the payload for placing a new order. Construct it with
// NewCreateOrderInput so duplicate positions are collapsed before the
// aggregate sees them.
type CreateOrderInput struct {
	CustomerID     int
	Positions      []*domain.Position
	IdempotencyKey string
}

// NewCreateOrderInput collapses duplicate positions (same product id) by
// summing their quantities.
func NewCreateOrderInput(customerID int, positions []*domain.Position, idempotencyKey string) CreateOrderInput {
	return CreateOrderInput{
		CustomerID:     customerID,
		Positions:      CollapsePositions(positions),
		IdempotencyKey: idempotencyKey,
	}
}

// UpdateOrderInput is the payload for the bulk order update: add new
// positions, remove others, and reassign the customer in one operation.
type UpdateOrderInput struct {
	ID               int
	CustomerID       int
	NewPositions     []*domain.Position
	RemoveProductIDs []int
}

// NewUpdateOrderInput collapses duplicate new positions by product id.
func NewUpdateOrderInput(id, customerID int, newPositions []*domain.Position, removeProductIDs []int) UpdateOrderInput {
	return UpdateOrderInput{
		ID:               id,
		CustomerID:       customerID,
		NewPositions:     CollapsePositions(newPositions),
		RemoveProductIDs: removeProductIDs,
	}
}

// CollapsePositions groups positions by product id and sums their quantities,
// keeping the first-seen order of product ids. Nil entries are passed through
// untouched so validation can reject them.
func CollapsePositions(positions []*domain.Position) []*domain.Position {
	if positions == nil {
		return nil
	}
	out := make([]*domain.Position, 0, len(positions))
	byProduct := make(map[int]*domain.Position, len(positions))
	for _, position := range positions {
		if position == nil {
			out = append(out, nil)
			continue
		}
		if existing, ok := byProduct[position.ProductID]; ok {
			existing.Quantity += position.Quantity
			continue
		}
		collapsed := &domain.Position{ProductID: position.ProductID, Quantity: position.Quantity}
		byProduct[position.ProductID] = collapsed
		out = append(out, collapsed)
	}
	return out
}
