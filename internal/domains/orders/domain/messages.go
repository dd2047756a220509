package domain

import (
	"fmt"
	"strings"

	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// Coded messages for order business-rule failures. Codes are part of the API
// contract; clients branch on them.

func MustContainAtLeastOneItemMessage() *validation.Message {
	return validation.New("ORDER_MUST_CONTAIN_AT_LEAST_ONE_ITEM", "Order must contain at least one item.")
}

func MustBeNewToModifyMessage() *validation.Message {
	return validation.New("ORDER_CANNOT_BE_MODIFIED_UNLESS_NEW", "You can only modify orders with the 'New' status.")
}

func MustBeNewToDeleteMessage() *validation.Message {
	return validation.New("ORDER_CANNOT_BE_DELETED_UNLESS_NEW", "You can only delete orders with the 'New' status.")
}

func NotFoundMessage(id int) *validation.Message {
	return validation.Newf("ORDER_NOT_FOUND", "Order with id '%d' was not found.", id).
		WithParam("id", id)
}

func PositionNotFoundMessage(orderID, productID int) *validation.Message {
	return validation.Newf("ORDER_POSITION_NOT_FOUND",
		"Product with id '%d' is not part of Order with id '%d'.", productID, orderID).
		WithParam("orderId", orderID).
		WithParam("productId", productID)
}

func InvalidOrderStatusMessage(status Status) *validation.Message {
	return validation.Newf("ORDER_INVALID_ORDER_STATUS", "Invalid order status '%s'.", status).
		WithParam("orderStatus", string(status))
}

func PositionMustBePresentMessage() *validation.Message {
	return validation.New("ORDER_POSITION_MUST_BE_PRESENT", "The order position must be present in the order.")
}

func PositionQuantityMustBeGreaterThanZeroMessage(productID, quantity int) *validation.Message {
	return validation.Newf("ORDER_POSITION_QUANTITY_MUST_BE_GREATER_THAN_ZERO",
		"The quantity for product with id '%d' must be greater than zero, but it is '%d'.", productID, quantity).
		WithParam("productId", productID).
		WithParam("quantity", quantity)
}

// PositionsQuantityMustBeGreaterThanZeroMessage aggregates every offending
// position of a batch into one message.
func PositionsQuantityMustBeGreaterThanZeroMessage(invalid []*Position) *validation.Message {
	type invalidItem struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	items := make([]invalidItem, 0, len(invalid))
	for _, position := range invalid {
		items = append(items, invalidItem{ProductID: position.ProductID, Quantity: position.Quantity})
	}
	text := "One or more products in the order have invalid quantities (<= 0)."
	if len(items) > 1 {
		text = "Some products in the order have invalid quantities (<= 0)."
	}
	return validation.New("ORDER_POSITIONS_QUANTITY_MUST_BE_GREATER_THAN_ZERO", text).
		WithParam("invalidItems", items)
}

func PositionsNotFoundMessage(orderID int, notFoundPositions []int) *validation.Message {
	ids := make([]string, 0, len(notFoundPositions))
	for _, id := range notFoundPositions {
		ids = append(ids, fmt.Sprintf("%d", id))
	}
	return validation.Newf("ORDER_POSITIONS_NOT_FOUND",
		"Products with IDs [%s] is not part of Order with id '%d'.", strings.Join(ids, ", "), orderID).
		WithParam("orderId", orderID).
		WithParam("notFoundPositions", notFoundPositions)
}

func InvalidPositionsMessage() *validation.Message {
	return validation.New("ORDER_INVALID_POSITIONS_WHILE_ADD_OR_UPDATE", "During add or update, the order has invalid positions.")
}

func InvalidPositionMessage() *validation.Message {
	return validation.New("ORDER_INVALID_POSITION_WHILE_ADD_OR_UPDATE", "During add or update, the order has invalid position.")
}
