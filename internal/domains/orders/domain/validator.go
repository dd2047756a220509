package domain

import "github.com/ordermanager/order-manager-api/internal/shared/validation"

// Caller-side validation of requested positions. These run before the
// aggregate is touched, so a rejected batch leaves order and stock untouched.

// PositionsNotEmpty rejects empty position lists.
func PositionsNotEmpty(positions []*Position) *validation.Message {
	if len(positions) == 0 {
		return MustContainAtLeastOneItemMessage()
	}
	return nil
}

// ValidatePosition checks a single requested position.
func ValidatePosition(position *Position) *validation.Message {
	if position == nil {
		return PositionMustBePresentMessage()
	}
	if position.Quantity <= 0 {
		return PositionQuantityMustBeGreaterThanZeroMessage(position.ProductID, position.Quantity)
	}
	return nil
}

// ValidatePositions checks a batch. A nil entry fails immediately; invalid
// quantities are aggregated into a single message naming every offender.
func ValidatePositions(positions []*Position) *validation.Message {
	var invalid []*Position
	for _, position := range positions {
		if position == nil {
			return PositionMustBePresentMessage()
		}
		if position.Quantity <= 0 {
			invalid = append(invalid, position)
		}
	}
	if len(invalid) > 0 {
		return PositionsQuantityMustBeGreaterThanZeroMessage(invalid)
	}
	return nil
}

// CanModifyOrDelete reports whether position mutations and deletion are still
// allowed for the order.
func CanModifyOrDelete(order *Order) bool {
	return order.Status == StatusNew
}
