// Package domain models the order aggregate. The aggregate owns the position
// state machine: every add, remove, or modify goes through it so the total
// price and the product stock ledgers stay consistent with the items.
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// Status enumerates order progression.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// IsValidStatus reports whether the value is a known status.
func IsValidStatus(status Status) bool {
	switch status {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Position is the requested (product, quantity) pair fed into the aggregate.
type Position struct {
	ProductID int
	Quantity  int
}

// OrderItem is an owned line of the order. Price is the unit price locked in
// when the product first entered the order; later mutations never re-read it
// from the catalog.
type OrderItem struct {
	ID        int
	ProductID int
	Quantity  int
	Price     decimal.Decimal
	Product   *productsdomain.Product
}

// Order is the aggregate root. Items hold at most one entry per product id;
// TotalPrice always equals the sum of item price times quantity.
type Order struct {
	ID         int
	Number     string
	TotalPrice decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	CustomerID int
	Customer   *customersdomain.Customer
	Items      []*OrderItem
}

// positionOutcome is the per-item state machine result.
type positionOutcome int

const (
	outcomeSuccess positionOutcome = iota
	outcomeNotAvailable
	outcomeNotFound
	outcomeInvalid
)

// AddPositions applies a batch of adds. Each position is applied
// independently; failures are collected and reported once the whole batch was
// processed, missing products taking precedence over unavailable ones. A nil
// position aborts immediately. Successful items stay applied even when the
// batch fails, so callers must not persist the aggregate on error.
func (o *Order) AddPositions(positions []*Position, products map[int]*productsdomain.Product) *validation.Message {
	var notFound, notAvailable []int
	for _, position := range positions {
		if position == nil {
			return InvalidPositionsMessage()
		}
		product, ok := products[position.ProductID]
		if !ok {
			notFound = append(notFound, position.ProductID)
			continue
		}
		switch o.applyAdd(position, product) {
		case outcomeSuccess:
			continue
		case outcomeNotAvailable:
			notAvailable = append(notAvailable, position.ProductID)
		case outcomeNotFound:
			notFound = append(notFound, position.ProductID)
		default:
			return InvalidPositionsMessage()
		}
	}
	if len(notFound) > 0 {
		return PositionsNotFoundMessage(o.ID, notFound)
	}
	if len(notAvailable) > 0 {
		return productsdomain.ProductsNotAvailableMessage(notAvailable)
	}
	return nil
}

// AddPosition applies a single add.
func (o *Order) AddPosition(position *Position, product *productsdomain.Product) *validation.Message {
	switch o.applyAdd(position, product) {
	case outcomeSuccess:
		return nil
	case outcomeNotFound:
		return PositionNotFoundMessage(o.ID, position.ProductID)
	case outcomeNotAvailable:
		return productsdomain.NotAvailableMessage(product.ID)
	default:
		return InvalidPositionMessage()
	}
}

// RemovePositions applies a batch of removals keyed by product id. Products
// missing from the lookup and positions absent from the order are reported
// together after the batch was processed.
func (o *Order) RemovePositions(productIDs []int, products map[int]*productsdomain.Product) *validation.Message {
	var notFound []int
	for _, productID := range productIDs {
		product, ok := products[productID]
		if !ok {
			notFound = append(notFound, productID)
			continue
		}
		switch o.applyRemove(productID, product) {
		case outcomeSuccess:
			continue
		case outcomeNotFound:
			notFound = append(notFound, productID)
		default:
			return InvalidPositionsMessage()
		}
	}
	if len(notFound) > 0 {
		return PositionsNotFoundMessage(o.ID, notFound)
	}
	return nil
}

// RemovePosition applies a single removal.
func (o *Order) RemovePosition(productID int, product *productsdomain.Product) *validation.Message {
	switch o.applyRemove(productID, product) {
	case outcomeSuccess:
		return nil
	case outcomeNotFound:
		return PositionNotFoundMessage(o.ID, productID)
	default:
		return InvalidPositionMessage()
	}
}

// ModifyPositions applies a batch of absolute quantity changes. The reporting
// rules match AddPositions.
func (o *Order) ModifyPositions(positions []*Position, products map[int]*productsdomain.Product) *validation.Message {
	var notFound, notAvailable []int
	for _, position := range positions {
		if position == nil {
			return InvalidPositionsMessage()
		}
		product, ok := products[position.ProductID]
		if !ok {
			notFound = append(notFound, position.ProductID)
			continue
		}
		switch o.applyModify(position, product) {
		case outcomeSuccess:
			continue
		case outcomeNotFound:
			notFound = append(notFound, position.ProductID)
		case outcomeNotAvailable:
			notAvailable = append(notAvailable, position.ProductID)
		default:
			return InvalidPositionsMessage()
		}
	}
	if len(notFound) > 0 {
		return PositionsNotFoundMessage(o.ID, notFound)
	}
	if len(notAvailable) > 0 {
		return productsdomain.ProductsNotAvailableMessage(notAvailable)
	}
	return nil
}

// ModifyPosition applies a single absolute quantity change.
func (o *Order) ModifyPosition(position *Position, product *productsdomain.Product) *validation.Message {
	switch o.applyModify(position, product) {
	case outcomeSuccess:
		return nil
	case outcomeNotFound:
		return PositionNotFoundMessage(o.ID, product.ID)
	case outcomeNotAvailable:
		return productsdomain.NotAvailableMessage(product.ID)
	default:
		return InvalidPositionMessage()
	}
}

func (o *Order) applyAdd(position *Position, product *productsdomain.Product) positionOutcome {
	if position == nil {
		return outcomeInvalid
	}
	if product == nil {
		return outcomeNotFound
	}
	if !product.DecreaseStock(position.Quantity) {
		return outcomeNotAvailable
	}

	item := o.findItem(position.ProductID)
	if item == nil {
		item = &OrderItem{
			ProductID: position.ProductID,
			Quantity:  position.Quantity,
			Price:     product.Price,
			Product:   product,
		}
		o.Items = append(o.Items, item)
	} else {
		item.Quantity += position.Quantity
	}

	o.TotalPrice = o.TotalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(position.Quantity))))
	return outcomeSuccess
}

func (o *Order) applyRemove(productID int, product *productsdomain.Product) positionOutcome {
	if product == nil {
		return outcomeInvalid
	}

	// Snapshot the matches first: construction keeps at most one item per
	// product, but removal tolerates duplicates from older data.
	var matches []*OrderItem
	for _, item := range o.Items {
		if item.ProductID == productID {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return outcomeNotFound
	}

	for _, item := range matches {
		o.deleteItem(item)
		o.TotalPrice = o.TotalPrice.Sub(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		product.IncreaseStock(item.Quantity)
	}
	return outcomeSuccess
}

func (o *Order) applyModify(position *Position, product *productsdomain.Product) positionOutcome {
	if position == nil {
		return outcomeInvalid
	}
	if product == nil {
		return outcomeNotFound
	}
	item := o.findItem(position.ProductID)
	if item == nil {
		return outcomeNotFound
	}

	diff := position.Quantity - item.Quantity
	if diff == 0 {
		return outcomeSuccess
	}
	if diff > 0 {
		if !product.DecreaseStock(diff) {
			return outcomeNotAvailable
		}
	} else {
		product.IncreaseStock(-diff)
	}

	o.TotalPrice = o.TotalPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(diff))))
	item.Quantity = position.Quantity
	return outcomeSuccess
}

func (o *Order) findItem(productID int) *OrderItem {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (o *Order) deleteItem(target *OrderItem) {
	for i, item := range o.Items {
		if item == target {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return
		}
	}
}
