// Package domain models the product catalog and its stock ledger.
package domain

import "github.com/shopspring/decimal"

// MaxNameLength bounds product names.
const MaxNameLength = 200

// Stock tracks the remaining quantity of a physical product.
type Stock struct {
	ProductID int
	Quantity  int
}

// Product is the catalog aggregate. Digital products never carry stock;
// physical products own exactly one Stock row.
type Product struct {
	ID        int
	Name      string
	Price     decimal.Decimal
	IsDigital bool
	Stock     *Stock
}

// HasStock reports whether the product is physical and has units left.
func (p *Product) HasStock() bool {
	return !p.IsDigital && p.Stock != nil && p.Stock.Quantity > 0
}

// IncreaseStock returns units to the ledger. Digital products are a no-op.
func (p *Product) IncreaseStock(quantity int) {
	if p.IsDigital {
		return
	}
	p.Stock.Quantity += quantity
}

// DecreaseStock takes units from the ledger. Digital products always succeed
// without touching anything. A physical decrement fails when there is no stock
// or when it would leave the quantity at or below zero, so the last unit is
// never sellable. That boundary matches the historical ledger behavior and is
// pending product-owner review; see DESIGN.md before changing it.
func (p *Product) DecreaseStock(quantity int) bool {
	if p.IsDigital {
		return true
	}
	if !p.HasStock() {
		return false
	}
	if p.Stock.Quantity-quantity <= 0 {
		return false
	}
	p.Stock.Quantity -= quantity
	return true
}
