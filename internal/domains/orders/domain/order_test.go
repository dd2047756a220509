package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
)

func physicalProduct(id int, price int64, stock int) *productsdomain.Product {
	return &productsdomain.Product{
		ID:    id,
		Name:  "product",
		Price: decimal.NewFromInt(price),
		Stock: &productsdomain.Stock{ProductID: id, Quantity: stock},
	}
}

func digitalProduct(id int, price int64) *productsdomain.Product {
	return &productsdomain.Product{
		ID:        id,
		Name:      "digital product",
		Price:     decimal.NewFromInt(price),
		IsDigital: true,
	}
}

func newOrder() *Order {
	return &Order{ID: 1, Number: "ord-1", Status: StatusNew}
}

func productMap(products ...*productsdomain.Product) map[int]*productsdomain.Product {
	m := make(map[int]*productsdomain.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

func TestAddPosition_NewItem(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 8)

	msg := order.AddPosition(&Position{ProductID: 10, Quantity: 3}, product)
	require.Nil(t, msg)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(300)), "total %s", order.TotalPrice)
	assert.Equal(t, 5, product.Stock.Quantity)
}

func TestAddPosition_MergesWithLockedPrice(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 20)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 2}, product))

	// a later price change must not affect the locked-in item price
	product.Price = decimal.NewFromInt(999)
	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 3}, product))

	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(500)), "total %s", order.TotalPrice)
	assert.Equal(t, 15, product.Stock.Quantity)
}

func TestAddPosition_UnknownProduct(t *testing.T) {
	order := newOrder()

	msg := order.AddPosition(&Position{ProductID: 10, Quantity: 1}, nil)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_NOT_FOUND", msg.Code)
	assert.Empty(t, order.Items)
}

func TestAddPosition_NotAvailable(t *testing.T) {
	order := newOrder()
	// decrementing to zero is rejected, so quantity 2 of 2 is unavailable
	product := physicalProduct(10, 100, 2)

	msg := order.AddPosition(&Position{ProductID: 10, Quantity: 2}, product)
	require.NotNil(t, msg)
	assert.Equal(t, "PRODUCT_NOT_AVAILABLE", msg.Code)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalPrice.IsZero())
	assert.Equal(t, 2, product.Stock.Quantity)
}

func TestAddPosition_NilPosition(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 5)

	msg := order.AddPosition(nil, product)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_INVALID_POSITION_WHILE_ADD_OR_UPDATE", msg.Code)
}

func TestAddPosition_Digital(t *testing.T) {
	order := newOrder()
	product := digitalProduct(20, 200)

	require.Nil(t, order.AddPosition(&Position{ProductID: 20, Quantity: 4}, product))
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(800)), "total %s", order.TotalPrice)
	assert.Nil(t, product.Stock)
}

func TestAddPositions_NotFoundTakesPrecedence(t *testing.T) {
	order := newOrder()
	available := physicalProduct(1, 100, 10)
	depleted := physicalProduct(2, 50, 1)

	msg := order.AddPositions([]*Position{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 1},
	}, productMap(available, depleted))

	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITIONS_NOT_FOUND", msg.Code)
	assert.Equal(t, []int{3}, msg.Params["notFoundPositions"])

	// the successful position stays applied in memory
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].ProductID)
	assert.Equal(t, 8, available.Stock.Quantity)
}

func TestAddPositions_NotAvailableAggregated(t *testing.T) {
	order := newOrder()
	first := physicalProduct(1, 100, 1)
	second := physicalProduct(2, 50, 2)

	msg := order.AddPositions([]*Position{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 2},
	}, productMap(first, second))

	require.NotNil(t, msg)
	assert.Equal(t, "PRODUCTS_NOT_AVAILABLE", msg.Code)
	assert.Equal(t, []int{1, 2}, msg.Params["notAvailableProductIds"])
	assert.Empty(t, order.Items)
}

func TestAddPositions_NilEntryAborts(t *testing.T) {
	order := newOrder()
	product := physicalProduct(1, 100, 10)

	msg := order.AddPositions([]*Position{
		{ProductID: 1, Quantity: 2},
		nil,
		{ProductID: 1, Quantity: 1},
	}, productMap(product))

	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_INVALID_POSITIONS_WHILE_ADD_OR_UPDATE", msg.Code)
	// the first position was already applied when the batch aborted
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestRemovePosition_RestoresStockAndTotal(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 3}, product))
	require.Nil(t, order.RemovePosition(10, product))

	assert.Empty(t, order.Items)
	assert.True(t, order.TotalPrice.IsZero(), "total %s", order.TotalPrice)
	assert.Equal(t, 10, product.Stock.Quantity)
}

func TestRemovePosition_NotPartOfOrder(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	msg := order.RemovePosition(10, product)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_NOT_FOUND", msg.Code)
}

func TestRemovePosition_NilProduct(t *testing.T) {
	order := newOrder()

	msg := order.RemovePosition(10, nil)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_INVALID_POSITION_WHILE_ADD_OR_UPDATE", msg.Code)
}

func TestRemovePositions_AggregatesMissing(t *testing.T) {
	order := newOrder()
	kept := physicalProduct(1, 100, 10)
	known := physicalProduct(2, 50, 10)

	require.Nil(t, order.AddPosition(&Position{ProductID: 1, Quantity: 2}, kept))

	// 2 is a known product but not part of the order, 3 is unknown entirely
	msg := order.RemovePositions([]int{1, 2, 3}, productMap(kept, known))
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITIONS_NOT_FOUND", msg.Code)
	assert.Equal(t, []int{2, 3}, msg.Params["notFoundPositions"])
	assert.Empty(t, order.Items)
}

func TestModifyPosition_SameQuantityIsNoOp(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 3}, product))
	require.Nil(t, order.ModifyPosition(&Position{ProductID: 10, Quantity: 3}, product))

	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, 7, product.Stock.Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(300)))
}

func TestModifyPosition_IncreaseUsesLockedPrice(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 2}, product))
	product.Price = decimal.NewFromInt(999)
	require.Nil(t, order.ModifyPosition(&Position{ProductID: 10, Quantity: 5}, product))

	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(500)), "total %s", order.TotalPrice)
	assert.Equal(t, 5, product.Stock.Quantity)
}

func TestModifyPosition_DecreaseRestoresStock(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 5}, product))
	require.Nil(t, order.ModifyPosition(&Position{ProductID: 10, Quantity: 2}, product))

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 8, product.Stock.Quantity)
}

func TestModifyPosition_NotAvailable(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 4)

	require.Nil(t, order.AddPosition(&Position{ProductID: 10, Quantity: 1}, product))
	// remaining stock is 3; growing by 3 would deplete it, which is rejected
	msg := order.ModifyPosition(&Position{ProductID: 10, Quantity: 4}, product)
	require.NotNil(t, msg)
	assert.Equal(t, "PRODUCT_NOT_AVAILABLE", msg.Code)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 3, product.Stock.Quantity)
}

func TestModifyPosition_NotPartOfOrder(t *testing.T) {
	order := newOrder()
	product := physicalProduct(10, 100, 10)

	msg := order.ModifyPosition(&Position{ProductID: 10, Quantity: 2}, product)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_NOT_FOUND", msg.Code)
}

func TestModifyPositions_MixedFailures(t *testing.T) {
	order := newOrder()
	first := physicalProduct(1, 100, 10)
	second := physicalProduct(2, 50, 10)

	require.Nil(t, order.AddPositions([]*Position{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 2},
	}, productMap(first, second)))

	msg := order.ModifyPositions([]*Position{
		{ProductID: 1, Quantity: 4},
		{ProductID: 3, Quantity: 1},
	}, productMap(first, second))

	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITIONS_NOT_FOUND", msg.Code)
	// the in-range modification was applied before the failure was reported
	assert.Equal(t, 4, order.Items[0].Quantity)
	assert.Equal(t, 4, first.Stock.Quantity)
}

func TestTotalPriceMatchesItems(t *testing.T) {
	order := newOrder()
	laptop := physicalProduct(1, 8000, 100)
	phone := physicalProduct(2, 4000, 50)
	course := digitalProduct(3, 200)

	require.Nil(t, order.AddPositions([]*Position{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 3},
	}, productMap(laptop, phone, course)))
	require.Nil(t, order.ModifyPosition(&Position{ProductID: 2, Quantity: 4}, phone))
	require.Nil(t, order.RemovePosition(1, laptop))

	expected := decimal.Zero
	for _, item := range order.Items {
		expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	assert.True(t, order.TotalPrice.Equal(expected), "total %s expected %s", order.TotalPrice, expected)
}
