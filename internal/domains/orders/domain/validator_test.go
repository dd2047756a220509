package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionsNotEmpty(t *testing.T) {
	msg := PositionsNotEmpty(nil)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_MUST_CONTAIN_AT_LEAST_ONE_ITEM", msg.Code)

	assert.Nil(t, PositionsNotEmpty([]*Position{{ProductID: 1, Quantity: 1}}))
}

func TestValidatePosition_Nil(t *testing.T) {
	msg := ValidatePosition(nil)
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_MUST_BE_PRESENT", msg.Code)
}

func TestValidatePosition_NonPositiveQuantity(t *testing.T) {
	msg := ValidatePosition(&Position{ProductID: 7, Quantity: 0})
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_QUANTITY_MUST_BE_GREATER_THAN_ZERO", msg.Code)
	assert.Equal(t, 7, msg.Params["productId"])
}

func TestValidatePositions_AggregatesOffenders(t *testing.T) {
	msg := ValidatePositions([]*Position{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 0},
		{ProductID: 3, Quantity: -4},
	})
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITIONS_QUANTITY_MUST_BE_GREATER_THAN_ZERO", msg.Code)
	require.Contains(t, msg.Params, "invalidItems")
}

func TestValidatePositions_NilEntryFailsFast(t *testing.T) {
	msg := ValidatePositions([]*Position{{ProductID: 1, Quantity: 1}, nil})
	require.NotNil(t, msg)
	assert.Equal(t, "ORDER_POSITION_MUST_BE_PRESENT", msg.Code)
}

func TestCanModifyOrDelete(t *testing.T) {
	assert.True(t, CanModifyOrDelete(&Order{Status: StatusNew}))
	assert.False(t, CanModifyOrDelete(&Order{Status: StatusInProgress}))
	assert.False(t, CanModifyOrDelete(&Order{Status: StatusCompleted}))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusNew))
	assert.True(t, IsValidStatus(StatusInProgress))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus("shipped"))
}
