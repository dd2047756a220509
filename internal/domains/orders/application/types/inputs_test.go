package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
)

func TestCollapsePositions_SumsDuplicates(t *testing.T) {
	out := CollapsePositions([]*domain.Position{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})

	require.Len(t, out, 2)
	assert.Equal(t, &domain.Position{ProductID: 1, Quantity: 5}, out[0])
	assert.Equal(t, &domain.Position{ProductID: 2, Quantity: 1}, out[1])
}

func TestCollapsePositions_KeepsNilEntries(t *testing.T) {
	out := CollapsePositions([]*domain.Position{{ProductID: 1, Quantity: 1}, nil})

	require.Len(t, out, 2)
	assert.Nil(t, out[1])
}

func TestCollapsePositions_NilInput(t *testing.T) {
	assert.Nil(t, CollapsePositions(nil))
}

func TestNewCreateOrderInput_Collapses(t *testing.T) {
	input := NewCreateOrderInput(7, []*domain.Position{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	}, "key-1")

	require.Len(t, input.Positions, 1)
	assert.Equal(t, 2, input.Positions[0].Quantity)
	assert.Equal(t, 7, input.CustomerID)
	assert.Equal(t, "key-1", input.IdempotencyKey)
}
