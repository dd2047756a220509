package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
)

type normalizedCreateOrderInput struct {
	CustomerID int                  `json:"customerId"`
	Positions  []normalizedPosition `json:"positions"`
}

type normalizedPosition struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// FingerprintCreateOrder builds a deterministic hash of the create-order
// payload (excluding the idempotency key), so retries with the same key can be
// told apart from key reuse.
func FingerprintCreateOrder(input ordertypes.CreateOrderInput) (string, error) {
	normalized := normalizedCreateOrderInput{CustomerID: input.CustomerID}
	for _, position := range input.Positions {
		if position == nil {
			continue
		}
		normalized.Positions = append(normalized.Positions, normalizedPosition{
			ProductID: position.ProductID,
			Quantity:  position.Quantity,
		})
	}
	sort.Slice(normalized.Positions, func(i, j int) bool {
		return normalized.Positions[i].ProductID < normalized.Positions[j].ProductID
	})
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
