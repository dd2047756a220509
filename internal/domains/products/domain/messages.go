package domain

import (
	"fmt"

	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// Coded messages for product business-rule failures. Codes are part of the
// API contract; clients branch on them.

func NotFoundMessage(id int) *validation.Message {
	return validation.Newf("PRODUCT_NOT_FOUND", "Product with id '%d' was not found.", id).
		WithParam("id", id)
}

func ProductsNotFoundMessage(missingProductIDs []int) *validation.Message {
	return validation.Newf("PRODUCTS_NOT_FOUND", "Products with IDs %s were not found.", formatIDs(missingProductIDs)).
		WithParam("missingProductIds", missingProductIDs)
}

func ProductsNotAvailableMessage(notAvailableProductIDs []int) *validation.Message {
	return validation.Newf("PRODUCTS_NOT_AVAILABLE", "Products with IDs %s are not available.", formatIDs(notAvailableProductIDs)).
		WithParam("notAvailableProductIds", notAvailableProductIDs)
}

func NotAvailableMessage(productID int) *validation.Message {
	return validation.Newf("PRODUCT_NOT_AVAILABLE", "Product with id '%d' is not available.", productID).
		WithParam("id", productID)
}

func PriceMustBeGreaterThanZeroMessage(productID int) *validation.Message {
	return validation.Newf("PRODUCT_PRICE_MUST_BE_GREATER_THAN_ZERO",
		"The price of the product with id '%d' must be greater than zero.", productID).
		WithParam("productId", productID)
}

func NameCannotBeEmptyMessage(productID int) *validation.Message {
	return validation.Newf("PRODUCT_NAME_CANNOT_BE_EMPTY",
		"The product with id '%d' cannot have an empty name.", productID).
		WithParam("productId", productID)
}

func NameTooLongMessage(expectedLength, currentLength int) *validation.Message {
	return validation.Newf("PRODUCT_NAME_TOO_LONG",
		"The product has a name that is too long. Expected length: %d, actual length: %d.", expectedLength, currentLength).
		WithParam("expectedLength", expectedLength).
		WithParam("currentLength", currentLength)
}

func StockMustBePresentMessage(productID int) *validation.Message {
	return validation.Newf("PRODUCT_STOCK_MUST_BE_PRESENT",
		"The product with id '%d' must have stock information present.", productID).
		WithParam("productId", productID)
}

func StockQuantityMustBeGreaterThanZeroMessage(productID, quantity int) *validation.Message {
	return validation.Newf("PRODUCT_STOCK_QUANTITY_MUST_BE_GREATER_THAN_ZERO",
		"The product with id '%d' has an invalid stock quantity '%d'. It must be greater than zero.", productID, quantity).
		WithParam("productId", productID).
		WithParam("quantity", quantity)
}

func CannotDeleteOrderedProductMessage(productID int) *validation.Message {
	return validation.Newf("PRODUCT_CANNOT_DELETE_ORDERED_PRODUCT",
		"Product with ID '%d' cannot be deleted because it is part of an order.", productID).
		WithParam("productId", productID)
}

func formatIDs(ids []int) string {
	out := "["
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", id)
	}
	return out + "]"
}
