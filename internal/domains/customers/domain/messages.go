package domain

import "github.com/ordermanager/order-manager-api/internal/shared/validation"

func NotFoundMessage(id int) *validation.Message {
	return validation.Newf("CUSTOMER_NOT_FOUND", "Customer with id '%d' was not found.", id).
		WithParam("id", id)
}

func CannotDeleteWithOrdersMessage(customerID int) *validation.Message {
	return validation.Newf("CUSTOMER_CANNOT_DELETE_WITH_ORDERS",
		"Customer with id '%d' cannot be deleted because of existing orders.", customerID)
}

func FirstNameCannotBeEmptyMessage(customerID int) *validation.Message {
	return validation.Newf("CUSTOMER_FIRST_NAME_CANNOT_BE_EMPTY",
		"The customer with id '%d' cannot have an empty first name.", customerID).
		WithParam("customerId", customerID)
}

func LastNameCannotBeEmptyMessage(customerID int) *validation.Message {
	return validation.Newf("CUSTOMER_LAST_NAME_CANNOT_BE_EMPTY",
		"The customer with id '%d' cannot have an empty last name.", customerID).
		WithParam("customerId", customerID)
}

func FirstNameTooLongMessage(expectedLength, currentLength int) *validation.Message {
	return validation.Newf("CUSTOMER_FIRST_NAME_TOO_LONG",
		"The customer has too long first name. Expected length: %d, actual length: %d.", expectedLength, currentLength).
		WithParam("expectedLength", expectedLength).
		WithParam("currentLength", currentLength)
}

func LastNameTooLongMessage(expectedLength, currentLength int) *validation.Message {
	return validation.Newf("CUSTOMER_LAST_NAME_TOO_LONG",
		"The customer has too long last name. Expected length: %d, actual length: %d.", expectedLength, currentLength).
		WithParam("expectedLength", expectedLength).
		WithParam("currentLength", currentLength)
}

func InvalidEmailMessage(email string) *validation.Message {
	return validation.Newf("CUSTOMER_INVALID_EMAIL", "The email '%s' is not a valid address.", email).
		WithParam("email", email)
}
