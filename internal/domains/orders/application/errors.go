package application

import (
	"errors"
	"fmt"

	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

var (
	// ErrNotFound signals the order or one of its positions does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrInvalidInput signals the request violated a business rule.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrConflict signals an idempotency key was reused with a different payload.
	ErrConflict = errors.New("order request conflict")
)

func notFound(msg *validation.Message) error {
	return fmt.Errorf("%w: %w", ErrNotFound, msg)
}

func invalid(msg *validation.Message) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, msg)
}

func conflict(err error) error {
	return fmt.Errorf("%w: %w", ErrConflict, err)
}
