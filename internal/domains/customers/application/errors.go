package application

import (
	"errors"
	"fmt"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

var (
	// ErrNotFound signals the customer does not exist.
	ErrNotFound = errors.New("customer not found")
	// ErrInvalidInput signals the request violated a business rule.
	ErrInvalidInput = errors.New("invalid customer input")
)

func invalid(msg *validation.Message) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, msg)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
