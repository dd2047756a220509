package application

import (
	"errors"
	"fmt"

	"github.com/ordermanager/order-manager-api/internal/domains/products/ports"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

var (
	// ErrNotFound signals the product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidInput signals the request violated a business rule.
	ErrInvalidInput = errors.New("invalid product input")
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
