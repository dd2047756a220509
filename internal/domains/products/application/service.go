// Package application hosts the product catalog use cases.
package application

import (
	"context"
	"strings"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/products/ports"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo  ports.Repository
	usage ports.UsageChecker
}

// NewService wires the products service with its dependencies.
func NewService(repo ports.Repository, usage ports.UsageChecker) *Service {
	return &Service{repo: repo, usage: usage}
}

// Create validates and persists a new product. Physical products must declare
// a positive stock quantity; digital products never carry stock.
func (s *Service) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if msg := validateInput(input); msg != nil {
		return nil, invalid(msg)
	}
	product := &domain.Product{
		Name:      input.Name,
		Price:     input.Price,
		IsDigital: input.IsDigital,
	}
	if !input.IsDigital {
		product.Stock = &domain.Stock{Quantity: *input.StockQuantity}
	}
	saved, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetByID loads a single product with its stock.
func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// Update overrides an existing product. Switching a product to digital drops
// its stock row; switching to physical adopts the supplied quantity.
func (s *Service) Update(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if msg := validateInput(input); msg != nil {
		return nil, invalid(msg)
	}
	product, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	product.Name = input.Name
	product.Price = input.Price
	product.IsDigital = input.IsDigital
	if input.IsDigital {
		product.Stock = nil
	} else {
		if product.Stock == nil {
			product.Stock = &domain.Stock{ProductID: product.ID}
		}
		product.Stock.Quantity = *input.StockQuantity
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// Delete removes a product unless it appears in any order.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return mapError(err)
	}
	inUse, err := s.usage.ProductInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return invalid(domain.CannotDeleteOrderedProductMessage(id))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func validateInput(input ports.ProductInput) *validation.Message {
	if !input.Price.IsPositive() {
		return domain.PriceMustBeGreaterThanZeroMessage(input.ID)
	}
	if strings.TrimSpace(input.Name) == "" {
		return domain.NameCannotBeEmptyMessage(input.ID)
	}
	if len(input.Name) > domain.MaxNameLength {
		return domain.NameTooLongMessage(domain.MaxNameLength, len(input.Name))
	}
	if input.IsDigital {
		return nil
	}
	if input.StockQuantity == nil {
		return domain.StockMustBePresentMessage(input.ID)
	}
	if *input.StockQuantity <= 0 {
		return domain.StockQuantityMustBeGreaterThanZeroMessage(input.ID, *input.StockQuantity)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
