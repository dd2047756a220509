// Package application hosts the customer directory use cases.
package application

import (
	"context"
	"strings"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

// Service orchestrates directory use cases.
type Service struct {
	repo   ports.Repository
	orders ports.OrderChecker
}

// NewService wires the customers service with its dependencies.
func NewService(repo ports.Repository, orders ports.OrderChecker) *Service {
	return &Service{repo: repo, orders: orders}
}

func (s *Service) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	if msg := validateInput(input); msg != nil {
		return nil, invalid(msg)
	}
	customer := &domain.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	saved, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return customers, nil
}

func (s *Service) Update(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	if msg := validateInput(input); msg != nil {
		return nil, invalid(msg)
	}
	customer, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, mapError(err)
	}
	return customer, nil
}

// Delete removes a customer unless they own any order.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return mapError(err)
	}
	hasOrders, err := s.orders.ExistsForCustomer(ctx, id)
	if err != nil {
		return err
	}
	if hasOrders {
		return invalid(domain.CannotDeleteWithOrdersMessage(id))
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func validateInput(input ports.CustomerInput) *validation.Message {
	if strings.TrimSpace(input.FirstName) == "" {
		return domain.FirstNameCannotBeEmptyMessage(input.ID)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return domain.LastNameCannotBeEmptyMessage(input.ID)
	}
	if len(input.FirstName) > domain.MaxNameLength {
		return domain.FirstNameTooLongMessage(domain.MaxNameLength, len(input.FirstName))
	}
	if len(input.LastName) > domain.MaxNameLength {
		return domain.LastNameTooLongMessage(domain.MaxNameLength, len(input.LastName))
	}
	if !domain.ValidEmail(input.Email) {
		return domain.InvalidEmailMessage(input.Email)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
