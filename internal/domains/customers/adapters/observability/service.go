// Package observability decorates the customers service with structured
// logging.
package observability

import (
	"context"
	"log/slog"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	customerports "github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
)

// Service decorates the customers service with logging.
type Service struct {
	inner  customerports.Service
	logger *slog.Logger
}

// New wraps the core customers service. A nil logger disables logging.
func New(inner customerports.Service, logger *slog.Logger) customerports.Service {
	return &Service{inner: inner, logger: logger}
}

func (s *Service) Create(ctx context.Context, input customerports.CustomerInput) (*domain.Customer, error) {
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		s.logError(ctx, "failed to create customer", err)
		return nil, err
	}
	s.logInfo(ctx, "customer created", slog.Int("customer.id", result.ID))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		s.logError(ctx, "failed to load customer", err, slog.Int("customer.id", id))
		return nil, err
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	result, err := s.inner.List(ctx)
	if err != nil {
		s.logError(ctx, "failed to list customers", err)
		return nil, err
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, input customerports.CustomerInput) (*domain.Customer, error) {
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		s.logError(ctx, "failed to update customer", err, slog.Int("customer.id", input.ID))
		return nil, err
	}
	s.logInfo(ctx, "customer updated", slog.Int("customer.id", result.ID))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		s.logError(ctx, "failed to delete customer", err, slog.Int("customer.id", id))
		return err
	}
	s.logInfo(ctx, "customer deleted", slog.Int("customer.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

var _ customerports.Service = (*Service)(nil)
