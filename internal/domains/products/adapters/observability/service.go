// Package observability decorates the products service with tracing and
// structured logging.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	productports "github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

const tracerName = "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/observability/service"

// Service decorates the products service with tracing and logging.
type Service struct {
	inner  productports.Service
	tracer trace.Tracer
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// New wraps the core products service.
func New(inner productports.Service, opts ...Option) productports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Create(ctx context.Context, input productports.ProductInput) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create",
		trace.WithAttributes(attribute.String("product.name", input.Name), attribute.Bool("product.digital", input.IsDigital)))
	defer span.End()

	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", input.Name))
	}
	s.logInfo(ctx, "product created", slog.Int("product.id", result.ID), slog.String("product.name", result.Name))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetByID", trace.WithAttributes(attribute.Int("product.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int("product.id", id))
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("product.count", len(result)))
	return result, nil
}

func (s *Service) Update(ctx context.Context, input productports.ProductInput) (*domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.Int("product.id", input.ID)))
	defer span.End()

	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.Int("product.id", input.ID))
	}
	s.logInfo(ctx, "product updated", slog.Int("product.id", result.ID))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.Int("product.id", id)))
	defer span.End()

	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.Int("product.id", id))
	}
	s.logInfo(ctx, "product deleted", slog.Int("product.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

var _ productports.Service = (*Service)(nil)
