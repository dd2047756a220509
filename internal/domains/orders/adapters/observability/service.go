// Package observability decorates the orders service with tracing, logging,
// and metrics.
package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	orderports "github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
)

const tracerName = "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
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

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core orders service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
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

func (s *Service) Create(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create",
		trace.WithAttributes(
			attribute.Int("order.customer_id", input.CustomerID),
			attribute.Int("order.position_count", len(input.Positions)),
		))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.Int("customer.id", input.CustomerID), slog.Int("positions", len(input.Positions)))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.Int("customer.id", input.CustomerID))
	}
	s.metrics.recordCreated(ctx, result.Status)
	s.logInfo(ctx, "order created", slog.Int("order.id", result.ID), slog.String("order.number", result.Number))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID", trace.WithAttributes(attribute.Int("order.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int("order.id", id))
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(result)))
	return result, nil
}

func (s *Service) Update(ctx context.Context, input ordertypes.UpdateOrderInput) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int("order.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int("order.id", input.ID))
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int("order.id", input.ID))
	}
	s.logInfo(ctx, "order updated", slog.Int("order.id", result.ID), slog.Int("items", len(result.Items)))
	return result, nil
}

func (s *Service) AddPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.AddPosition", trace.WithAttributes(attribute.Int("order.id", orderID)))
	defer span.End()

	result, err := s.inner.AddPosition(ctx, orderID, position)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add position", slog.Int("order.id", orderID))
	}
	s.metrics.recordPositionChange(ctx, "add")
	return result, nil
}

func (s *Service) ModifyPositions(ctx context.Context, orderID int, positions []*domain.Position) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ModifyPositions",
		trace.WithAttributes(attribute.Int("order.id", orderID), attribute.Int("order.position_count", len(positions))))
	defer span.End()

	result, err := s.inner.ModifyPositions(ctx, orderID, positions)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to modify positions", slog.Int("order.id", orderID))
	}
	s.metrics.recordPositionChange(ctx, "modify")
	return result, nil
}

func (s *Service) ModifyPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ModifyPosition", trace.WithAttributes(attribute.Int("order.id", orderID)))
	defer span.End()

	result, err := s.inner.ModifyPosition(ctx, orderID, position)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to modify position", slog.Int("order.id", orderID))
	}
	s.metrics.recordPositionChange(ctx, "modify")
	return result, nil
}

func (s *Service) RemovePosition(ctx context.Context, orderID, productID int) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.RemovePosition",
		trace.WithAttributes(attribute.Int("order.id", orderID), attribute.Int("product.id", productID)))
	defer span.End()

	result, err := s.inner.RemovePosition(ctx, orderID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove position",
			slog.Int("order.id", orderID), slog.Int("product.id", productID))
	}
	s.metrics.recordPositionChange(ctx, "remove")
	return result, nil
}

func (s *Service) ChangeStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ChangeStatus",
		trace.WithAttributes(attribute.Int("order.id", id), attribute.String("order.status", string(status))))
	defer span.End()

	s.logInfo(ctx, "changing order status", slog.Int("order.id", id), slog.String("status", string(status)))
	result, err := s.inner.ChangeStatus(ctx, id, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change order status", slog.Int("order.id", id))
	}
	s.metrics.recordStatusChange(ctx, result.Status)
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int("order.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int("order.id", id))
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
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated   metric.Int64Counter
	ordersDeleted   metric.Int64Counter
	statusChanges   metric.Int64Counter
	positionChanges metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.orders_created", metric.WithDescription("Number of orders created"))
	ordersDeleted, _ := m.Int64Counter("orders.service.orders_deleted", metric.WithDescription("Number of orders deleted"))
	statusChanges, _ := m.Int64Counter("orders.service.status_changes", metric.WithDescription("Number of order status changes"))
	positionChanges, _ := m.Int64Counter("orders.service.position_changes", metric.WithDescription("Number of order position mutations"))
	return serviceMetrics{
		ordersCreated:   ordersCreated,
		ordersDeleted:   ordersDeleted,
		statusChanges:   statusChanges,
		positionChanges: positionChanges,
	}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status domain.Status) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordStatusChange(ctx context.Context, status domain.Status) {
	if m.statusChanges != nil {
		m.statusChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

func (m serviceMetrics) recordPositionChange(ctx context.Context, kind string) {
	if m.positionChanges != nil {
		m.positionChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("order.mutation", kind)))
	}
}

var _ orderports.Service = (*Service)(nil)
