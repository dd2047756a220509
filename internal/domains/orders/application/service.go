// Package application hosts the order use cases. Every position mutation
// follows the same shape: validate the request, load the aggregate, check the
// status gate, resolve the touched products, run the aggregate state machine,
// and persist order and products only when the whole mutation succeeded.
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	customerports "github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	ordertypes "github.com/ordermanager/order-manager-api/internal/domains/orders/application/types"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	productports "github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

// orderNumberLength is how much of the generated UUID ends up in the order number.
const orderNumberLength = 10

// Service orchestrates the orders bounded context use cases.
type Service struct {
	repo        ports.Repository
	products    productports.Repository
	customers   customerports.Repository
	idempotency ports.IdempotencyStore
}

// NewService wires the orders service with its dependencies. The idempotency
// store may be nil, which disables idempotent creates.
func NewService(repo ports.Repository, products productports.Repository, customers customerports.Repository, idempotency ports.IdempotencyStore) *Service {
	return &Service{repo: repo, products: products, customers: customers, idempotency: idempotency}
}

// Create places a new order: positions are validated up front, the customer
// must exist, and the fresh aggregate absorbs the positions before anything is
// persisted. With an idempotency key, a replay of the same payload returns the
// previously created order and a different payload is rejected.
func (s *Service) Create(ctx context.Context, input ordertypes.CreateOrderInput) (*domain.Order, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	var requestHash string
	if key != "" && s.idempotency != nil {
		hash, err := FingerprintCreateOrder(input)
		if err != nil {
			return nil, err
		}
		requestHash = hash
		record, err := s.idempotency.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if record != nil {
			if record.RequestHash != requestHash {
				return nil, conflict(ports.ErrIdempotencyConflict)
			}
			return s.GetByID(ctx, record.OrderID)
		}
	}

	if msg := domain.PositionsNotEmpty(input.Positions); msg != nil {
		return nil, invalid(msg)
	}
	if msg := domain.ValidatePositions(input.Positions); msg != nil {
		return nil, invalid(msg)
	}

	customer, err := s.loadCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	products, err := s.resolveProducts(ctx, positionProductIDs(input.Positions))
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Number:     uuid.NewString()[:orderNumberLength],
		Status:     domain.StatusNew,
		CreatedAt:  time.Now().UTC(),
		CustomerID: customer.ID,
		Customer:   customer,
	}
	if msg := order.AddPositions(input.Positions, products); msg != nil {
		return nil, invalid(msg)
	}

	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, products); err != nil {
		return nil, err
	}

	if key != "" && s.idempotency != nil {
		record := ports.IdempotencyRecord{Key: key, RequestHash: requestHash, OrderID: saved.ID}
		if _, err := s.idempotency.Save(ctx, record); err != nil {
			if errors.Is(err, ports.ErrIdempotencyConflict) {
				return nil, conflict(err)
			}
			return nil, err
		}
	}
	return saved, nil
}

// GetByID loads the full aggregate with customer and positions.
func (s *Service) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	return s.loadDetails(ctx, id)
}

// List returns bare order summaries without items.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// Update is the bulk mutation: add new positions, remove others, and reassign
// the customer in one pass over the loaded aggregate.
func (s *Service) Update(ctx context.Context, input ordertypes.UpdateOrderInput) (*domain.Order, error) {
	if msg := domain.ValidatePositions(input.NewPositions); msg != nil {
		return nil, invalid(msg)
	}

	order, err := s.loadDetails(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyOrDelete(order) {
		return nil, invalid(domain.MustBeNewToModifyMessage())
	}

	customer, err := s.loadCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	productIDs := positionProductIDs(input.NewPositions)
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.resolveProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	if msg := order.AddPositions(input.NewPositions, products); msg != nil {
		return nil, invalid(msg)
	}
	if msg := order.RemovePositions(input.RemoveProductIDs, products); msg != nil {
		return nil, invalid(msg)
	}

	order.CustomerID = customer.ID
	order.Customer = customer
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, products); err != nil {
		return nil, err
	}
	return order, nil
}

// AddPosition appends or grows a single position on an open order.
func (s *Service) AddPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error) {
	if msg := domain.ValidatePosition(position); msg != nil {
		return nil, invalid(msg)
	}

	order, err := s.loadDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyOrDelete(order) {
		return nil, invalid(domain.MustBeNewToModifyMessage())
	}

	product, err := s.loadProduct(ctx, position.ProductID)
	if err != nil {
		return nil, err
	}
	if msg := order.AddPosition(position, product); msg != nil {
		return nil, invalid(msg)
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, singleProduct(product)); err != nil {
		return nil, err
	}
	return order, nil
}

// ModifyPositions sets absolute quantities for a batch of positions that must
// all already be part of the order.
func (s *Service) ModifyPositions(ctx context.Context, orderID int, positions []*domain.Position) (*domain.Order, error) {
	if msg := domain.PositionsNotEmpty(positions); msg != nil {
		return nil, invalid(msg)
	}
	if msg := domain.ValidatePositions(positions); msg != nil {
		return nil, invalid(msg)
	}

	order, err := s.loadDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyOrDelete(order) {
		return nil, invalid(domain.MustBeNewToModifyMessage())
	}

	if missing := missingFromOrder(positions, order); len(missing) > 0 {
		return nil, invalid(domain.PositionsNotFoundMessage(orderID, missing))
	}

	products, err := s.resolveProducts(ctx, positionProductIDs(positions))
	if err != nil {
		return nil, err
	}
	if msg := order.ModifyPositions(positions, products); msg != nil {
		return nil, invalid(msg)
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, products); err != nil {
		return nil, err
	}
	return order, nil
}

// ModifyPosition sets the absolute quantity of a single position.
func (s *Service) ModifyPosition(ctx context.Context, orderID int, position *domain.Position) (*domain.Order, error) {
	if msg := domain.ValidatePosition(position); msg != nil {
		return nil, invalid(msg)
	}

	order, err := s.loadDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyOrDelete(order) {
		return nil, invalid(domain.MustBeNewToModifyMessage())
	}
	if !orderContainsProduct(order, position.ProductID) {
		return nil, notFound(domain.PositionNotFoundMessage(orderID, position.ProductID))
	}

	product, err := s.loadProduct(ctx, position.ProductID)
	if err != nil {
		return nil, err
	}
	if msg := order.ModifyPosition(position, product); msg != nil {
		return nil, invalid(msg)
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, singleProduct(product)); err != nil {
		return nil, err
	}
	return order, nil
}

// RemovePosition drops a single position and returns its units to stock.
func (s *Service) RemovePosition(ctx context.Context, orderID, productID int) (*domain.Order, error) {
	order, err := s.loadDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanModifyOrDelete(order) {
		return nil, invalid(domain.MustBeNewToModifyMessage())
	}
	if !orderContainsProduct(order, productID) {
		return nil, notFound(domain.PositionNotFoundMessage(orderID, productID))
	}

	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if msg := order.RemovePosition(productID, product); msg != nil {
		return nil, invalid(msg)
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.persistStock(ctx, singleProduct(product)); err != nil {
		return nil, err
	}
	return order, nil
}

// ChangeStatus sets the order status. Transitions are not restricted; only
// unknown values are rejected.
func (s *Service) ChangeStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error) {
	order, err := s.loadDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidStatus(status) {
		return nil, invalid(domain.InvalidOrderStatusMessage(status))
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an open order and returns all held units to stock.
func (s *Service) Delete(ctx context.Context, id int) error {
	order, err := s.loadDetails(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyOrDelete(order) {
		return invalid(domain.MustBeNewToDeleteMessage())
	}

	touched := make(map[int]*productsdomain.Product)
	for _, item := range order.Items {
		if item.Product == nil {
			continue
		}
		item.Product.IncreaseStock(item.Quantity)
		touched[item.ProductID] = item.Product
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return notFound(domain.NotFoundMessage(id))
		}
		return err
	}
	return s.persistStock(ctx, touched)
}

func (s *Service) loadDetails(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, notFound(domain.NotFoundMessage(id))
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) loadCustomer(ctx context.Context, id int) (*customersdomain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerports.ErrNotFound) {
			// an unknown customer on a mutation payload is a bad request,
			// not a missing resource
			return nil, invalid(customersdomain.NotFoundMessage(id))
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) loadProduct(ctx context.Context, id int) (*productsdomain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productports.ErrNotFound) {
			return nil, invalid(productsdomain.NotFoundMessage(id))
		}
		return nil, err
	}
	return product, nil
}

func (s *Service) resolveProducts(ctx context.Context, ids []int) (map[int]*productsdomain.Product, error) {
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*productsdomain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	return byID, nil
}

// persistStock writes back the stock ledgers the aggregate mutated. Digital
// products carry no stock and are skipped.
func (s *Service) persistStock(ctx context.Context, products map[int]*productsdomain.Product) error {
	touched := make([]*productsdomain.Product, 0, len(products))
	for _, product := range products {
		if product == nil || product.IsDigital {
			continue
		}
		touched = append(touched, product)
	}
	if len(touched) == 0 {
		return nil
	}
	return s.products.UpdateRange(ctx, touched)
}

func positionProductIDs(positions []*domain.Position) []int {
	ids := make([]int, 0, len(positions))
	for _, position := range positions {
		if position == nil {
			continue
		}
		ids = append(ids, position.ProductID)
	}
	return ids
}

func missingFromOrder(positions []*domain.Position, order *domain.Order) []int {
	inOrder := make(map[int]bool, len(order.Items))
	for _, item := range order.Items {
		inOrder[item.ProductID] = true
	}
	seen := make(map[int]bool, len(positions))
	var missing []int
	for _, position := range positions {
		if position == nil || seen[position.ProductID] {
			continue
		}
		seen[position.ProductID] = true
		if !inOrder[position.ProductID] {
			missing = append(missing, position.ProductID)
		}
	}
	return missing
}

func orderContainsProduct(order *domain.Order, productID int) bool {
	for _, item := range order.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func singleProduct(product *productsdomain.Product) map[int]*productsdomain.Product {
	if product == nil {
		return nil
	}
	return map[int]*productsdomain.Product{product.ID: product}
}

var _ ports.Service = (*Service)(nil)
