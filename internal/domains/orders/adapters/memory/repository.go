// Package memory provides in-memory order persistence for development runs
// and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int]*domain.Order
	nextID     int
	nextItemID int
}

func NewRepository() *Repository {
	return &Repository{orders: map[int]*domain.Order{}}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneOrder(order)
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	for _, item := range clone.Items {
		if item.ID == 0 {
			r.nextItemID++
			item.ID = r.nextItemID
		} else if item.ID > r.nextItemID {
			r.nextItemID = item.ID
		}
	}
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

// GetByID returns the bare order row, mirroring a query without preloads.
func (r *Repository) GetByID(_ context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := cloneOrder(order)
	clone.Customer = nil
	clone.Items = nil
	return clone, nil
}

func (r *Repository) GetDetailsByID(_ context.Context, id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := cloneOrder(order)
		clone.Customer = nil
		clone.Items = nil
		out = append(out, clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) Update(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return ports.ErrNotFound
	}
	clone := cloneOrder(order)
	for _, item := range clone.Items {
		if item.ID == 0 {
			r.nextItemID++
			item.ID = r.nextItemID
		}
	}
	r.orders[clone.ID] = clone
	return nil
}

func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) ProductInUse(_ context.Context, productID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *Repository) ExistsForCustomer(_ context.Context, customerID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	if o.Customer != nil {
		customer := *o.Customer
		clone.Customer = &customer
	}
	clone.Items = make([]*domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		itemClone := *item
		itemClone.Product = cloneProduct(item.Product)
		clone.Items = append(clone.Items, &itemClone)
	}
	return &clone
}

func cloneProduct(p *productsdomain.Product) *productsdomain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Stock != nil {
		stock := *p.Stock
		clone.Stock = &stock
	}
	return &clone
}
