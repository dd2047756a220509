// Package memory provides an in-memory product repository for development
// runs and tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
	nextID   int
}

func NewRepository() *Repository {
	return &Repository{products: map[int]*domain.Product{}}
}

func (r *Repository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneProduct(product)
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	if clone.Stock != nil {
		clone.Stock.ProductID = clone.ID
	}
	r.products[clone.ID] = clone
	return cloneProduct(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProduct(product), nil
}

func (r *Repository) GetByIDs(_ context.Context, ids []int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			out = append(out, cloneProduct(product))
		}
	}
	return out, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		out = append(out, cloneProduct(product))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) Update(_ context.Context, product *domain.Product) error {
	if product == nil {
		return errors.New("product is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return ports.ErrNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *Repository) UpdateRange(ctx context.Context, products []*domain.Product) error {
	for _, product := range products {
		if err := r.Update(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	if p.Stock != nil {
		stock := *p.Stock
		clone.Stock = &stock
	}
	return &clone
}
