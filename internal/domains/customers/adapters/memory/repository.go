// Package memory provides an in-memory customer repository.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory customer persistence adapter.
type Repository struct {
	mu        sync.RWMutex
	customers map[int]*domain.Customer
	nextID    int
}

func NewRepository() *Repository {
	return &Repository{customers: map[int]*domain.Customer{}}
}

func (r *Repository) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *customer
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.customers[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, customer := range r.customers {
		clone := *customer
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) Update(_ context.Context, customer *domain.Customer) error {
	if customer == nil {
		return errors.New("customer is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return ports.ErrNotFound
	}
	clone := *customer
	r.customers[clone.ID] = &clone
	return nil
}

func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}
