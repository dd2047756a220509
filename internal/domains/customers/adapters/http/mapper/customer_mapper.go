// Package mapper converts between the transport payloads and the customers
// domain model.
package mapper

import (
	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
)

// Customer is the transport-layer shape used by the HTTP handlers.
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ToInput converts a transport customer into the service mutation payload.
func ToInput(c Customer) ports.CustomerInput {
	return ports.CustomerInput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

// FromDomain converts a domain customer to the transport representation.
func FromDomain(customer *domain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	}
}

// FromDomainList converts a directory listing.
func FromDomainList(customers []*domain.Customer) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		out = append(out, FromDomain(customer))
	}
	return out
}
