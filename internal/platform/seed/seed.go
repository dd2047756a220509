// Package seed loads a small demo data set for local development.
package seed

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	customerports "github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	productports "github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

// Run inserts the demo customers and products when the stores are empty.
// It is safe to call on every boot.
func Run(ctx context.Context, customers customerports.Repository, products productports.Repository, logger *slog.Logger) error {
	if err := seedCustomers(ctx, customers); err != nil {
		return err
	}
	if err := seedProducts(ctx, products); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("seed data loaded")
	}
	return nil
}

func seedCustomers(ctx context.Context, repo customerports.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, customer := range []*customersdomain.Customer{
		{FirstName: "Jan", LastName: "Kowalski", Email: "jan.kowalski@example.com"},
		{FirstName: "Piotr", LastName: "Stefański", Email: "piotr.stefanski@example.com"},
		{FirstName: "Andrzej", LastName: "Twardy", Email: "andrzej.twardy@example.com"},
	} {
		if _, err := repo.Create(ctx, customer); err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, repo productports.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, product := range []*productsdomain.Product{
		{Name: "Kurs programowania", Price: decimal.NewFromInt(200), IsDigital: true},
		{Name: "Laptop HP", Price: decimal.NewFromInt(8000), Stock: &productsdomain.Stock{Quantity: 100}},
		{Name: "Smartphone Samsung", Price: decimal.NewFromInt(4000), Stock: &productsdomain.Stock{Quantity: 50}},
	} {
		if _, err := repo.Create(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
