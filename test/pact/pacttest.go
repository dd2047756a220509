//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "order-manager-api"
	ConsumerName = "order-portal"

	StateOrdersBaseline  = "orders baseline"
	StateOrderExists     = "order with id 301 exists"
	StateOrderMissing    = "no order with id 999"
	StateCatalogSeeded   = "catalog and customers seeded"
	StateCustomersBase   = "customers baseline"
	StateCustomerExists  = "customer with id 1 exists"
	StateProductsBase    = "products baseline"
	StateProductExists   = "product with id 1 exists"
)

const (
	ExistingOrderID int = 301
	MissingOrderID  int = 999

	SeedCustomerID int = 1
	SeedProductID  int = 1
)

const (
	exampleCustomerFirstName = "Jan"
	exampleCustomerLastName  = "Kowalski"
	exampleCustomerEmail     = "jan.kowalski@example.com"
	exampleProductName       = "Laptop HP"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the order portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCustomerPayload provides stable test data for customer interactions.
func ExampleCustomerPayload() map[string]any {
	return map[string]any{
		"id":        SeedCustomerID,
		"firstName": exampleCustomerFirstName,
		"lastName":  exampleCustomerLastName,
		"email":     exampleCustomerEmail,
	}
}

// ExampleProductPayload provides stable test data for product interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":          SeedProductID,
		"productName": exampleProductName,
		"price":       "8000",
		"isDigital":   false,
		"productStock": map[string]any{
			"quantity": 100,
		},
	}
}

// ExampleCreateOrderPayload provides the placement request body.
func ExampleCreateOrderPayload() map[string]any {
	return map[string]any{
		"customerId": SeedCustomerID,
		"positions": []map[string]any{
			{"productId": SeedProductID, "quantity": 2},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
