//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/ordermanager/order-manager-api/test/pact"

	ordermanagerserver "github.com/ordermanager/order-manager-api/go"
	customersmemory "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/memory"
	customersobs "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/observability"
	customersapp "github.com/ordermanager/order-manager-api/internal/domains/customers/application"
	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	ordersmemory "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/observability"
	ordersworkflows "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/ordermanager/order-manager-api/internal/domains/orders/application"
	ordersdomain "github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	productsmemory "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/memory"
	productsobs "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/observability"
	productsapp "github.com/ordermanager/order-manager-api/internal/domains/products/application"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderManagerProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCatalog(t)
			}
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCatalog(t)
				app.seedOrder(t, pacttest.ExistingOrderID)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			app.seedCatalog(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	orders    *ordersmemory.Repository
	products  *productsmemory.Repository
	customers *customersmemory.Repository
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	orderRepo := ordersmemory.NewRepository()
	productRepo := productsmemory.NewRepository()
	customerRepo := customersmemory.NewRepository()
	idempotencyStore := ordersmemory.NewIdempotencyStore()

	orderService := ordersobs.New(ordersapp.NewService(orderRepo, productRepo, customerRepo, idempotencyStore))
	productService := productsobs.New(productsapp.NewService(productRepo, orderRepo))
	customerService := customersobs.New(customersapp.NewService(customerRepo, orderRepo), nil)
	workflows := ordersworkflows.NewInlineOrderWorkflows(orderService)

	handlers := ordermanagerserver.ApiHandleFunctions{
		OrdersAPI:    ordermanagerserver.NewOrdersAPI(orderService, workflows),
		ProductsAPI:  ordermanagerserver.NewProductsAPI(productService),
		CustomersAPI: ordermanagerserver.NewCustomersAPI(customerService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = ordermanagerserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		orders:    orderRepo,
		products:  productRepo,
		customers: customerRepo,
		server:    server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	orders, err := a.orders.List(ctx)
	require.NoError(t, err)
	for _, order := range orders {
		_ = a.orders.Delete(ctx, order.ID)
	}
	products, err := a.products.List(ctx)
	require.NoError(t, err)
	for _, product := range products {
		_ = a.products.Delete(ctx, product.ID)
	}
	customers, err := a.customers.List(ctx)
	require.NoError(t, err)
	for _, customer := range customers {
		_ = a.customers.Delete(ctx, customer.ID)
	}
}

func (a *contractProviderApp) seedCatalog(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	_, err := a.customers.Create(ctx, &customersdomain.Customer{
		ID:        pacttest.SeedCustomerID,
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.NoError(t, err)
	_, err = a.products.Create(ctx, &productsdomain.Product{
		ID:    pacttest.SeedProductID,
		Name:  "Laptop HP",
		Price: decimal.NewFromInt(8000),
		Stock: &productsdomain.Stock{ProductID: pacttest.SeedProductID, Quantity: 100},
	})
	require.NoError(t, err)
}

func (a *contractProviderApp) seedOrder(t testing.TB, id int) {
	t.Helper()
	price := decimal.NewFromInt(8000)
	order := &ordersdomain.Order{
		ID:         id,
		Number:     "pactord301",
		TotalPrice: price.Mul(decimal.NewFromInt(2)),
		Status:     ordersdomain.StatusNew,
		CreatedAt:  time.Now().UTC(),
		CustomerID: pacttest.SeedCustomerID,
		Customer: &customersdomain.Customer{
			ID:        pacttest.SeedCustomerID,
			FirstName: "Jan",
			LastName:  "Kowalski",
			Email:     "jan.kowalski@example.com",
		},
		Items: []*ordersdomain.OrderItem{
			{
				ProductID: pacttest.SeedProductID,
				Quantity:  2,
				Price:     price,
				Product: &productsdomain.Product{
					ID:    pacttest.SeedProductID,
					Name:  "Laptop HP",
					Price: price,
					Stock: &productsdomain.Stock{ProductID: pacttest.SeedProductID, Quantity: 98},
				},
			},
		},
	}
	_, err := a.orders.Create(context.Background(), order)
	require.NoError(t, err)
}
