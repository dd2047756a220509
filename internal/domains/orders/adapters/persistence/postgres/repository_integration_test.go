//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	customerspostgres "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/persistence/postgres"
	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	orderspostgres "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/persistence/postgres"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	productspostgres "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/persistence/postgres"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("ordermanager_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// Run migrations
	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedOrderFixtures(t *testing.T, db *gorm.DB) (*customersdomain.Customer, *productsdomain.Product) {
	t.Helper()
	ctx := context.Background()

	customer, err := customerspostgres.NewRepository(db).Create(ctx, &customersdomain.Customer{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.NoError(t, err)

	product, err := productspostgres.NewRepository(db).Create(ctx, &productsdomain.Product{
		Name:  "Laptop",
		Price: decimal.NewFromInt(8000),
		Stock: &productsdomain.Stock{Quantity: 100},
	})
	require.NoError(t, err)

	return customer, product
}

func newOrder(customer *customersdomain.Customer, product *productsdomain.Product, quantity int) *domain.Order {
	return &domain.Order{
		Number:     "abc1234567",
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:     domain.StatusNew,
		CreatedAt:  time.Now().UTC(),
		CustomerID: customer.ID,
		Items: []*domain.OrderItem{
			{ProductID: product.ID, Quantity: quantity, Price: product.Price},
		},
	}
}

func TestPostgresRepository_CreateAndGetDetails(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()
	customer, product := seedOrderFixtures(t, db)

	saved, err := repo.Create(ctx, newOrder(customer, product, 2))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	loaded, err := repo.GetDetailsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc1234567", loaded.Number)
	assert.Equal(t, domain.StatusNew, loaded.Status)
	require.NotNil(t, loaded.Customer)
	assert.Equal(t, "Kowalski", loaded.Customer.LastName)
	require.Len(t, loaded.Items, 1)
	require.NotNil(t, loaded.Items[0].Product)
	assert.Equal(t, "Laptop", loaded.Items[0].Product.Name)
	require.NotNil(t, loaded.Items[0].Product.Stock)
	assert.Equal(t, 100, loaded.Items[0].Product.Stock.Quantity)
	assert.True(t, loaded.TotalPrice.Equal(decimal.NewFromInt(16000)))
}

func TestPostgresRepository_UpdateReplacesItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()
	customer, product := seedOrderFixtures(t, db)

	saved, err := repo.Create(ctx, newOrder(customer, product, 2))
	require.NoError(t, err)

	loaded, err := repo.GetDetailsByID(ctx, saved.ID)
	require.NoError(t, err)
	loaded.Items[0].Quantity = 5
	loaded.TotalPrice = product.Price.Mul(decimal.NewFromInt(5))
	loaded.Status = domain.StatusInProgress
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetDetailsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, reloaded.Status)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, 5, reloaded.Items[0].Quantity)
	assert.True(t, reloaded.TotalPrice.Equal(decimal.NewFromInt(40000)))
}

func TestPostgresRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()
	customer, product := seedOrderFixtures(t, db)

	saved, err := repo.Create(ctx, newOrder(customer, product, 1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.GetDetailsByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_UsageChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := orderspostgres.NewRepository(db)
	ctx := context.Background()
	customer, product := seedOrderFixtures(t, db)

	inUse, err := repo.ProductInUse(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, inUse)

	hasOrders, err := repo.ExistsForCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, hasOrders)

	_, err = repo.Create(ctx, newOrder(customer, product, 1))
	require.NoError(t, err)

	inUse, err = repo.ProductInUse(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, inUse)

	hasOrders, err = repo.ExistsForCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, hasOrders)
}

func TestPostgresIdempotencyStore_SaveAndConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	store := orderspostgres.NewIdempotencyStore(db)
	ctx := context.Background()

	missing, err := store.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	record := ports.IdempotencyRecord{Key: "key-1", RequestHash: "hash-a", OrderID: 1}
	saved, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", saved.RequestHash)

	// same key and payload replays
	replay, err := store.Save(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, 1, replay.OrderID)

	// same key, different payload conflicts
	stored, err := store.Save(ctx, ports.IdempotencyRecord{Key: "key-1", RequestHash: "hash-b", OrderID: 2})
	assert.ErrorIs(t, err, ports.ErrIdempotencyConflict)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.OrderID)
}
