package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	ordermanagerserver "github.com/ordermanager/order-manager-api/go"

	customersmemory "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/memory"
	customersobs "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/observability"
	customerspostgres "github.com/ordermanager/order-manager-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/ordermanager/order-manager-api/internal/domains/customers/application"
	customerports "github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	ordersmemory "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/ordermanager/order-manager-api/internal/domains/orders/application"
	orderports "github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	productsmemory "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/memory"
	productsobs "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/observability"
	productspostgres "github.com/ordermanager/order-manager-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/ordermanager/order-manager-api/internal/domains/products/application"
	productports "github.com/ordermanager/order-manager-api/internal/domains/products/ports"
	"github.com/ordermanager/order-manager-api/internal/platform/migrations"
	platformobservability "github.com/ordermanager/order-manager-api/internal/platform/observability"
	platformpostgres "github.com/ordermanager/order-manager-api/internal/platform/postgres"
	"github.com/ordermanager/order-manager-api/internal/platform/seed"
)

// repositories bundles the persistence adapters for all bounded contexts so
// the API and worker processes wire them the same way.
type repositories struct {
	customers   customerports.Repository
	products    productports.Repository
	orders      orderports.Repository
	idempotency orderports.IdempotencyStore
}

// Run boots the order manager HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "order-manager-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	repos, cleanupRepos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanupRepos()

	if cfg.SeedData {
		if err := seed.Run(ctx, repos.customers, repos.products, logger); err != nil {
			logger.Warn("failed to load seed data", slog.String("error", err.Error()))
		}
	}

	productService := productsobs.New(
		productsapp.NewService(repos.products, repos.orders),
		productsobs.WithLogger(logger),
		productsobs.WithTracer(instruments.Tracer("internal.products.application")),
	)
	customerService := customersobs.New(
		customersapp.NewService(repos.customers, repos.orders),
		logger,
	)
	orderService := ordersobs.New(
		ordersapp.NewService(repos.orders, repos.products, repos.customers, repos.idempotency),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows orderports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := ordermanagerserver.ApiHandleFunctions{
		OrdersAPI:    ordermanagerserver.NewOrdersAPI(orderService, orderWorkflows),
		ProductsAPI:  ordermanagerserver.NewProductsAPI(productService),
		CustomersAPI: ordermanagerserver.NewCustomersAPI(customerService),
	}

	router := ordermanagerserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("order manager API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order manager API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memoryRepositories(), func() {}, nil
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(), func() {}, nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(), func() {}, nil
	}
	if err := migrations.Run(db); err != nil {
		_ = sqlDB.Close()
		return repositories{}, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("repositories configured with postgres")
	return postgresRepositories(db), func() { _ = sqlDB.Close() }, nil
}

func memoryRepositories() repositories {
	return repositories{
		customers:   customersmemory.NewRepository(),
		products:    productsmemory.NewRepository(),
		orders:      ordersmemory.NewRepository(),
		idempotency: ordersmemory.NewIdempotencyStore(),
	}
}

func postgresRepositories(db *gorm.DB) repositories {
	return repositories{
		customers:   customerspostgres.NewRepository(db),
		products:    productspostgres.NewRepository(db),
		orders:      orderspostgres.NewRepository(db),
		idempotency: orderspostgres.NewIdempotencyStore(db),
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
