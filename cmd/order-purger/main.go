package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	orderspostgres "github.com/ordermanager/order-manager-api/internal/domains/orders/adapters/persistence/postgres"
	platformpostgres "github.com/ordermanager/order-manager-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge orders")
	}

	repo := orderspostgres.NewRepository(db)
	purged, err := repo.PurgeStale(ctx, orderTTLFromEnv())
	if err != nil {
		log.Fatalf("failed to purge orders: %v", err)
	}
	log.Printf("order purge completed, removed %d stale orders", purged)
}

func orderTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("ORDER_TTL_HOURS"))
	if raw == "" {
		return orderspostgres.DefaultOrderTTL
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return orderspostgres.DefaultOrderTTL
	}
	return time.Duration(hours) * time.Hour
}
