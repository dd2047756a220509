package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict indicates the same key was used with a different payload or target.
var ErrIdempotencyConflict = errors.New("idempotency conflict")

// IdempotencyRecord captures the association between a client-supplied key and the resulting order.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	OrderID     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IdempotencyStore persists idempotency keys so create retries can be replayed safely.
type IdempotencyStore interface {
	// Get returns the stored record for the key, or nil when unknown.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Save persists the record; if the key already exists with the same hash and order, the stored record is returned.
	// When the key exists but points to a different request/order, ErrIdempotencyConflict is returned with the stored record.
	Save(ctx context.Context, record IdempotencyRecord) (*IdempotencyRecord, error)
}
