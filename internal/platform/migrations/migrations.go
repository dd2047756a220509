package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&customerRecord{},
		&productRecord{},
		&stockRecord{},
		&orderRecord{},
		&orderItemRecord{},
		&idempotencyRecord{},
	)
}

// Customer schema mirrors the customers Postgres adapter.
type customerRecord struct {
	ID        int    `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"column:first_name;type:varchar(100)"`
	LastName  string `gorm:"column:last_name;type:varchar(100)"`
	Email     string `gorm:"column:email;type:varchar(255)"`
}

func (customerRecord) TableName() string { return "customers" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID        int             `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;type:varchar(200)"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
	IsDigital bool            `gorm:"column:is_digital"`
}

func (productRecord) TableName() string { return "products" }

type stockRecord struct {
	ProductID int `gorm:"primaryKey;column:product_id"`
	Quantity  int `gorm:"column:quantity"`
}

func (stockRecord) TableName() string { return "product_stocks" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID         int             `gorm:"primaryKey;column:id"`
	Number     string          `gorm:"column:number;type:varchar(10)"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(18,2)"`
	Status     string          `gorm:"column:status;type:varchar(20);index"`
	CreatedAt  time.Time       `gorm:"column:created_at;index"`
	CustomerID int             `gorm:"column:customer_id;index"`
}

func (orderRecord) TableName() string { return "orders" }

type orderItemRecord struct {
	ID        int             `gorm:"primaryKey;column:id"`
	OrderID   int             `gorm:"column:order_id;uniqueIndex:idx_order_product"`
	ProductID int             `gorm:"column:product_id;uniqueIndex:idx_order_product;index"`
	Quantity  int             `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Idempotency key schema mirrors the orders Postgres idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:255"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     int       `gorm:"column:order_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }
