// Package postgres persists order aggregates in PostgreSQL using GORM.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	customersdomain "github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/orders/ports"
	productsdomain "github.com/ordermanager/order-manager-api/internal/domains/products/domain"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the PostgreSQL order adapter. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the aggregate root to its relational row.
type orderRecord struct {
	ID         int               `gorm:"primaryKey;column:id"`
	Number     string            `gorm:"column:number;type:varchar(10)"`
	TotalPrice decimal.Decimal   `gorm:"column:total_price;type:numeric(18,2)"`
	Status     string            `gorm:"column:status;type:varchar(20)"`
	CreatedAt  time.Time         `gorm:"column:created_at"`
	CustomerID int               `gorm:"column:customer_id"`
	Customer   *customerRecord   `gorm:"foreignKey:CustomerID"`
	Items      []orderItemRecord `gorm:"foreignKey:OrderID"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord is an owned order line. The order/product pair is unique.
type orderItemRecord struct {
	ID        int             `gorm:"primaryKey;column:id"`
	OrderID   int             `gorm:"column:order_id;uniqueIndex:idx_order_product"`
	ProductID int             `gorm:"column:product_id;uniqueIndex:idx_order_product"`
	Quantity  int             `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
	Product   *productRecord  `gorm:"foreignKey:ProductID"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// Read-only views over rows owned by the neighbouring contexts, used for preloads.
type customerRecord struct {
	ID        int    `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Email     string `gorm:"column:email"`
}

func (customerRecord) TableName() string { return "customers" }

type productRecord struct {
	ID        int             `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name"`
	Price     decimal.Decimal `gorm:"column:price"`
	IsDigital bool            `gorm:"column:is_digital"`
	Stock     *stockRecord    `gorm:"foreignKey:ProductID"`
}

func (productRecord) TableName() string { return "products" }

type stockRecord struct {
	ProductID int `gorm:"primaryKey;column:product_id"`
	Quantity  int `gorm:"column:quantity"`
}

func (stockRecord) TableName() string { return "product_stocks" }

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := record.Items
		record.Items = nil
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = record.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		record.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.ID = record.ID
	for i, item := range order.Items {
		if i < len(record.Items) {
			item.ID = record.Items[i].ID
		}
	}
	return order, nil
}

// GetByID loads the bare order row without preloads.
func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetDetailsByID loads the full aggregate: items with products and stock, and
// the owning customer.
func (r *Repository) GetDetailsByID(ctx context.Context, id int) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Stock").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Update replaces the stored aggregate state: the order row is updated and the
// item set is rewritten to match the aggregate.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := toRecord(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&orderRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
			"total_price": record.TotalPrice,
			"status":      record.Status,
			"customer_id": record.CustomerID,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		if err := tx.Delete(&orderItemRecord{}, "order_id = ?", record.ID).Error; err != nil {
			return err
		}
		for i := range record.Items {
			record.Items[i].ID = 0
			record.Items[i].OrderID = record.ID
			if err := tx.Create(&record.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&orderItemRecord{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) ProductInUse(ctx context.Context, productID int) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&orderItemRecord{}).
		Where("product_id = ?", productID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ExistsForCustomer(ctx context.Context, customerID int) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("customer_id = ?", customerID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) *orderRecord {
	record := &orderRecord{
		ID:         order.ID,
		Number:     order.Number,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		CustomerID: order.CustomerID,
	}
	for _, item := range order.Items {
		record.Items = append(record.Items, orderItemRecord{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return record
}

func (r *orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:         r.ID,
		Number:     r.Number,
		TotalPrice: r.TotalPrice,
		Status:     domain.Status(r.Status),
		CreatedAt:  r.CreatedAt,
		CustomerID: r.CustomerID,
	}
	if r.Customer != nil {
		order.Customer = &customersdomain.Customer{
			ID:        r.Customer.ID,
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
			Email:     r.Customer.Email,
		}
	}
	for i := range r.Items {
		item := &r.Items[i]
		orderItem := &domain.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			product := &productsdomain.Product{
				ID:        item.Product.ID,
				Name:      item.Product.Name,
				Price:     item.Product.Price,
				IsDigital: item.Product.IsDigital,
			}
			if item.Product.Stock != nil {
				product.Stock = &productsdomain.Stock{
					ProductID: item.Product.Stock.ProductID,
					Quantity:  item.Product.Stock.Quantity,
				}
			}
			orderItem.Product = product
		}
		order.Items = append(order.Items, orderItem)
	}
	return order
}
