// Package postgres persists products in PostgreSQL using GORM.
package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ordermanager/order-manager-api/internal/domains/products/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the PostgreSQL product adapter. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps a catalog product to its relational row.
type productRecord struct {
	ID        int             `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;type:varchar(200)"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
	IsDigital bool            `gorm:"column:is_digital"`
	Stock     *stockRecord    `gorm:"foreignKey:ProductID"`
}

func (productRecord) TableName() string { return "products" }

// stockRecord is the stock ledger row owned by a physical product.
type stockRecord struct {
	ProductID int `gorm:"primaryKey;column:product_id"`
	Quantity  int `gorm:"column:quantity"`
}

func (stockRecord) TableName() string { return "product_stocks" }

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).Preload("Stock").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByIDs(ctx context.Context, ids []int) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Preload("Stock").Find(&records, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Preload("Stock").Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// Update saves the product row and reconciles its stock row: physical stock is
// upserted, a product turned digital loses the row.
func (r *Repository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveProduct(tx, product)
	})
}

func (r *Repository) UpdateRange(ctx context.Context, products []*domain.Product) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, product := range products {
			if err := saveProduct(tx, product); err != nil {
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
		if err := tx.Delete(&stockRecord{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&productRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

func saveProduct(tx *gorm.DB, product *domain.Product) error {
	record := toRecord(product)
	stock := record.Stock
	record.Stock = nil
	result := tx.Model(&productRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
		"name":       record.Name,
		"price":      record.Price,
		"is_digital": record.IsDigital,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	if stock == nil {
		return tx.Delete(&stockRecord{}, "product_id = ?", record.ID).Error
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": stock.Quantity}),
	}).Create(stock).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) *productRecord {
	record := &productRecord{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		IsDigital: product.IsDigital,
	}
	if product.Stock != nil {
		record.Stock = &stockRecord{ProductID: product.ID, Quantity: product.Stock.Quantity}
	}
	return record
}

func (r *productRecord) toDomain() *domain.Product {
	product := &domain.Product{
		ID:        r.ID,
		Name:      r.Name,
		Price:     r.Price,
		IsDigital: r.IsDigital,
	}
	if r.Stock != nil {
		product.Stock = &domain.Stock{ProductID: r.Stock.ProductID, Quantity: r.Stock.Quantity}
	}
	return product
}
