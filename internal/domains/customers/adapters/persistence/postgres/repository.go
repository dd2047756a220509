// Package postgres persists customers in PostgreSQL using GORM.
package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is the PostgreSQL customer adapter. Caller manages DB lifecycle.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type customerRecord struct {
	ID        int    `gorm:"primaryKey;column:id"`
	FirstName string `gorm:"column:first_name;type:varchar(100)"`
	LastName  string `gorm:"column:last_name;type:varchar(100)"`
	Email     string `gorm:"column:email;type:varchar(255)"`
}

func (customerRecord) TableName() string { return "customers" }

func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(customer)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record customerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []customerRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, records[i].toDomain())
	}
	return customers, nil
}

func (r *Repository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	record := toRecord(customer)
	result := r.db.WithContext(ctx).Model(&customerRecord{}).Where("id = ?", record.ID).Updates(map[string]any{
		"first_name": record.FirstName,
		"last_name":  record.LastName,
		"email":      record.Email,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&customerRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func toRecord(customer *domain.Customer) customerRecord {
	return customerRecord{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	}
}

func (r customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
