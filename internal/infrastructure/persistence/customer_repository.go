package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/appsmart/backend/internal/domain/partner"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// productsOldestFirst preloads a customer's products in creation order
func productsOldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// FindByID finds a customer by ID with its products loaded
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	err := r.db.WithContext(ctx).
		Preload("Products", productsOldestFirst).
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// FindPage returns a page of customers ordered by creation time
func (r *GormCustomerRepository) FindPage(ctx context.Context, page shared.PageRequest) (shared.Page[partner.Customer], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&total).Error; err != nil {
		return shared.Page[partner.Customer]{}, fmt.Errorf("count customers: %w", err)
	}

	var customerModels []models.CustomerModel
	if total > int64(page.Offset()) {
		err := r.db.WithContext(ctx).
			Preload("Products", productsOldestFirst).
			Order("created_at ASC").
			Order("id ASC").
			Offset(page.Offset()).
			Limit(page.Size).
			Find(&customerModels).Error
		if err != nil {
			return shared.Page[partner.Customer]{}, fmt.Errorf("list customers: %w", err)
		}
	}

	customers := make([]partner.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return shared.NewPage(customers, page, total), nil
}

// Save creates or updates a customer row; products are left untouched
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return fmt.Errorf("save customer %s: %w", customer.ID, err)
	}
	return nil
}

// Delete removes the customer and its products in one transaction
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.ProductModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.CustomerModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
