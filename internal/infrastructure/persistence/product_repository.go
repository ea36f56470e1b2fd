package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/appsmart/backend/internal/domain/catalog"
	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/appsmart/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

// FindByCustomer returns a page of the customer's products, oldest first
func (r *GormProductRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, page shared.PageRequest) (shared.Page[catalog.Product], error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("customer_id = ?", customerID).
		Count(&total).Error
	if err != nil {
		return shared.Page[catalog.Product]{}, fmt.Errorf("count products of customer %s: %w", customerID, err)
	}

	var productModels []models.ProductModel
	if total > int64(page.Offset()) {
		err = r.db.WithContext(ctx).
			Where("customer_id = ?", customerID).
			Order("created_at ASC").
			Order("id ASC").
			Offset(page.Offset()).
			Limit(page.Size).
			Find(&productModels).Error
		if err != nil {
			return shared.Page[catalog.Product]{}, fmt.Errorf("list products of customer %s: %w", customerID, err)
		}
	}

	return shared.NewPage(toProducts(productModels), page, total), nil
}

// FindAllByCustomer returns every product owned by the customer, oldest first
func (r *GormProductRepository) FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, fmt.Errorf("list products of customer %s: %w", customerID, err)
	}
	return toProducts(productModels), nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("save product %s: %w", product.ID, err)
	}
	return nil
}

// Delete deletes a product; a missing product is not an error
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductModel{}).Error; err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func toProducts(productModels []models.ProductModel) []catalog.Product {
	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
