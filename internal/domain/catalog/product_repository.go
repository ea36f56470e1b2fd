package catalog

import (
	"context"

	"github.com/appsmart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID, returns shared.ErrNotFound if absent
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCustomer returns a page of products owned by the customer, oldest first
	FindByCustomer(ctx context.Context, customerID uuid.UUID, page shared.PageRequest) (shared.Page[Product], error)

	// FindAllByCustomer returns every product owned by the customer, oldest first
	FindAllByCustomer(ctx context.Context, customerID uuid.UUID) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product; deleting a missing product is not an error
	Delete(ctx context.Context, id uuid.UUID) error
}
